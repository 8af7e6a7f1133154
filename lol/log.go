// Package lol (log of location) is a simple logging library that prints a
// high precision unix timestamp and the source location of a log print to
// make tracing errors simpler. Includes a set of logging levels and the
// ability to filter out higher log levels for a more quiet output.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{
	"off",
	"fatal",
	"error",
	"warn",
	"info",
	"debug",
	"trace",
}

type (
	// Ln prints lists of values with spaces in between.
	Ln func(a ...any)
	// F prints like fmt.Printf with the log prefix and code location added.
	F func(format string, a ...any)
	// S prints a spew.Sdump of the arguments.
	S func(a ...any)
	// C accepts a closure so the message computation can be avoided if it
	// is not being viewed.
	C func(closure func() string)
	// Chk prints an error if it is non-nil and reports whether it was.
	Chk func(err error) bool
	// Err constructs an error with fmt.Errorf and returns it after printing
	// it to the log, so the error is logged at the site.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of log printers on one log level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	// LevelSpec is the name and colorizer for a log level.
	LevelSpec struct {
		Name      string
		Colorizer func(a ...any) string
	}
)

// LevelSpecs specifies the string name and color-printing function of each
// log level.
var LevelSpecs = []LevelSpec{
	{"", noSprint},
	{"FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
	{"ERR", color.New(color.FgHiRed).Sprint},
	{"WRN", color.New(color.FgHiYellow).Sprint},
	{"INF", color.New(color.FgHiGreen).Sprint},
	{"DBG", color.New(color.FgHiBlue).Sprint},
	{"TRC", color.New(color.FgHiMagenta).Sprint},
}

func noSprint(a ...any) string { return "" }

var msgCol = color.New(color.FgBlue).Sprint

// Log is a set of log printers for the various Level items.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of log levels for a Check operation (prints an error if
// the error is not nil).
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf prints an error that is also returned as an error, so the error is
// logged at the site.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger is a collection of things that creates a logger, including levels.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Level is the level that the logger is printing at.
var Level atomic.Int32

// NoTimestamp disables the timestamp prefix, for reproducible log output.
var NoTimestamp atomic.Bool

// Main is the main logger.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	SetLoggers(Info)
}

// SetLoggers configures a log level.
func SetLoggers(level int) {
	Main.Log.T.F("log level %s", LevelSpecs[level].Colorizer(LevelNames[level]))
	Level.Store(int32(level))
}

// GetLogLevel returns the log level number of a string log level.
func GetLogLevel(level string) (i int) {
	for i = range LevelNames {
		if level == LevelNames[i] {
			return i
		}
	}
	return Info
}

// SetLogLevel sets the log level of the logger from its string name.
func SetLogLevel(level string) {
	for i := range LevelNames {
		if level == LevelNames[i] {
			SetLoggers(i)
			return
		}
	}
}

// joinStrings joins together anything into a set of strings with space
// separating the items.
func joinStrings(a ...any) (s string) {
	for i := range a {
		s += fmt.Sprint(a[i])
		if i < len(a)-1 {
			s += " "
		}
	}
	return
}

// emit writes one log line: timestamp, colorized level tag, the message and
// the code location of the print.
func emit(w io.Writer, l int32, text string) {
	fmt.Fprintf(w, "%s%s %s %s\n",
		msgCol(timestamp()),
		LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		text,
		msgCol(GetLoc(3)),
	)
}

// GetPrinter returns a full LevelPrinter that writes to the provided
// io.Writer when the global Level admits its level.
func GetPrinter(l int32, w io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...any) {
			if Level.Load() < l {
				return
			}
			emit(w, l, joinStrings(a...))
		},
		F: func(format string, a ...any) {
			if Level.Load() < l {
				return
			}
			emit(w, l, fmt.Sprintf(format, a...))
		},
		S: func(a ...any) {
			if Level.Load() < l {
				return
			}
			emit(w, l, spew.Sdump(a...))
		},
		C: func(closure func() string) {
			if Level.Load() < l {
				return
			}
			emit(w, l, closure())
		},
		Chk: func(err error) bool {
			if err == nil {
				return false
			}
			if Level.Load() >= l {
				emit(w, l, err.Error())
			}
			return true
		},
		Err: func(format string, a ...any) error {
			if Level.Load() >= l {
				emit(w, l, fmt.Sprintf(format, a...))
			}
			return fmt.Errorf(format, a...)
		},
	}
}

// GetNullPrinter is a logger that doesn't log.
func GetNullPrinter() LevelPrinter {
	return LevelPrinter{
		Ln:  func(a ...any) {},
		F:   func(format string, a ...any) {},
		S:   func(a ...any) {},
		C:   func(closure func() string) {},
		Chk: func(err error) bool { return err != nil },
		Err: func(format string, a ...any) error { return fmt.Errorf(format, a...) },
	}
}

// New creates a new logger with all the levels and things.
func New(w io.Writer) (l *Log, c *Check, e *Errorf) {
	l = &Log{
		T: GetPrinter(Trace, w),
		D: GetPrinter(Debug, w),
		I: GetPrinter(Info, w),
		W: GetPrinter(Warn, w),
		E: GetPrinter(Error, w),
		F: GetPrinter(Fatal, w),
	}
	c = &Check{F: l.F.Chk, E: l.E.Chk, W: l.W.Chk, I: l.I.Chk, D: l.D.Chk, T: l.T.Chk}
	e = &Errorf{F: l.F.Err, E: l.E.Err, W: l.W.Err, I: l.I.Err, D: l.D.Err, T: l.T.Err}
	return
}

// timestamp generates the timestamp prefix for logs.
func timestamp() (s string) {
	if NoTimestamp.Load() {
		return
	}
	return time.Now().Format("2006-01-02T15:04:05Z07:00.000 ")
}

// GetLoc returns the code location of the caller.
func GetLoc(skip int) (output string) {
	_, file, line, _ := runtime.Caller(skip)
	output = fmt.Sprintf("%s:%d", file, line)
	return
}
