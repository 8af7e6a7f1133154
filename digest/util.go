package digest

import (
	"sha256.mleku.dev/lol"
)

type (
	bo = bool
	by = []byte
	st = string
	er = error
	no = int
)

var log, chk, errorf = lol.Main.Log, lol.Main.Check, lol.Main.Errorf
