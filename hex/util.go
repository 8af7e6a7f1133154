package hex

import (
	"sha256.mleku.dev/lol"
)

type (
	by = []byte
	st = string
)

var log, chk, errorf = lol.Main.Log, lol.Main.Check, lol.Main.Errorf
