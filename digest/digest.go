// Package digest wraps the raw 32 byte SHA-256 value in a checked type with
// hexadecimal and JSON renderings. The core hash function only guarantees
// the raw bytes; the conventional 64 character lowercase hex form lives
// here.
package digest

import (
	"bytes"
	"errors"

	"lukechampine.com/frand"

	sha256 "sha256.mleku.dev"
	"sha256.mleku.dev/hex"
)

// T is a SHA-256 digest, 32 bytes, rendered in hexadecimal as 64 lowercase
// characters.
type T struct {
	b by
}

func New() (d *T) { return &T{} }

func NewWith[V st | by](s V) (d *T) { return &T{b: by(s)} }

// NewFrom hashes data with the digest engine and wraps the result.
func NewFrom(data by) (d *T) { return &T{b: sha256.Hash(data)} }

// Set validates the length of b and stores it as the digest value.
func (d *T) Set(b by) (err er) {
	if len(b) != sha256.Size {
		err = errorf.E("digest bytes incorrect size, got %d require %d",
			len(b), sha256.Size)
		return
	}
	d.b = b
	return
}

func NewFromBytes(b by) (d *T, err er) {
	d = New()
	if err = d.Set(b); chk.E(err) {
		return
	}
	return
}

// NewFromString inspects a string and ensures it is a valid, 64 character
// long hexadecimal string, and decodes it into the type.
func NewFromString(s st) (d *T, err er) {
	if len(s) != 2*sha256.Size {
		return nil, errorf.E("digest hex wrong size, got %d require %d",
			len(s), 2*sha256.Size)
	}
	d = &T{b: make(by, 0, sha256.Size)}
	d.b, err = hex.DecAppend(d.b, by(s))
	return
}

func (d *T) String() st {
	if d.b == nil {
		return ""
	}
	return hex.Enc(d.b)
}

// ByteString appends the hexadecimal rendering of the digest to src.
func (d *T) ByteString(src by) (b by) { return hex.EncAppend(src, d.b) }

func (d *T) Bytes() (b by) { return d.b }

func (d *T) Len() no {
	if d == nil {
		log.W.Ln("nil digest")
		return 0
	}
	return len(d.b)
}

func (d *T) Equal(d2 *T) bo { return bytes.Equal(d.b, d2.b) }

func (d *T) MarshalJSON() (b by, err er) {
	if d.b == nil {
		err = errors.New("digest nil")
		return
	}
	b = make(by, 0, 2*sha256.Size+2)
	b = append(b, '"')
	b = hex.EncAppend(b, d.b)
	b = append(b, '"')
	return
}

func (d *T) UnmarshalJSON(b by) (err er) {
	if len(b) != 2*sha256.Size+2 || b[0] != '"' || b[len(b)-1] != '"' {
		err = errorf.E("digest hex incorrect size, got %d require %d",
			len(b), 2*sha256.Size+2)
		return
	}
	d.b = make(by, 0, sha256.Size)
	d.b, err = hex.DecAppend(d.b, b[1:len(b)-1])
	return
}

// Gen creates a fake pseudorandom generated digest for tests.
func Gen() (d *T) { return &T{frand.Bytes(sha256.Size)} }
