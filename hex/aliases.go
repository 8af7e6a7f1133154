// Package hex is a set of shortcuts for the stdlib and templexxx/xhex
// hexadecimal codecs, with append-style encode and decode helpers.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"
)

var Enc = hex.EncodeToString
var EncBytes = hex.Encode
var Dec = hex.DecodeString
var DecBytes = hex.Decode

var DecLen = hex.DecodedLen

type InvalidByteError = hex.InvalidByteError

// EncAppend appends the lowercase hexadecimal encoding of src to dst.
func EncAppend(dst, src by) (b by) {
	l := len(dst)
	dst = append(dst, make(by, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend decodes the hexadecimal src and appends the raw bytes to dst.
func DecAppend(dst, src by) (b by, err error) {
	l := len(dst)
	b = append(dst, make(by, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); chk.E(err) {
		return
	}
	return
}
