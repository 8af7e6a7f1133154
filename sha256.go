// Package sha256 implements the SHA-256 hash algorithm specified in NIST
// FIPS 180-4 as a single-shot function over a complete message.
//
// The whole algorithm lives here: padding and length encoding, the 64 word
// message schedule, and the 64 round compression function over eight 32 bit
// state words. There is no incremental API; Sum256 consumes the message in
// one call and the state never escapes the call frame, so concurrent calls
// on distinct inputs need no synchronisation.
package sha256

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the length of one message block in bytes.
	BlockSize = 64
)

// k is the round constant table, the first 32 bits of the fractional parts
// of the cube roots of the first 64 primes.
var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// iv is the initial hash state, the first 32 bits of the fractional parts
// of the square roots of the first 8 primes.
var iv = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// rotr is a 32 bit circular right rotation.
func rotr(x uint32, n no) uint32 { return bits.RotateLeft32(x, -n) }

// pad returns a copy of data extended per FIPS 180-4 5.1.1: a single 0x80
// byte, zero fill until the length is 8 bytes short of a block boundary,
// then the message bit length as a 64 bit big-endian integer. The result is
// always a whole number of blocks.
func pad(data by) (m by) {
	l := uint64(len(data)) * 8
	m = make(by, 0, (len(data)+8)/BlockSize*BlockSize+BlockSize)
	m = append(m, data...)
	m = append(m, 0x80)
	for len(m)%BlockSize != BlockSize-8 {
		m = append(m, 0x00)
	}
	m = binary.BigEndian.AppendUint64(m, l)
	return
}

// block folds one 64 byte block into the hash state h. The state is only
// written in the final accumulation, after the rounds have run over the
// working copies, so each round reads the pre-block state.
func block(h *[8]uint32, m by) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(m[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr(w[i-15], 7) ^ rotr(w[i-15], 18) ^ w[i-15]>>3
		s1 := rotr(w[i-2], 17) ^ rotr(w[i-2], 19) ^ w[i-2]>>10
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := 0; i < 64; i++ {
		t1 := hh + (rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)) +
			(e&f ^ ^e&g) + k[i] + w[i]
		t2 := (rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)) +
			(a&b ^ a&c ^ b&c)
		hh, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}
	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// Sum256 returns the SHA-256 digest of data. Every finite byte sequence,
// including the empty one, has a digest; there is no error path. A slice of
// 2^61 bytes or more would overflow the 64 bit length field, but such a
// slice cannot exist in any real address space so no guard is present.
func Sum256(data by) (sum [Size]byte) {
	h := iv
	m := pad(data)
	for len(m) > 0 {
		block(&h, m[:BlockSize])
		m = m[BlockSize:]
	}
	for i, v := range h {
		binary.BigEndian.PutUint32(sum[i*4:], v)
	}
	return
}

// Hash returns the SHA-256 digest of data as a fresh 32 byte slice.
func Hash(data by) (b by) {
	sum := Sum256(data)
	return sum[:]
}

// HashString hashes the raw bytes of s. Go strings carry bytes, so for text
// this means the digest of its UTF-8 encoding.
func HashString(s st) (b by) { return Hash(by(s)) }
