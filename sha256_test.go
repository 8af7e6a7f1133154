package sha256

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"sha256.mleku.dev/hex"
)

// NIST FIPS 180-4 test vectors, plus the classic long-message ones.
var vectors = []struct {
	input    st
	expected st
}{
	{"",
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"abc",
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{"The quick brown fox jumps over the lazy dog",
		"d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
	{strings.Repeat("a", 1000000),
		"cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		sum := Sum256(by(v.input))
		require.Equal(t, v.expected, hex.Enc(sum[:]))
	}
}

func TestHashAndHashString(t *testing.T) {
	for _, v := range vectors {
		require.Equal(t, v.expected, hex.Enc(Hash(by(v.input))))
		require.Equal(t, v.expected, hex.Enc(HashString(v.input)))
		require.Len(t, Hash(by(v.input)), Size)
	}
}

// Lengths around the padding boundaries: 55 bytes is the most that fits in
// one block with its padding, 56 forces a second block holding only the
// length field, 119/120 do the same at the two block boundary.
func TestBlockBoundaries(t *testing.T) {
	for _, l := range []no{0, 1, 54, 55, 56, 57, 63, 64, 65, 118, 119, 120, 128, 200} {
		data := frand.Bytes(l)
		require.Equal(t, stdsha256.Sum256(data), Sum256(data),
			"mismatch at length %d", l)
	}
}

func TestPadding(t *testing.T) {
	for l := 0; l <= 257; l++ {
		data := frand.Bytes(l)
		m := pad(data)
		require.Zero(t, len(m)%BlockSize)
		require.GreaterOrEqual(t, len(m)*8, l*8+65)
		require.True(t, bytes.Equal(data, m[:l]))
		require.Equal(t, byte(0x80), m[l])
		for i := l + 1; i < len(m)-8; i++ {
			require.Equal(t, byte(0x00), m[i], "nonzero fill at %d, length %d", i, l)
		}
		require.Equal(t, uint64(l)*8, binary.BigEndian.Uint64(m[len(m)-8:]))
	}
}

func TestDeterminism(t *testing.T) {
	for i := 0; i < 100; i++ {
		data := frand.Bytes(frand.Intn(300))
		require.Equal(t, Sum256(data), Sum256(data))
	}
}

// Flipping any single bit of the input must change the digest. Not a formal
// avalanche measurement, just the sanity check that no input bit is dead.
func TestBitFlip(t *testing.T) {
	data := frand.Bytes(77)
	base := Sum256(data)
	for i := 0; i < len(data)*8; i++ {
		data[i/8] ^= 1 << (i % 8)
		assert.NotEqual(t, base, Sum256(data), "bit %d", i)
		data[i/8] ^= 1 << (i % 8)
	}
	require.Equal(t, base, Sum256(data))
}

func TestAgainstStdlib(t *testing.T) {
	for i := 0; i < 4096; i++ {
		data := frand.Bytes(frand.Intn(513))
		require.Equal(t, stdsha256.Sum256(data), Sum256(data))
	}
}
