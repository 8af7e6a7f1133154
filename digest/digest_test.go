package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sha256 "sha256.mleku.dev"
)

const abcHex = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestNewFrom(t *testing.T) {
	d := NewFrom(by("abc"))
	require.Equal(t, abcHex, d.String())
	require.Equal(t, sha256.Size, d.Len())
}

func TestStringRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := Gen()
		d2, err := NewFromString(d.String())
		if chk.E(err) {
			t.Fatal(err)
		}
		require.True(t, d.Equal(d2))
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := Gen()
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	require.Len(t, b, 2*sha256.Size+2)
	d2 := New()
	require.NoError(t, d2.UnmarshalJSON(b))
	require.True(t, d.Equal(d2))
}

func TestByteString(t *testing.T) {
	d := NewFrom(by("abc"))
	b := d.ByteString(by("sha256:"))
	require.Equal(t, "sha256:"+abcHex, st(b))
}

func TestBadSizes(t *testing.T) {
	_, err := NewFromBytes(make(by, sha256.Size-1))
	assert.Error(t, err)
	_, err = NewFromString(abcHex[:62])
	assert.Error(t, err)
	var d T
	assert.Error(t, d.UnmarshalJSON(by(`"`+abcHex[:62]+`"`)))
	_, err = (&T{}).MarshalJSON()
	assert.Error(t, err)
}

func TestSetAndEqual(t *testing.T) {
	d := Gen()
	d2 := New()
	require.NoError(t, d2.Set(d.Bytes()))
	require.True(t, d.Equal(d2))
	require.False(t, d.Equal(Gen()))
}
