package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeScalars(t *testing.T) {
	n, err := Size([]byte{byte(True)})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = Size([]byte{byte(Null), 0xAA}) // trailing garbage ignored
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	dbl := append([]byte{byte(Double)}, make([]byte, 8)...)
	n, err = Size(dbl)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestSizeString(t *testing.T) {
	// BINARY_STRING, len=3, "abc"
	buf := []byte{byte(String), 0x03, 'a', 'b', 'c'}
	n, err := Size(buf)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestSizeTruncated(t *testing.T) {
	_, err := Size([]byte{byte(String), 0x05, 'a'})
	require.Error(t, err)
}

func TestSizeUnknownTag(t *testing.T) {
	_, err := Size([]byte{0xFF})
	require.Error(t, err)
}

func TestTagValid(t *testing.T) {
	assert.True(t, Object.Valid())
	assert.True(t, Null.Valid())
	assert.False(t, Tag(0x48).Valid())
	assert.False(t, Tag(0x39).Valid())
}
