package varint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16383, 16384, 1 << 32, ^uint64(0)}
	for _, v := range values {
		buf := Append(nil, v)
		assert.Len(t, buf, Length(v))
		got, n, err := Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}
}

func TestLength(t *testing.T) {
	assert.Equal(t, 1, Length(0))
	assert.Equal(t, 1, Length(127))
	assert.Equal(t, 2, Length(128))
	assert.Equal(t, 2, Length(16383))
	assert.Equal(t, 3, Length(16384))
	assert.Equal(t, 10, Length(^uint64(0)))
}

func TestDecodeTruncated(t *testing.T) {
	_, _, err := Decode([]byte{0x80})
	require.Error(t, err)
	_, _, err = Decode(nil)
	require.Error(t, err)
}

func TestDecodeTooLong(t *testing.T) {
	// 10 bytes, every byte has the continuation bit set: requires an 11th.
	buf := make([]byte, 10)
	for i := range buf {
		buf[i] = 0x80
	}
	_, _, err := Decode(buf)
	require.Error(t, err)
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	buf := Append(nil, 300)
	buf = append(buf, 0xff, 0xff)
	v, n, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
	assert.Equal(t, 2, n)
}
