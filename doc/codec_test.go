package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{
		`{}`,
		`[]`,
		`{"a":1,"b":[1,2,3],"c":{"d":true,"e":false,"f":null},"g":"hello"}`,
		`-17`,
		`3.5`,
		`"with \"escapes\" and é"`,
	}
	for _, text := range cases {
		bin, err := Encode(text)
		require.NoError(t, err, text)
		require.NoError(t, Validate(bin), text)
		_, err = Decode(bin)
		require.NoError(t, err, text)
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	_, err := Encode("")
	assert.Error(t, err)
}

func TestDecodeEmptyBufferIsEmptyObject(t *testing.T) {
	text, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", text)
}

func TestValidateEmptyBufferFails(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestDecodeNegativeIntegerWideEncoding(t *testing.T) {
	bin, err := Encode("-1")
	require.NoError(t, err)
	// -1 reinterpreted as u64 bit pattern requires the full 10-byte varint.
	assert.Equal(t, 1+10, len(bin))
	text, err := Decode(bin)
	require.NoError(t, err)
	assert.Equal(t, "-1", text)
}

func TestStringEscapesArePreservedVerbatim(t *testing.T) {
	bin, err := Encode(`"with \"escapes\" and é"`)
	require.NoError(t, err)
	require.NoError(t, Validate(bin))
	assert.Equal(t, []byte(`with \"escapes\" and é`), ToString(bin))

	text, err := Decode(bin)
	require.NoError(t, err)
	assert.Equal(t, `"with \"escapes\" and é"`, text)
}

func TestDecodeDoubleShortestRoundTrip(t *testing.T) {
	bin, err := Encode("3.14159")
	require.NoError(t, err)
	text, err := Decode(bin)
	require.NoError(t, err)
	assert.Equal(t, "3.14159", text)
}

func TestValidateTrailingBytesRejected(t *testing.T) {
	bin, err := Encode(`{}`)
	require.NoError(t, err)
	bin = append(bin, 0x00)
	assert.Error(t, Validate(bin))
}

func TestEncodeDepthLimit(t *testing.T) {
	text := ""
	for i := 0; i < 1000; i++ {
		text += `{"a":`
	}
	text += "1"
	for i := 0; i < 1000; i++ {
		text += "}"
	}
	_, err := Encode(text)
	assert.Error(t, err)
}

func TestScalarConstructors(t *testing.T) {
	s := NewString([]byte("hi"))
	assert.True(t, IsString(s))
	assert.Equal(t, []byte("hi"), ToString(s))

	i := NewInteger(-42)
	assert.True(t, IsInteger(i))
	assert.EqualValues(t, -42, ToInteger(i))

	d := NewDouble(2.5)
	assert.True(t, IsDouble(d))
	assert.Equal(t, 2.5, ToDouble(d))
}
