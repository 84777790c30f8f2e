package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoot(t *testing.T) {
	p, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestParseFieldChain(t *testing.T) {
	p, err := Parse("a.b.c")
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, "a", p[0].Field)
	assert.Equal(t, "b", p[1].Field)
	assert.Equal(t, "c", p[2].Field)
}

func TestParseIndexChain(t *testing.T) {
	p, err := Parse("items[0][-1]")
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, Field, p[0].Kind)
	assert.Equal(t, Index, p[1].Kind)
	assert.EqualValues(t, 0, p[1].Index)
	assert.Equal(t, Index, p[2].Kind)
	assert.EqualValues(t, -1, p[2].Index)
}

func TestParseHexIndex(t *testing.T) {
	p, err := Parse("a[0x10]")
	require.NoError(t, err)
	assert.EqualValues(t, 16, p[1].Index)
}

func TestParseDotBeforeIndexInvalid(t *testing.T) {
	_, err := Parse("a.[0]")
	assert.Error(t, err)
}

func TestParseDoubleDotInvalid(t *testing.T) {
	_, err := Parse("a..b")
	assert.Error(t, err)
}

func TestParseStrayCloseBracket(t *testing.T) {
	_, err := Parse("a]b")
	assert.Error(t, err)
}

func TestParseFieldAfterIndexWithoutDotInvalid(t *testing.T) {
	_, err := Parse("a[0]b")
	assert.Error(t, err)
}

func TestParseLeadingDotInvalid(t *testing.T) {
	_, err := Parse(".a")
	assert.Error(t, err)
}

func TestParseTrailingDotIgnored(t *testing.T) {
	p, err := Parse("a.")
	require.NoError(t, err)
	require.Len(t, p, 1)
}

func TestParseEmptyIndexInvalid(t *testing.T) {
	_, err := Parse("a[]")
	assert.Error(t, err)
}

func TestParseUnterminatedIndexInvalid(t *testing.T) {
	_, err := Parse("a[0")
	assert.Error(t, err)
}
