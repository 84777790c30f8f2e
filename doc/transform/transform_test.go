package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlvdoc/tlvdoc/doc"
	"github.com/tlvdoc/tlvdoc/doc/path"
)

func mustEncode(t *testing.T, text string) []byte {
	bin, err := doc.Encode(text)
	require.NoError(t, err)
	return bin
}

func mustPath(t *testing.T, s string) path.Path {
	p, err := path.Parse(s)
	require.NoError(t, err)
	return p
}

func mustDecode(t *testing.T, bin []byte) string {
	text, err := doc.Decode(bin)
	require.NoError(t, err)
	return text
}

func TestUnsetRootResetsToEmptyObject(t *testing.T) {
	tr := New(mustEncode(t, `{}`))
	require.NoError(t, tr.Unset(mustPath(t, "")))
	assert.Equal(t, "{}", mustDecode(t, tr.Output()))
}

func TestUnsetNestedField(t *testing.T) {
	tr := New(mustEncode(t, `{"foo":{"bar":{"baz":5}}}`))
	require.NoError(t, tr.Unset(mustPath(t, "foo.bar.baz")))
	assert.Equal(t, `{"foo":{"bar":{}}}`, mustDecode(t, tr.Output()))
}

func TestUnsetArrayElementsByIndexAndNegativeIndex(t *testing.T) {
	tr := New(mustEncode(t, `[1,2,["A","B","C"],4,5]`))
	require.NoError(t, tr.Unset(mustPath(t, "[2][1]")))
	require.NoError(t, tr.Unset(mustPath(t, "[2][-1]")))
	assert.Equal(t, `[1,2,["A"],4,5]`, mustDecode(t, tr.Output()))
}

func TestSetThroughScalarParentFails(t *testing.T) {
	orig := mustEncode(t, `{"foo":5}`)
	tr := New(orig)
	err := tr.Set(mustPath(t, "foo.bar"), mustEncode(t, `{}`))
	assert.Error(t, err)
	assert.Equal(t, orig, tr.Output())
}

func TestSetAutoCreatesDeeplyMissingIntermediates(t *testing.T) {
	tr := New(mustEncode(t, `{}`))
	require.NoError(t, tr.Set(mustPath(t, "a.b.c"), mustEncode(t, `1`)))
	assert.Equal(t, `{"a":{"b":{"c":1}}}`, mustDecode(t, tr.Output()))
}

func TestSetCreatesMissingIntermediateObjects(t *testing.T) {
	tr := New(mustEncode(t, `{}`))
	require.NoError(t, tr.Set(mustPath(t, "foo"), mustEncode(t, `{}`)))
	require.NoError(t, tr.Set(mustPath(t, "foo.bar.baz"), mustEncode(t, `true`)))
	assert.Equal(t, `{"foo":{"bar":{"baz":true}}}`, mustDecode(t, tr.Output()))
}

func TestArrayPrependAndAppend(t *testing.T) {
	tr := New(mustEncode(t, `{"foo":[]}`))
	require.NoError(t, tr.ArrayPrepend(mustPath(t, "foo"), mustEncode(t, "5")))
	require.NoError(t, tr.ArrayPrepend(mustPath(t, "foo"), mustEncode(t, "4")))
	require.NoError(t, tr.ArrayAppend(mustPath(t, "foo"), mustEncode(t, "6")))
	assert.Equal(t, `{"foo":[4,5,6]}`, mustDecode(t, tr.Output()))
}

func TestArrayPrependOnNonArrayFails(t *testing.T) {
	orig := mustEncode(t, `{"foo":{}}`)
	tr := New(orig)
	err := tr.ArrayPrepend(mustPath(t, "foo"), mustEncode(t, "5"))
	assert.Error(t, err)
	assert.Equal(t, orig, tr.Output())
}

func TestExtractScalar(t *testing.T) {
	tr := New(mustEncode(t, `{"foo":5}`))
	v, err := tr.Extract(mustPath(t, "foo"))
	require.NoError(t, err)
	assert.Equal(t, "5", mustDecode(t, v))
}

func TestUnsetMissOnMissingPathLeavesDocumentUnchanged(t *testing.T) {
	orig := mustEncode(t, `{"a":1}`)
	tr := New(orig)
	err := tr.Unset(mustPath(t, "b"))
	assert.Error(t, err)
	assert.Equal(t, orig, tr.Output())
}

func TestSetThenExtractRoundTrips(t *testing.T) {
	tr := New(mustEncode(t, `{"a":{"b":1}}`))
	v := mustEncode(t, `"hello"`)
	require.NoError(t, tr.Set(mustPath(t, "a.b"), v))
	out, err := tr.Extract(mustPath(t, "a.b"))
	require.NoError(t, err)
	assert.Equal(t, v, out)
}

func TestSetAppendsNewKeyToObject(t *testing.T) {
	tr := New(mustEncode(t, `{"a":1}`))
	require.NoError(t, tr.Set(mustPath(t, "b"), mustEncode(t, "2")))
	assert.Equal(t, `{"a":1,"b":2}`, mustDecode(t, tr.Output()))
}

func TestSetOverwritesExistingValue(t *testing.T) {
	tr := New(mustEncode(t, `{"a":1}`))
	require.NoError(t, tr.Set(mustPath(t, "a"), mustEncode(t, `"replaced"`)))
	assert.Equal(t, `{"a":"replaced"}`, mustDecode(t, tr.Output()))
}

func TestSetMissingArrayIndexFails(t *testing.T) {
	orig := mustEncode(t, `{"a":[1,2]}`)
	tr := New(orig)
	err := tr.Set(mustPath(t, "a[5]"), mustEncode(t, "3"))
	assert.Error(t, err)
	assert.Equal(t, orig, tr.Output())
}

func TestCascadingVarintRepairAcrossManyLevels(t *testing.T) {
	tr := New(mustEncode(t, `{"a":{"b":{"c":{"d":1}}}}`))
	big := make([]byte, 0, 300)
	big = append(big, '"')
	for i := 0; i < 256; i++ {
		big = append(big, 'x')
	}
	big = append(big, '"')
	require.NoError(t, tr.Set(mustPath(t, "a.b.c.d"), mustEncode(t, string(big))))
	require.NoError(t, doc.Validate(tr.Output()))
	got, err := doc.Decode(tr.Output())
	require.NoError(t, err)
	assert.Contains(t, got, `"a":{"b":{"c":{"d":"`)
}

func TestValidatePathScenarios(t *testing.T) {
	_, err := path.Parse("foo.[3]")
	assert.Error(t, err)

	_, err = path.Parse("foo[3][14]")
	assert.NoError(t, err)
}
