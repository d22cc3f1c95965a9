package jsontype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_FlatObject(t *testing.T) {
	res := Convert(`{"name":"ada","age":36,"active":true}`, Options{})
	require.True(t, res.Success, res.Err)

	want := "interface Root {\n" +
		"  active: boolean;\n" +
		"  age: number;\n" +
		"  name: string;\n" +
		"}\n"
	assert.Equal(t, want, res.Output)
	assert.Equal(t, "1", res.Metadata["declarations"])
	assert.Equal(t, "3", res.Metadata["members"])
}

func TestConvert_NestedObjectGetsNamedInterface(t *testing.T) {
	res := Convert(`{"user":{"id":1}}`, Options{})
	require.True(t, res.Success, res.Err)

	assert.Contains(t, res.Output, "interface User {\n  id: number;\n}")
	assert.Contains(t, res.Output, "user: User;")
}

func TestConvert_ArrayOfObjectsSingularizesHint(t *testing.T) {
	res := Convert(`{"users":[{"id":1},{"id":2}]}`, Options{})
	require.True(t, res.Success, res.Err)

	assert.Contains(t, res.Output, "interface User {")
	assert.Contains(t, res.Output, "users: User[];")
}

func TestConvert_MixedArrayUnion(t *testing.T) {
	res := Convert(`{"values":[1,"two",true]}`, Options{})
	require.True(t, res.Success, res.Err)

	assert.Contains(t, res.Output, "values: (boolean | number | string)[];")
}

func TestConvert_EmptyArray(t *testing.T) {
	res := Convert(`{"items":[]}`, Options{})
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "items: unknown[];")
}

func TestConvert_OptionalNull(t *testing.T) {
	res := Convert(`{"nick":null}`, Options{OptionalNull: true})
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "nick?: null;")
}

func TestConvert_ExportAndNoSemicolons(t *testing.T) {
	res := Convert(`{"id":1}`, Options{Export: true, NoSemicolons: true})
	require.True(t, res.Success, res.Err)

	assert.Contains(t, res.Output, "export interface Root {")
	assert.Contains(t, res.Output, "  id: number\n")
}

func TestConvert_InlineMode(t *testing.T) {
	res := Convert(`{"user":{"id":1,"name":"ada"}}`, Options{Inline: true})
	require.True(t, res.Success, res.Err)

	assert.Contains(t, res.Output, "type Root = { user: { id: number; name: string } };")
}

func TestConvert_ScalarRootBecomesAlias(t *testing.T) {
	res := Convert(`42`, Options{RootName: "answer"})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "type Answer = number;\n", res.Output)
}

func TestConvert_QuotesNonIdentifierKeys(t *testing.T) {
	res := Convert(`{"content-type":"text/html"}`, Options{})
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, `"content-type": string;`)
}

func TestConvert_NameCollision(t *testing.T) {
	res := Convert(`{"user":{"id":1},"owner":{"user":{"id":2}}}`, Options{})
	require.True(t, res.Success, res.Err)

	assert.Contains(t, res.Output, "interface User {")
	assert.Contains(t, res.Output, "interface User2 {")
}

func TestConvert_InvalidJSON(t *testing.T) {
	res := Convert(`{nope`, Options{})
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "invalid JSON")
}
