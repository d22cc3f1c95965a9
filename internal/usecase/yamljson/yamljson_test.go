package yamljson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON_Basic(t *testing.T) {
	res := ToJSON("name: ada\nage: 36\nactive: true\n", Options{})
	require.True(t, res.Success, res.Err)
	assert.JSONEq(t, `{"name":"ada","age":36,"active":true}`, res.Output)
}

func TestToJSON_NestedAndLists(t *testing.T) {
	in := "users:\n  - name: ada\n    tags: [math, pioneer]\n"
	res := ToJSON(in, Options{Compact: true})
	require.True(t, res.Success, res.Err)
	assert.JSONEq(t, `{"users":[{"name":"ada","tags":["math","pioneer"]}]}`, res.Output)
}

func TestToJSON_IndentOption(t *testing.T) {
	res := ToJSON("a: 1\n", Options{Indent: 4})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "{\n    \"a\": 1\n}\n", res.Output)
}

func TestToJSON_InvalidYAML(t *testing.T) {
	res := ToJSON(":\n  - ]broken", Options{})
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "invalid YAML")
}

func TestToYAML_Basic(t *testing.T) {
	res := ToYAML(`{"name":"ada","age":36}`)
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "name: ada\n")
	assert.Contains(t, res.Output, "age: 36\n")
}

func TestToYAML_InvalidJSON(t *testing.T) {
	res := ToYAML(`{nope`)
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "invalid JSON")
}

func TestRoundTrip(t *testing.T) {
	const in = `{"service":{"port":8080,"hosts":["a","b"]}}`
	y := ToYAML(in)
	require.True(t, y.Success)

	j := ToJSON(y.Output, Options{Compact: true})
	require.True(t, j.Success, j.Err)
	assert.JSONEq(t, in, j.Output)
}
