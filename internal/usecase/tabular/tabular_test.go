package tabular

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSV_OneRowPerElement(t *testing.T) {
	in := `[{"id":1,"name":"ada"},{"id":2,"name":"grace"}]`
	res := ToCSV(in, Options{})
	require.True(t, res.Success, res.Err)

	assert.Equal(t, "id,name\n1,ada\n2,grace\n", res.Output)
	assert.Equal(t, "2", res.Metadata["rows"])
	assert.Equal(t, "2", res.Metadata["columns"])
}

func TestToCSV_CustomDelimiter(t *testing.T) {
	res := ToCSV(`[{"a":1,"b":2}]`, Options{Delimiter: ";"})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "a;b\n1;2\n", res.Output)
}

func TestToCSV_NoHeader(t *testing.T) {
	res := ToCSV(`[{"a":1}]`, Options{NoHeader: true})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "1\n", res.Output)
}

func TestToCSV_NestedObjectsFlattenToDotPaths(t *testing.T) {
	res := ToCSV(`[{"user":{"name":"ada","address":{"city":"London"}},"ok":true}]`, Options{})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "ok,user.address.city,user.name\ntrue,London,ada\n", res.Output)
}

func TestToCSV_NestedArraysSerializeInline(t *testing.T) {
	res := ToCSV(`[{"tags":["a","b"]}]`, Options{})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "tags\n\"[\"\"a\"\",\"\"b\"\"]\"\n", res.Output)
}

func TestToCSV_RaggedRecords(t *testing.T) {
	res := ToCSV(`[{"a":1},{"b":2}]`, Options{})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "a,b\n1,\n,2\n", res.Output)
}

func TestToCSV_SingleObjectIsOneRow(t *testing.T) {
	res := ToCSV(`{"a":1}`, Options{})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "a\n1\n", res.Output)
	assert.Equal(t, "1", res.Metadata["rows"])
}

func TestToCSV_ScalarArray(t *testing.T) {
	res := ToCSV(`[1,2,3]`, Options{})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "value\n1\n2\n3\n", res.Output)
}

func TestToCSV_NullBecomesEmptyCell(t *testing.T) {
	res := ToCSV(`[{"a":null}]`, Options{})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "a\n\n", res.Output)
}

func TestToCSV_RejectsScalarInput(t *testing.T) {
	res := ToCSV(`42`, Options{})
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "expected a JSON array or object")
}

func TestToCSV_RejectsBadDelimiter(t *testing.T) {
	res := ToCSV(`[{"a":1}]`, Options{Delimiter: "ab"})
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "invalid delimiter")
}

func TestToCSV_InvalidJSON(t *testing.T) {
	res := ToCSV(`[`, Options{})
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "invalid JSON")
}

func TestToXLSX_ProducesWorkbook(t *testing.T) {
	res := ToXLSX(`[{"id":1,"name":"ada"}]`, Options{SheetName: "People"})
	require.True(t, res.Success, res.Err)

	assert.Equal(t, "base64", res.Metadata["encoding"])
	assert.Equal(t, "People", res.Metadata["sheet"])

	raw, err := base64.StdEncoding.DecodeString(res.Output)
	require.NoError(t, err)
	// XLSX is a zip container; check the magic bytes.
	require.GreaterOrEqual(t, len(raw), 4)
	assert.Equal(t, []byte{'P', 'K', 0x03, 0x04}, raw[:4])
}
