package unitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertValue_Length(t *testing.T) {
	got, err := ConvertValue(1, "km", "m")
	require.NoError(t, err)
	assert.InDelta(t, 1000, got, 1e-9)

	got, err = ConvertValue(1, "mi", "km")
	require.NoError(t, err)
	assert.InDelta(t, 1.609344, got, 1e-9)
}

func TestConvertValue_Mass(t *testing.T) {
	got, err := ConvertValue(1, "lb", "g")
	require.NoError(t, err)
	assert.InDelta(t, 453.59237, got, 1e-6)
}

func TestConvertValue_DataBinaryVsDecimal(t *testing.T) {
	got, err := ConvertValue(1, "KiB", "B")
	require.NoError(t, err)
	assert.InDelta(t, 1024, got, 1e-9)

	got, err = ConvertValue(1, "KB", "B")
	require.NoError(t, err)
	assert.InDelta(t, 1000, got, 1e-9)

	got, err = ConvertValue(1, "GiB", "MiB")
	require.NoError(t, err)
	assert.InDelta(t, 1024, got, 1e-9)
}

func TestConvertValue_Duration(t *testing.T) {
	got, err := ConvertValue(90, "min", "h")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-9)
}

func TestConvertValue_Temperature(t *testing.T) {
	got, err := ConvertValue(100, "C", "F")
	require.NoError(t, err)
	assert.InDelta(t, 212, got, 1e-9)

	got, err = ConvertValue(0, "C", "K")
	require.NoError(t, err)
	assert.InDelta(t, 273.15, got, 1e-9)

	got, err = ConvertValue(32, "F", "C")
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-9)
}

func TestConvertValue_CrossCategoryFails(t *testing.T) {
	_, err := ConvertValue(1, "kg", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot convert")

	_, err = ConvertValue(1, "m", "C")
	require.Error(t, err)
}

func TestConvertValue_UnknownUnit(t *testing.T) {
	_, err := ConvertValue(1, "parsec", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown unit")
}

func TestConvert_InlineForm(t *testing.T) {
	res := Convert("2 km m", Options{})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "2000", res.Metadata["value"])
	assert.Contains(t, res.Output, "2 km = 2000 m\n")
}

func TestConvert_OptionsForm(t *testing.T) {
	res := Convert("1.5", Options{From: "h", To: "min"})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "90", res.Metadata["value"])
}

func TestConvert_BadValue(t *testing.T) {
	res := Convert("many km m", Options{})
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "invalid value")
}

func TestConvert_MissingUnits(t *testing.T) {
	res := Convert("12", Options{})
	require.False(t, res.Success)
}

func TestUnits_KnownCategory(t *testing.T) {
	units, err := Units("length")
	require.NoError(t, err)
	assert.Contains(t, units, "km")
	assert.Contains(t, units, "mi")
}

func TestUnits_UnknownCategory(t *testing.T) {
	_, err := Units("volume")
	require.Error(t, err)
}

func TestCategories_IncludesTemperature(t *testing.T) {
	assert.Contains(t, Categories(), "temperature")
}
