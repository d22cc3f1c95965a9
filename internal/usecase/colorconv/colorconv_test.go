package colorconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_HexLong(t *testing.T) {
	res := Convert("#1e90ff")
	require.True(t, res.Success, res.Err)

	assert.Contains(t, res.Output, "hex:  #1e90ff\n")
	assert.Contains(t, res.Output, "rgb:  rgb(30, 144, 255)\n")
	assert.Equal(t, "30", res.Metadata["r"])
	assert.Equal(t, "144", res.Metadata["g"])
	assert.Equal(t, "255", res.Metadata["b"])
}

func TestConvert_HexShortExpands(t *testing.T) {
	res := Convert("#f0a")
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "hex:  #ff00aa\n")
}

func TestConvert_RGBRoundTripsToHex(t *testing.T) {
	res := Convert("rgb(255, 0, 170)")
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "hex:  #ff00aa\n")
}

func TestConvert_HSL(t *testing.T) {
	res := Convert("hsl(0, 100%, 50%)")
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "hex:  #ff0000\n")
	assert.Contains(t, res.Output, "rgb:  rgb(255, 0, 0)\n")
}

func TestConvert_White(t *testing.T) {
	res := Convert("#ffffff")
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "hsl:  hsl(0, 0%, 100%)\n")
	assert.Contains(t, res.Output, "hsv:  hsv(0, 0%, 100%)\n")
}

func TestConvert_OutOfRangeRGBComponent(t *testing.T) {
	res := Convert("rgb(300, 0, 0)")
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "out of range")
}

func TestConvert_OutOfRangeHue(t *testing.T) {
	res := Convert("hsl(400, 50%, 50%)")
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "out of range")
}

func TestConvert_Unrecognized(t *testing.T) {
	res := Convert("bluish")
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "unrecognized color")
}
