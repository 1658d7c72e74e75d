package voxen

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpUnclamped(t *testing.T) {
	dark := Color{0.5, 0, 0, 1}
	full := Color{1, 0, 0, 1}

	assert.Equal(t, dark, dark.Lerp(full, 0))
	assert.Equal(t, full, dark.Lerp(full, 1))

	// t outside [0,1] extrapolates linearly instead of clamping
	below := dark.Lerp(full, -1)
	assert.Equal(t, 0.0, below.R)
	above := dark.Lerp(full, 2)
	assert.Equal(t, 1.5, above.R)
}

func TestMixScalarUnclamped(t *testing.T) {
	assert.Equal(t, 0.5, Mix(0, 1, 0.5))
	assert.Equal(t, -1.0, Mix(0, 1, -1))
	assert.Equal(t, 2.0, Mix(0, 1, 2))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0, 1}, HexColor("ff0000"))
	assert.Equal(t, Color{1, 0, 0, 1}, HexColor("#ff0000"))
	assert.Equal(t, Color{1, 1, 1, 1}, HexColor("fff"))
	assert.Equal(t, 0.0, HexColor("00000000").A)
}

// NRGBA conversion clamps only at the output boundary; the float
// channels themselves are free to leave [0,1].
func TestNRGBAClampsAtBoundary(t *testing.T) {
	c := Color{1.5, -0.25, 0.5, 1}
	got := c.NRGBA()
	assert.Equal(t, color.NRGBA{255, 0, 127, 255}, got)
}

func TestDiscardSentinel(t *testing.T) {
	assert.True(t, Discard.IsDiscard())
	assert.False(t, Transparent.IsDiscard())
	assert.False(t, White.IsDiscard())
}

func TestOpaque(t *testing.T) {
	c := Color{0.2, 0.4, 0.6, 0.1}
	assert.Equal(t, Color{0.2, 0.4, 0.6, 1}, c.Opaque())
}
