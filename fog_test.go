package voxen

import (
	"testing"

	"github.com/beorn7/floats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFogAlphaRamp(t *testing.T) {
	tests := []struct {
		name     string
		d        float64
		expected float64
	}{
		{"well before start", 0, 0},
		{"at start", 10, 0},
		{"midpoint", 15, 0.5},
		{"at end", 20, 1},
		{"beyond end", 25, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FogAlpha(10, 20, tt.d)
			assert.True(t, floats.AlmostEqual(tt.expected, got, 1e-12),
				"FogAlpha(10,20,%v) = %v, want %v", tt.d, got, tt.expected)
		})
	}
}

func TestFogAlphaMonotonic(t *testing.T) {
	prev := -1.0
	for d := 9.0; d <= 21; d += 0.25 {
		a := FogAlpha(10, 20, d)
		assert.GreaterOrEqual(t, a, prev, "FogAlpha must not decrease with distance (d=%v)", d)
		prev = a
	}
}

func TestFogFactorRamp(t *testing.T) {
	tests := []struct {
		name     string
		d        float64
		expected float64
	}{
		{"well before start", 0, 1},
		{"at start", 10, 1},
		{"midpoint", 15, 0.5},
		{"at end", 20, 0},
		{"beyond end", 25, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FogFactor(10, 20, tt.d)
			assert.True(t, floats.AlmostEqual(tt.expected, got, 1e-12),
				"FogFactor(10,20,%v) = %v, want %v", tt.d, got, tt.expected)
		})
	}
}

// The two policies use opposite conventions (FogAlpha: 1 = fully faded,
// FogFactor: 1 = fully visible). They agree at the midpoint and nowhere
// past the ramp ends; swapping one for the other inverts the blend.
func TestFogConventionsNotInterchangeable(t *testing.T) {
	assert.Equal(t, 0.5, FogAlpha(10, 20, 15))
	assert.Equal(t, 0.5, FogFactor(10, 20, 15))

	assert.Equal(t, 1.0, FogAlpha(10, 20, 25))
	assert.Equal(t, 0.0, FogFactor(10, 20, 25))

	assert.Equal(t, 0.0, FogAlpha(10, 20, 5))
	assert.Equal(t, 1.0, FogFactor(10, 20, 5))

	for _, d := range []float64{11, 13, 17.5, 19} {
		assert.True(t, floats.AlmostEqual(1-FogAlpha(10, 20, d), FogFactor(10, 20, d), 1e-12))
	}
}

// Discard boundary is inclusive: a factor exactly at the threshold
// drops the fragment.
func TestCutoffDiscardThreshold(t *testing.T) {
	u := &Uniforms{
		Model:    Identity(),
		View:     Identity(),
		Light:    V(0, 0, 1),
		FogStart: 10,
		FogEnd:   20,
	}
	require.NoError(t, u.Validate(FogHardCutoff))
	shader := NewCutoffFogShader(u)

	frag := func(d float64) Color {
		v := Vertex{
			Normal:  V(0, 0, 1),
			World:   V(0, 0, d),
			Texture: V(0.5, 0.5, 0),
		}
		return shader.Fragment(v, &Object{Texture: &SolidTexture{Color: White}})
	}

	// d=19 -> factor 0.1 -> discarded; d=18 -> factor 0.2 -> kept
	assert.True(t, frag(19).IsDiscard())
	assert.False(t, frag(18).IsDiscard())
	assert.True(t, frag(25).IsDiscard())
	assert.False(t, frag(5).IsDiscard())
}

func TestUniformsValidate(t *testing.T) {
	u := &Uniforms{FogStart: 20, FogEnd: 20}
	assert.Error(t, u.Validate(FogAlphaFade))
	assert.Error(t, u.Validate(FogHardCutoff))
	// Fogless pipelines never read the range.
	assert.NoError(t, u.Validate(FogNone))

	u.FogEnd = 30
	assert.NoError(t, u.Validate(FogAlphaFade))

	u.FogStart, u.FogEnd = 30, 20
	assert.Error(t, u.Validate(FogAlphaFade))
}
