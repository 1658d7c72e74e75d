package voxen

import (
	"errors"
	"fmt"
)

// UniformLayout selects where the model matrix comes from. The two
// layouts reflect the two historical binding contracts and are chosen
// at pipeline setup, never mixed within one draw.
type UniformLayout int

const (
	// LayoutBundled reads the model matrix from Uniforms.Model.
	LayoutBundled UniformLayout = iota
	// LayoutPerDraw takes the model matrix as a separate per-draw
	// value, supplied as an mgl64.Mat4 via Shader bind.
	LayoutPerDraw
)

// Uniforms is the per-draw uniform block: written once by the renderer
// before a draw, read-only while the draw is in flight, replaced
// wholesale for the next one. Both shading stages read it by reference;
// nothing in the pipeline mutates it.
type Uniforms struct {
	Model      Matrix
	View       Matrix
	Projection Matrix

	// Light is treated as a direction; it need not be unit length, the
	// fragment stage re-normalizes before every dot product.
	Light Vector

	// CameraPos and the fog range are only read by fogged variants.
	CameraPos Vector
	FogStart  float64
	FogEnd    float64
}

var errFogRange = errors.New("voxen: fog start must be strictly less than fog end")

// Validate checks the setup-time preconditions. A degenerate fog range
// would divide by zero inside the per-fragment ramp, so it is rejected
// here rather than surfacing as per-pixel NaNs.
func (u *Uniforms) Validate(fog FogPolicy) error {
	if fog == FogNone {
		return nil
	}
	if !(u.FogStart < u.FogEnd) {
		return fmt.Errorf("%w (start=%v end=%v)", errFogRange, u.FogStart, u.FogEnd)
	}
	return nil
}

// MVP composes projection * view * model in the fixed order the
// pipeline requires.
func (u *Uniforms) MVP(model Matrix) Matrix {
	return u.Projection.Mul(u.View).Mul(model)
}
