package voxen

import "github.com/go-gl/mathgl/mgl64"

// BlockShader is the shading pipeline for world geometry. One
// implementation covers every variant; the fields select the behavior
// instead of duplicating the algorithm per combination:
//
//	Textured  — sample the object's texture, or mix two fixed accent
//	            colors for untextured debug geometry
//	Fog       — none, alpha fade, or hard cutoff with discard
//	Darken    — the two-tone darkening factor (0.5 classic, 0.7 for
//	            the hard-cutoff variant)
//
// Brightness and blend factors are intentionally unclamped: back-facing
// surfaces extrapolate below the dark tone rather than clamping to
// black. That is the look, not a bug.
type BlockShader struct {
	Uniforms *Uniforms
	Layout   UniformLayout

	Textured  bool
	DarkColor Color
	BaseColor Color
	Darken    float64

	Fog              FogPolicy
	DiscardThreshold float64

	// LocalSpaceFog reproduces the historical alpha-fade behavior of
	// measuring fog distance against the untransformed local position.
	// Only correct for untransformed geometry at the origin; off by
	// default, kept for bit-compatibility with old scenes.
	LocalSpaceFog bool

	model  Matrix
	mvp    Matrix
	normal Matrix
}

// NewBlockShader returns the textured variant with the classic 0.5
// darkening and no fog.
func NewBlockShader(u *Uniforms) *BlockShader {
	s := &BlockShader{
		Uniforms: u,
		Textured: true,
		Darken:   0.5,
	}
	s.BindModel(u.Model)
	return s
}

// NewFlatShader returns the untextured lit-only variant that mixes a
// dark accent into a base accent by brightness.
func NewFlatShader(u *Uniforms, dark, base Color) *BlockShader {
	s := &BlockShader{
		Uniforms:  u,
		DarkColor: dark,
		BaseColor: base,
		Darken:    0.5,
	}
	s.BindModel(u.Model)
	return s
}

// NewFogShader returns the textured alpha-fade fog variant. The fog
// range must already satisfy Uniforms.Validate.
func NewFogShader(u *Uniforms) *BlockShader {
	s := NewBlockShader(u)
	s.Fog = FogAlphaFade
	return s
}

// NewCutoffFogShader returns the hard-cutoff fog variant used for
// streamed world geometry: 0.7 darkening, per-fragment world-space fog
// distance, and fragments at or below the visibility threshold are
// discarded outright instead of blended.
func NewCutoffFogShader(u *Uniforms) *BlockShader {
	s := NewBlockShader(u)
	s.Fog = FogHardCutoff
	s.Darken = 0.7
	s.DiscardThreshold = DefaultDiscardThreshold
	return s
}

// BindModel installs the object-to-world transform for the next draw
// and precomputes the matrices both stages read. Under LayoutBundled
// the model matrix also lands in the uniform block; under LayoutPerDraw
// it stays a separate per-draw value.
func (s *BlockShader) BindModel(model Matrix) {
	if s.Layout == LayoutBundled {
		s.Uniforms.Model = model
	}
	s.model = model
	s.mvp = s.Uniforms.MVP(model)
	s.normal = model.NormalMatrix()
}

// BindModelMat4 is BindModel for callers holding an mgl64 column-major
// model matrix.
func (s *BlockShader) BindModelMat4(model mgl64.Mat4) {
	s.BindModel(FromMat4(model))
}

// Vertex transforms one vertex into clip space and emits the varyings.
// The world-space normal comes from the inverse-transpose of the model
// matrix's linear part; it is left unnormalized here and re-normalized
// in the fragment stage, after interpolation has had its say.
func (s *BlockShader) Vertex(v Vertex) Vertex {
	u := s.Uniforms
	v.World = s.model.MulPosition(v.Position)
	v.Normal = s.normal.MulDirection(v.Normal)
	if s.Fog == FogAlphaFade {
		if s.LocalSpaceFog {
			v.Distance = u.CameraPos.Distance(v.Position)
		} else {
			v.Distance = u.CameraPos.Distance(v.World)
		}
	}
	v.Output = s.mvp.MulPositionW(v.Position)
	return v
}

// Fragment resolves the final color: unclamped Lambertian brightness
// mixes the darkened tone into the full tone, then the configured fog
// policy attenuates by camera distance.
func (s *BlockShader) Fragment(v Vertex, fromObject *Object) Color {
	u := s.Uniforms
	brightness := v.Normal.Normalize().Dot(u.Light.Normalize())

	var lit Color
	switch {
	case s.Textured && fromObject != nil && fromObject.Texture != nil:
		tex := fromObject.Texture.Sample(v.Texture.X, v.Texture.Y)
		dark := tex.MulScalar(s.Darken).Alpha(tex.A)
		lit = dark.Lerp(tex, brightness)
	case s.Textured && fromObject != nil:
		// Textured pipeline, untextured object: shade its base color
		// with the same two-tone model.
		base := fromObject.Color
		dark := base.MulScalar(s.Darken).Alpha(base.A)
		lit = dark.Lerp(base, brightness)
	default:
		lit = s.DarkColor.Lerp(s.BaseColor, brightness)
	}

	switch s.Fog {
	case FogAlphaFade:
		a := FogAlpha(u.FogStart, u.FogEnd, v.Distance)
		lit = lit.Opaque().Lerp(Transparent, a)
	case FogHardCutoff:
		// Distance is measured per fragment here, from the
		// interpolated world position.
		d := u.CameraPos.Distance(v.World)
		f := FogFactor(u.FogStart, u.FogEnd, d)
		if f <= s.DiscardThreshold {
			return Discard
		}
		lit = Transparent.Lerp(lit.Opaque(), f)
	}
	return lit
}
