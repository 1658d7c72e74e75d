package voxen

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color with float64 channels in nominal [0,1] range.
// Channels are deliberately not clamped by the arithmetic here; shading
// math is allowed to extrapolate outside the range (see Lerp).
type Color struct {
	R, G, B, A float64
}

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{}

	// Discard is a sentinel returned by a fragment shader to drop the
	// pixel entirely: no depth write, no color write, no blend.
	Discard = Color{-1, -1, -1, -1}
)

// Gray returns an opaque gray of the given intensity.
func Gray(x float64) Color {
	return Color{x, x, x, 1}
}

// MakeColor converts a stdlib color.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// un-premultiply
	fa := float64(a) / 65535
	return Color{
		float64(r) / float64(a),
		float64(g) / float64(a),
		float64(b) / float64(a),
		fa}
}

// HexColor parses "rgb", "rrggbb" or "rrggbbaa", with or without a
// leading '#'. Unparseable input yields opaque black.
func HexColor(x string) Color {
	if len(x) > 0 && x[0] == '#' {
		x = x[1:]
	}
	var r, g, b, a int
	a = 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = r*16 + r
		g = g*16 + g
		b = b*16 + b
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// NRGBA converts to 8-bit non-premultiplied RGBA, clamping to [0,1]
// only at this output boundary.
func (c Color) NRGBA() color.NRGBA {
	r := uint8(math.Max(0, math.Min(1, c.R)) * 255)
	g := uint8(math.Max(0, math.Min(1, c.G)) * 255)
	b := uint8(math.Max(0, math.Min(1, c.B)) * 255)
	a := uint8(math.Max(0, math.Min(1, c.A)) * 255)
	return color.NRGBA{r, g, b, a}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

func (a Color) MulScalar(b float64) Color {
	return Color{a.R * b, a.G * b, a.B * b, a.A * b}
}

func (a Color) DivScalar(b float64) Color {
	return Color{a.R / b, a.G / b, a.B / b, a.A / b}
}

// Lerp blends componentwise: a*(1-t) + b*t. t is not clamped, so values
// outside [0,1] extrapolate linearly.
func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Sub(a).MulScalar(t))
}

func (a Color) Min(b Color) Color {
	return Color{
		math.Min(a.R, b.R),
		math.Min(a.G, b.G),
		math.Min(a.B, b.B),
		math.Min(a.A, b.A)}
}

func (a Color) Max(b Color) Color {
	return Color{
		math.Max(a.R, b.R),
		math.Max(a.G, b.G),
		math.Max(a.B, b.B),
		math.Max(a.A, b.A)}
}

// Alpha returns the color with its alpha channel replaced.
func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}

// Opaque forces full alpha, used before fog blending so the blend
// operates purely on the fog factor.
func (a Color) Opaque() Color {
	return Color{a.R, a.G, a.B, 1}
}

// IsDiscard reports whether the color is the discard sentinel.
func (a Color) IsDiscard() bool {
	return a.A < 0
}
