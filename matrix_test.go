package voxen

import (
	"math"
	"testing"

	"github.com/beorn7/floats"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vectorsAlmostEqual(t *testing.T, a, b Vector, epsilon float64) {
	t.Helper()
	assert.True(t, floats.AlmostEqual(a.X, b.X, epsilon) &&
		floats.AlmostEqual(a.Y, b.Y, epsilon) &&
		floats.AlmostEqual(a.Z, b.Z, epsilon),
		"%+v != %+v", a, b)
}

// Under rotation plus uniform scale the inverse-transpose is
// proportional to the rotation, so the normalized result must match
// rotating the normal directly.
func TestNormalMatrixUniformScale(t *testing.T) {
	rot := Rotate(V(0.3, 1, -0.2), Radians(40))
	model := rot.Mul(Scale(V(3, 3, 3))).Mul(Translate(V(5, -2, 9)))

	n := V(0, 1, 0)
	got := model.NormalMatrix().MulDirection(n).Normalize()
	want := rot.MulDirection(n).Normalize()
	vectorsAlmostEqual(t, got, want, 1e-9)
}

// Under non-uniform scale the naive model-matrix transform bends
// normals away from the surface; the normal matrix must not.
func TestNormalMatrixNonUniformScale(t *testing.T) {
	model := Scale(V(2, 1, 1))

	// A surface direction within the slanted plane whose normal is n.
	n := V(1, 1, 0).Normalize()
	tangent := V(-1, 1, 0).Normalize()

	naive := model.MulDirection(n).Normalize()
	correct := model.NormalMatrix().MulDirection(n).Normalize()
	assert.False(t, floats.AlmostEqual(naive.X, correct.X, 1e-9),
		"non-uniform scale must make the naive transform differ")

	// The transformed normal stays perpendicular to the transformed
	// tangent.
	worldTangent := model.MulDirection(tangent)
	assert.True(t, floats.AlmostEqual(0, correct.Dot(worldTangent), 1e-9),
		"normal must remain perpendicular, dot = %v", correct.Dot(worldTangent))
}

// A degenerate scale must fall back instead of producing NaNs.
func TestNormalMatrixSingularFallback(t *testing.T) {
	model := Scale(V(1, 0, 1))
	n := model.NormalMatrix().MulDirection(V(0, 1, 0))
	assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z),
		"singular model matrix leaked NaNs: %+v", n)
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	m := Translate(V(1, 2, 3)).Mul(Rotate(V(1, 0.5, 0.25), 1.1)).Mul(Scale(V(2, 3, 4)))
	id := m.Mul(m.Inverse())
	want := Identity()
	assert.True(t, floats.AlmostEqual(id.X00, want.X00, 1e-9))
	assert.True(t, floats.AlmostEqual(id.X11, want.X11, 1e-9))
	assert.True(t, floats.AlmostEqual(id.X22, want.X22, 1e-9))
	assert.True(t, floats.AlmostEqual(id.X33, want.X33, 1e-9))
	assert.True(t, floats.AlmostEqual(id.X03, 0, 1e-9))
	assert.True(t, floats.AlmostEqual(id.X30, 0, 1e-9))
}

func TestMat4RoundTrip(t *testing.T) {
	m := Translate(V(1, 2, 3)).Mul(Rotate(V(0, 1, 0), 0.7))
	back := FromMat4(m.Mat4())
	require.Equal(t, m, back)

	// The conversion must agree with mgl64's own transform semantics.
	p := V(3, -1, 2)
	mp := m.MulPosition(p)
	v4 := m.Mat4().Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	vectorsAlmostEqual(t, mp, V(v4[0], v4[1], v4[2]), 1e-12)
}

// The object->world->view->clip composition is fixed; reordering is a
// different transform.
func TestMVPOrder(t *testing.T) {
	u := &Uniforms{
		View:       LookAt(V(0, 0, 5), V(0, 0, 0), V(0, 1, 0)),
		Projection: Perspective(60, 1, 1, 100),
	}
	model := Translate(V(1, 0, 0))

	manual := u.Projection.Mul(u.View).Mul(model).MulPositionW(V(0, 0, 0))
	got := u.MVP(model).MulPositionW(V(0, 0, 0))
	require.Equal(t, manual, got)

	reordered := model.Mul(u.View).Mul(u.Projection).MulPositionW(V(0, 0, 0))
	assert.NotEqual(t, manual, reordered)
}

func TestLookAtPerspectiveChain(t *testing.T) {
	eye := V(0, 0, 5)
	chained := LookAt(eye, V(0, 0, 0), V(0, 1, 0)).Perspective(60, 1, 1, 100)
	composed := Perspective(60, 1, 1, 100).Mul(LookAt(eye, V(0, 0, 0), V(0, 1, 0)))
	require.Equal(t, composed, chained)
}
