package voxen

import (
	"testing"

	"github.com/beorn7/floats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOBJFromBytes(t *testing.T) {
	obj := []byte(`
# quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`)
	mesh, err := LoadOBJFromBytes(obj)
	require.NoError(t, err)
	require.Len(t, mesh.Triangles, 2, "quad face triangulates into two")

	tri := mesh.Triangles[0]
	assert.Equal(t, V(0, 0, 1), tri.V1.Normal)
	assert.Equal(t, V(1, 0, 0), tri.V2.Texture)
}

func TestSmoothNormalsUnitLength(t *testing.T) {
	mesh := NewCube()
	mesh.SmoothNormals()
	for _, tri := range mesh.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			assert.True(t, floats.AlmostEqual(1, v.Normal.Length(), 1e-12))
		}
	}
}

func TestSimplifyReducesTriangles(t *testing.T) {
	// a 8x8 grid of quads in one plane collapses well
	mesh := NewEmptyMesh()
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			o := V(float64(x), float64(y), 0)
			mesh.Add(NewTriangleMesh(NewQuad([4]Vector{
				o,
				o.Add(V(1, 0, 0)),
				o.Add(V(1, 1, 0)),
				o.Add(V(0, 1, 0)),
			}, V(0, 0, 1))))
		}
	}
	before := len(mesh.Triangles)
	mesh.Simplify(0.25)
	assert.Less(t, len(mesh.Triangles), before)
	assert.NotZero(t, len(mesh.Triangles))
}

func TestMeshTransformKeepsNormalsPerpendicular(t *testing.T) {
	mesh := NewCube()
	mesh.Transform(Scale(V(3, 1, 1)))
	for _, tri := range mesh.Triangles {
		geo := tri.Normal()
		assert.True(t, floats.AlmostEqual(1, geo.Dot(tri.V1.Normal), 1e-9),
			"vertex normal %+v no longer matches face %+v", tri.V1.Normal, geo)
	}
}

func TestBoundingBoxes(t *testing.T) {
	a := Box{V(0, 0, 0), V(1, 1, 1)}
	b := Box{V(-1, 0.5, 0), V(0.5, 2, 3)}
	got := BoxForBoxes([]Box{a, b})
	assert.Equal(t, V(-1, 0, 0), got.Min)
	assert.Equal(t, V(1, 2, 3), got.Max)
	assert.Equal(t, V(0, 1, 1.5), got.Center())
	assert.Len(t, got.Corners(), 8)
}

func TestClipTriangle(t *testing.T) {
	inside := func(p Vector) Vertex {
		return Vertex{Output: VectorW{p.X, p.Y, p.Z, 1}}
	}

	// fully inside: passes through unchanged
	tri := NewTriangle(inside(V(0, 0, 0)), inside(V(0.5, 0, 0)), inside(V(0, 0.5, 0)))
	out := ClipTriangle(tri)
	require.Len(t, out, 1)

	// fully outside one plane: dropped
	far := NewTriangle(
		Vertex{Output: VectorW{5, 0, 0, 1}},
		Vertex{Output: VectorW{6, 0, 0, 1}},
		Vertex{Output: VectorW{5, 1, 0, 1}})
	assert.Nil(t, ClipTriangle(far))

	// straddling: clipped to the boundary
	straddle := NewTriangle(
		Vertex{Output: VectorW{0, 0, 0, 1}},
		Vertex{Output: VectorW{3, 0, 0, 1}},
		Vertex{Output: VectorW{0, 0.5, 0, 1}})
	clipped := ClipTriangle(straddle)
	require.NotEmpty(t, clipped)
	for _, c := range clipped {
		for _, v := range []Vertex{c.V1, c.V2, c.V3} {
			assert.LessOrEqual(t, v.Output.X, 1.0+1e-12)
		}
	}
}

func TestInterpolateVertexes(t *testing.T) {
	v1 := Vertex{World: V(0, 0, 0), Distance: 0, Texture: V(0, 0, 0), Output: VectorW{0, 0, 0, 1}}
	v2 := Vertex{World: V(2, 0, 0), Distance: 10, Texture: V(1, 0, 0), Output: VectorW{1, 0, 0, 1}}
	v3 := Vertex{World: V(0, 2, 0), Distance: 20, Texture: V(0, 1, 0), Output: VectorW{0, 1, 0, 1}}

	// equal weights, w=1 everywhere
	b := VectorW{1.0 / 3, 1.0 / 3, 1.0 / 3, 1}
	got := InterpolateVertexes(v1, v2, v3, b)
	assert.True(t, floats.AlmostEqual(10, got.Distance, 1e-9))
	vectorsAlmostEqual(t, got.World, V(2.0/3, 2.0/3, 0), 1e-9)
	vectorsAlmostEqual(t, got.Texture, V(1.0/3, 1.0/3, 0), 1e-9)
}
