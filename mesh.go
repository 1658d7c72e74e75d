package voxen

import (
	"math"

	"github.com/fogleman/simplify"
)

// Mesh is a bag of triangles and wireframe lines.
type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
}

func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles, nil}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{nil, lines}
}

func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

// Add appends another mesh's primitives.
func (m *Mesh) Add(b *Mesh) {
	m.Triangles = append(m.Triangles, b.Triangles...)
	m.Lines = append(m.Lines, b.Lines...)
}

func (m *Mesh) Copy() *Mesh {
	triangles := make([]*Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		a := *t
		triangles[i] = &a
	}
	lines := make([]*Line, len(m.Lines))
	for i, l := range m.Lines {
		a := *l
		lines[i] = &a
	}
	return NewMesh(triangles, lines)
}

func (m *Mesh) BoundingBox() Box {
	box := EmptyBox
	for _, t := range m.Triangles {
		box = box.Extend(t.BoundingBox())
	}
	for _, l := range m.Lines {
		box = box.Extend(l.BoundingBox())
	}
	return box
}

func (m *Mesh) Transform(matrix Matrix) {
	for _, t := range m.Triangles {
		t.Transform(matrix)
	}
	for _, l := range m.Lines {
		l.Transform(matrix)
	}
}

func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

// SmoothNormals averages the face normals shared by each position,
// giving interpolation-friendly vertex normals.
func (m *Mesh) SmoothNormals() {
	lookup := make(map[Vector]Vector)
	for _, t := range m.Triangles {
		n := t.Normal()
		lookup[t.V1.Position] = lookup[t.V1.Position].Add(n)
		lookup[t.V2.Position] = lookup[t.V2.Position].Add(n)
		lookup[t.V3.Position] = lookup[t.V3.Position].Add(n)
	}
	for k, v := range lookup {
		lookup[k] = v.Normalize()
	}
	for _, t := range m.Triangles {
		t.V1.Normal = lookup[t.V1.Position]
		t.V2.Normal = lookup[t.V2.Position]
		t.V3.Normal = lookup[t.V3.Position]
	}
}

// Simplify reduces the triangle count to roughly factor (0,1] of the
// original, dropping texture coordinates in the process.
func (m *Mesh) Simplify(factor float64) {
	st := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		v1 := simplify.Vector(t.V1.Position)
		v2 := simplify.Vector(t.V2.Position)
		v3 := simplify.Vector(t.V3.Position)
		st[i] = simplify.NewTriangle(v1, v2, v3)
	}
	sm := simplify.NewMesh(st)
	sm = sm.Simplify(factor)
	m.Triangles = make([]*Triangle, len(sm.Triangles))
	for i, t := range sm.Triangles {
		p1 := Vector(t.V1)
		p2 := Vector(t.V2)
		p3 := Vector(t.V3)
		m.Triangles[i] = NewTriangleForPoints(p1, p2, p3)
	}
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

var EmptyBox = Box{
	Vector{math.Inf(1), math.Inf(1), math.Inf(1)},
	Vector{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
}

func BoxForBoxes(boxes []Box) Box {
	box := EmptyBox
	for _, b := range boxes {
		box = box.Extend(b)
	}
	return box
}

func (a Box) Extend(b Box) Box {
	return Box{a.Min.Min(b.Min), a.Max.Max(b.Max)}
}

func (a Box) Center() Vector {
	return a.Min.Lerp(a.Max, 0.5)
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}

func (a Box) Corners() []Vector {
	x0, y0, z0 := a.Min.X, a.Min.Y, a.Min.Z
	x1, y1, z1 := a.Max.X, a.Max.Y, a.Max.Z
	return []Vector{
		{x0, y0, z0}, {x1, y0, z0},
		{x0, y1, z0}, {x1, y1, z0},
		{x0, y0, z1}, {x1, y0, z1},
		{x0, y1, z1}, {x1, y1, z1},
	}
}
