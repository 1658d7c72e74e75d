package voxen

// Triangle is the primitive the rasterizer consumes.
type Triangle struct {
	V1, V2, V3 Vertex
}

func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	t := Triangle{}
	t.V1 = v1
	t.V2 = v2
	t.V3 = v3
	return &t
}

// NewTriangleForPoints builds a triangle from bare positions with the
// face normal applied to every vertex.
func NewTriangleForPoints(p1, p2, p3 Vector) *Triangle {
	t := Triangle{}
	t.V1.Position = p1
	t.V2.Position = p2
	t.V3.Position = p3
	n := t.Normal()
	t.V1.Normal = n
	t.V2.Normal = n
	t.V3.Normal = n
	return &t
}

func (t *Triangle) Normal() Vector {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// FixNormals fills in any zero vertex normals with the face normal.
func (t *Triangle) FixNormals() {
	n := t.Normal()
	zero := Vector{}
	if t.V1.Normal == zero {
		t.V1.Normal = n
	}
	if t.V2.Normal == zero {
		t.V2.Normal = n
	}
	if t.V3.Normal == zero {
		t.V3.Normal = n
	}
}

func (t *Triangle) SetColor(c Color) {
	t.V1.Color = c
	t.V2.Color = c
	t.V3.Color = c
}

func (t *Triangle) BoundingBox() Box {
	min := t.V1.Position.Min(t.V2.Position).Min(t.V3.Position)
	max := t.V1.Position.Max(t.V2.Position).Max(t.V3.Position)
	return Box{min, max}
}

func (t *Triangle) Transform(matrix Matrix) {
	t.V1.Position = matrix.MulPosition(t.V1.Position)
	t.V2.Position = matrix.MulPosition(t.V2.Position)
	t.V3.Position = matrix.MulPosition(t.V3.Position)
	n := matrix.NormalMatrix()
	t.V1.Normal = n.MulDirection(t.V1.Normal).Normalize()
	t.V2.Normal = n.MulDirection(t.V2.Normal).Normalize()
	t.V3.Normal = n.MulDirection(t.V3.Normal).Normalize()
}

// Line is a two-vertex primitive used for wireframe rendering.
type Line struct {
	V1, V2 Vertex
}

func NewLine(v1, v2 Vertex) *Line {
	return &Line{v1, v2}
}

func NewLineForPoints(p1, p2 Vector) *Line {
	l := Line{}
	l.V1.Position = p1
	l.V2.Position = p2
	return &l
}

func (l *Line) BoundingBox() Box {
	min := l.V1.Position.Min(l.V2.Position)
	max := l.V1.Position.Max(l.V2.Position)
	return Box{min, max}
}

func (l *Line) Transform(matrix Matrix) {
	l.V1.Position = matrix.MulPosition(l.V1.Position)
	l.V2.Position = matrix.MulPosition(l.V2.Position)
}
