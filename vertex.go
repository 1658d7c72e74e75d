package voxen

// Vertex flows through the pipeline carrying both the per-vertex
// attributes supplied by the mesh and the varyings the vertex stage
// emits for interpolation. Position and Normal start in object space;
// after the vertex stage Normal is in world space, World holds the
// world-space position and Output the clip-space position. Distance is
// the camera distance used by fogged shaders.
type Vertex struct {
	Position Vector
	Normal   Vector
	Texture  Vector
	Color    Color
	World    Vector
	Distance float64
	Output   VectorW
}

// Outside reports whether the transformed vertex lies outside the view
// volume and the primitive needs clipping.
func (v Vertex) Outside() bool {
	return v.Output.Outside()
}

// InterpolateVertexes interpolates every varying with the supplied
// perspective-correct barycentric weights. b.W carries the normalizing
// factor precomputed by the rasterizer.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = interpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = interpolateVectors(v1.Normal, v2.Normal, v3.Normal, b)
	v.Texture = interpolateVectors(v1.Texture, v2.Texture, v3.Texture, b)
	v.Color = interpolateColors(v1.Color, v2.Color, v3.Color, b)
	v.World = interpolateVectors(v1.World, v2.World, v3.World, b)
	v.Distance = (v1.Distance*b.X + v2.Distance*b.Y + v3.Distance*b.Z) * b.W
	v.Output = interpolateVectorWs(v1.Output, v2.Output, v3.Output, b)
	return v
}

func interpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n.X = (v1.X*b.X + v2.X*b.Y + v3.X*b.Z) * b.W
	n.Y = (v1.Y*b.X + v2.Y*b.Y + v3.Y*b.Z) * b.W
	n.Z = (v1.Z*b.X + v2.Z*b.Y + v3.Z*b.Z) * b.W
	return n
}

func interpolateColors(v1, v2, v3 Color, b VectorW) Color {
	c := Color{}
	c.R = (v1.R*b.X + v2.R*b.Y + v3.R*b.Z) * b.W
	c.G = (v1.G*b.X + v2.G*b.Y + v3.G*b.Z) * b.W
	c.B = (v1.B*b.X + v2.B*b.Y + v3.B*b.Z) * b.W
	c.A = (v1.A*b.X + v2.A*b.Y + v3.A*b.Z) * b.W
	return c
}

func interpolateVectorWs(v1, v2, v3 VectorW, b VectorW) VectorW {
	v := VectorW{}
	v.X = (v1.X*b.X + v2.X*b.Y + v3.X*b.Z) * b.W
	v.Y = (v1.Y*b.X + v2.Y*b.Y + v3.Y*b.Z) * b.W
	v.Z = (v1.Z*b.X + v2.Z*b.Y + v3.Z*b.Z) * b.W
	v.W = (v1.W*b.X + v2.W*b.Y + v3.W*b.Z) * b.W
	return v
}
