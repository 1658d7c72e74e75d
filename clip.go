package voxen

// Clipping against the canonical view volume in homogeneous clip space,
// one plane at a time (Sutherland-Hodgman). Varyings are re-derived by
// linear interpolation along each clipped edge.

type clipPlane struct {
	// distance(v) >= 0 means inside
	distance func(VectorW) float64
}

var clipPlanes = []clipPlane{
	{func(v VectorW) float64 { return v.W + v.X }},
	{func(v VectorW) float64 { return v.W - v.X }},
	{func(v VectorW) float64 { return v.W + v.Y }},
	{func(v VectorW) float64 { return v.W - v.Y }},
	{func(v VectorW) float64 { return v.W + v.Z }},
	{func(v VectorW) float64 { return v.W - v.Z }},
}

func interpolateVertex(v1, v2 Vertex, t float64) Vertex {
	v := Vertex{}
	v.Position = v1.Position.Lerp(v2.Position, t)
	v.Normal = v1.Normal.Lerp(v2.Normal, t)
	v.Texture = v1.Texture.Lerp(v2.Texture, t)
	v.Color = v1.Color.Lerp(v2.Color, t)
	v.World = v1.World.Lerp(v2.World, t)
	v.Distance = Mix(v1.Distance, v2.Distance, t)
	v.Output = v1.Output.Add(v2.Output.Sub(v1.Output).MulScalar(t))
	return v
}

func clipPolygon(vs []Vertex, p clipPlane) []Vertex {
	var out []Vertex
	for i := range vs {
		a := vs[(i+len(vs)-1)%len(vs)]
		b := vs[i]
		da := p.distance(a.Output)
		db := p.distance(b.Output)
		if da >= 0 != (db >= 0) {
			t := da / (da - db)
			out = append(out, interpolateVertex(a, b, t))
		}
		if db >= 0 {
			out = append(out, b)
		}
	}
	return out
}

// ClipTriangle clips a triangle against the view volume and fans the
// resulting polygon back into triangles. The result may be empty.
func ClipTriangle(t *Triangle) []*Triangle {
	vs := []Vertex{t.V1, t.V2, t.V3}
	for _, p := range clipPlanes {
		vs = clipPolygon(vs, p)
		if len(vs) == 0 {
			return nil
		}
	}
	var result []*Triangle
	for i := 2; i < len(vs); i++ {
		result = append(result, NewTriangle(vs[0], vs[i-1], vs[i]))
	}
	return result
}

// ClipLine clips a line segment against the view volume, returning nil
// when fully outside.
func ClipLine(l *Line) *Line {
	v1 := l.V1
	v2 := l.V2
	for _, p := range clipPlanes {
		d1 := p.distance(v1.Output)
		d2 := p.distance(v2.Output)
		if d1 < 0 && d2 < 0 {
			return nil
		}
		if d1 < 0 {
			v1 = interpolateVertex(v1, v2, d1/(d1-d2))
		} else if d2 < 0 {
			v2 = interpolateVertex(v2, v1, d2/(d2-d1))
		}
	}
	return NewLine(v1, v2)
}
