package voxen

// SolidShader renders everything in one flat color, with an optional
// normal-extrusion thickness for outline passes. Used for wireframes
// and debug geometry; no lighting, no fog.
type SolidShader struct {
	ViewProjection Matrix
	Color          Color
	Thickness      float64

	mvp Matrix
}

func NewSolidShader(viewProjection Matrix, color Color) *SolidShader {
	return &SolidShader{ViewProjection: viewProjection, Color: color, mvp: viewProjection}
}

func (s *SolidShader) BindModel(model Matrix) {
	s.mvp = s.ViewProjection.Mul(model)
}

func (s *SolidShader) Vertex(v Vertex) Vertex {
	p := v.Position
	if s.Thickness != 0 {
		p = p.Add(v.Normal.MulScalar(s.Thickness))
	}
	v.Output = s.mvp.MulPositionW(p)
	return v
}

func (s *SolidShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}
