package voxen

// Shader is the programmable part of the pipeline: Vertex runs once per
// input vertex and emits clip-space output plus varyings, Fragment runs
// once per covered pixel on the interpolated varyings and returns the
// final color, or Discard to drop the pixel. Implementations must be
// pure: identical inputs produce identical outputs, with no state
// mutated during a draw.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// ModelShader is a Shader that takes the object-to-world transform per
// draw. The renderer binds it before issuing an object's mesh; whether
// the shader folds it into its uniform block or keeps it as a separate
// per-draw value is the shader's uniform layout choice.
type ModelShader interface {
	Shader
	BindModel(Matrix)
}
