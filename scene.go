package voxen

import (
	"image"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Scene ties a camera, a shader and a set of objects to a rendering
// context. Rendering happens at size*scale and is downsampled back to
// size on output when scale > 1.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          Shader
	eye, center, up Vector
	fovy, aspect    float64
	size, scale     int
}

// NewScene returns a new scene rendered at size*scale pixels.
func NewScene(eye Vector, center Vector, up Vector, fovy float64, size int, scale int, shader Shader) *Scene {
	aspect := float64(size) / float64(size)
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{context, nil, shader, eye, center, up, fovy, aspect, size, scale}
}

// AddObject adds an object to the scene
func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

// AddObjects is a convenience method to add multiple objects
func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

// FitSceneFovy picks the vertical field of view that frames every
// object, with a little padding so nothing clips the image border.
func (s *Scene) FitSceneFovy(eye, center, up Vector, aspect float64) float64 {
	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil {
			boxes = append(boxes, o.Mesh.BoundingBox())
		}
	}
	if len(boxes) == 0 {
		return 60
	}
	sceneBox := BoxForBoxes(boxes)

	viewMatrix := LookAt(eye, center, up)

	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := viewMatrix.MulPosition(corner)

		// The camera looks down the negative Z-axis in view space.
		// absZ is the depth of the point from the camera plane.
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 { // Avoid division by zero for points at the camera's position.
			continue
		}

		angleX := math.Atan(math.Abs(p.X) / absZ)
		if angleX > maxAngleX {
			maxAngleX = angleX
		}

		angleY := math.Atan(math.Abs(p.Y) / absZ)
		if angleY > maxAngleY {
			maxAngleY = angleY
		}
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/aspect)
	finalFovyRad := math.Max(fovyFromX, fovyFromY)

	// Convert to degrees and add a 5% padding to prevent objects from clipping.
	return Degrees(finalFovyRad) * 1.05
}

// render draws every object in order. Each draw binds the object's
// model transform before its mesh is issued, so objects go one at a
// time; triangles within a draw are rasterized in parallel.
func (s *Scene) render(fit bool) {
	fovy := s.fovy
	if fit {
		fovy = s.FitSceneFovy(s.eye, s.center, s.up, s.aspect)
	}
	view := LookAt(s.eye, s.center, s.up)
	projection := Perspective(fovy, s.aspect, 1, 999)

	switch sh := s.Shader.(type) {
	case *BlockShader:
		sh.Uniforms.View = view
		sh.Uniforms.Projection = projection
		sh.Uniforms.CameraPos = s.eye
	case *SolidShader:
		sh.ViewProjection = projection.Mul(view)
	}

	for _, o := range s.Objects {
		if o.Mesh == nil {
			log.Printf("voxen: object attempted to render with nil mesh")
			continue
		}
		s.Context.DrawObject(o)
	}
}

// Image returns the rendered frame, downsampled to the scene size.
func (s *Scene) Image() image.Image {
	im := s.Context.Image()
	if s.scale <= 1 {
		return im
	}
	return downsample(s.Context.ColorBuffer, s.size)
}

// Draw renders the scene and writes it to a PNG file.
func (s *Scene) Draw(fit bool, path string, objects []*Object) {
	file, err := os.Create(path)
	if err != nil {
		log.Printf("voxen: could not create file in Draw: %v", err)
		return
	}
	defer file.Close()

	if err := s.DrawToWriter(fit, file, objects); err != nil {
		log.Printf("voxen: could not encode png in Draw: %v", err)
	}
}

// DrawToWriter renders the scene and PNG-encodes it to the writer.
func (s *Scene) DrawToWriter(fit bool, writer io.Writer, objects []*Object) error {
	s.AddObjects(objects)
	s.render(fit)
	return png.Encode(writer, s.Image())
}

// DrawToWebP renders the scene and WebP-encodes it to the writer.
func (s *Scene) DrawToWebP(fit bool, writer io.Writer, objects []*Object) error {
	s.AddObjects(objects)
	s.render(fit)
	return nativewebp.Encode(writer, s.Image(), nil)
}

// GenerateScene renders objects with the fogless textured BlockShader
// into a PNG file.
func GenerateScene(fit bool, path string, objects []*Object, eye Vector, center Vector, up Vector, fovy float64, size int, scale int, light Vector) {
	file, err := os.Create(path)
	if err != nil {
		log.Printf("voxen: could not create file for GenerateScene: %v", err)
		return
	}
	defer file.Close()

	err = GenerateSceneToWriter(file, objects, eye, center, up, fovy, size, scale, light, true)
	if err != nil {
		log.Printf("voxen: could not generate scene to file: %v", err)
	}
}

// GenerateSceneWithShader renders objects with the caller's shader.
func GenerateSceneWithShader(fit bool, shader Shader, path string, objects []*Object, eye Vector, center Vector, up Vector, fovy float64, size int, scale int) {
	scene := NewScene(eye, center, up, fovy, size, scale, shader)
	scene.Draw(fit, path, objects)
}

func GenerateSceneToWriter(writer io.Writer, objects []*Object, eye Vector, center Vector, up Vector, fovy float64, size int, scale int, light Vector, fit bool) error {
	uniforms := &Uniforms{Model: Identity(), Light: light, CameraPos: eye}
	shader := NewBlockShader(uniforms)
	scene := NewScene(eye, center, up, fovy, size, scale, shader)
	return scene.DrawToWriter(fit, writer, objects)
}

// downsample scales the supersampled buffer back to targetSize with
// premultiplied-alpha CatmullRom filtering, avoiding dark halos at
// transparent edges.
func downsample(img *image.NRGBA, targetSize int) image.Image {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	// Premultiply alpha
	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	// Unpremultiply alpha
	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < targetSize; y++ {
		for x := 0; x < targetSize; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := dst.Pix[si+3]
			if a == 0 {
				continue
			}
			fa := float64(a) / 255.0
			result.Pix[di] = uint8(math.Min(255, float64(dst.Pix[si])/fa+0.5))
			result.Pix[di+1] = uint8(math.Min(255, float64(dst.Pix[si+1])/fa+0.5))
			result.Pix[di+2] = uint8(math.Min(255, float64(dst.Pix[si+2])/fa+0.5))
			result.Pix[di+3] = a
		}
	}
	return result
}
