package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/netisu/voxen"
)

// Renders a small voxel hill twice, once with alpha-fade fog and once
// with the hard-cutoff policy, writing a PNG and a WebP next to the
// binary.
func main() {
	blocks := hill(12, 12)
	solids := make(map[voxen.BlockPos]bool, len(blocks))
	for _, b := range blocks {
		solids[b] = true
	}
	mesh := voxen.NewVoxelMesh(blocks, func(p voxen.BlockPos) bool { return solids[p] })
	fmt.Printf("meshed %d blocks into %d triangles\n", len(blocks), len(mesh.Triangles))

	object := voxen.NewObjectFromMesh(mesh)
	object.Texture = voxen.NewImageTexture(checkerboard(64))

	eye := voxen.V(20, 14, 24)
	center := voxen.V(6, 2, 6)
	up := voxen.V(0, 1, 0)

	uniforms := &voxen.Uniforms{
		Model:     voxen.Identity(),
		Light:     voxen.V(-0.6, 1, 0.4),
		CameraPos: eye,
		FogStart:  10,
		FogEnd:    40,
	}
	if err := uniforms.Validate(voxen.FogAlphaFade); err != nil {
		log.Fatal(err)
	}

	scene := voxen.NewScene(eye, center, up, 50, 512, 2, voxen.NewFogShader(uniforms))
	scene.Context.ClearColorBufferWith(voxen.HexColor("87ceeb"))
	scene.Draw(false, "hill_fog.png", []*voxen.Object{object})

	cutoff := voxen.NewScene(eye, center, up, 50, 512, 2, voxen.NewCutoffFogShader(uniforms))
	cutoff.Context.ClearColorBufferWith(voxen.HexColor("87ceeb"))
	out, err := os.Create("hill_cutoff.webp")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := cutoff.DrawToWebP(false, out, []*voxen.Object{object}); err != nil {
		log.Fatal(err)
	}
}

// hill builds a blocky height field.
func hill(w, d int) []voxen.BlockPos {
	var blocks []voxen.BlockPos
	for x := 0; x < w; x++ {
		for z := 0; z < d; z++ {
			dx := float64(x - w/2)
			dz := float64(z - d/2)
			h := 4 - int((dx*dx+dz*dz)/12)
			if h < 1 {
				h = 1
			}
			for y := 0; y < h; y++ {
				blocks = append(blocks, voxen.BlockPos{X: x, Y: y, Z: z})
			}
		}
	}
	return blocks
}

func checkerboard(size int) image.Image {
	im := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{96, 160, 64, 255}
			if (x/8+y/8)%2 == 0 {
				c = color.NRGBA{72, 120, 48, 255}
			}
			im.Set(x, y, c)
		}
	}
	return im
}
