package voxen

import (
	"testing"

	"github.com/beorn7/floats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCube(t *testing.T) {
	mesh := NewCube()
	require.Len(t, mesh.Triangles, 12)

	for _, tri := range mesh.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			assert.True(t, floats.AlmostEqual(1, v.Normal.Length(), 1e-12),
				"cube normals must be unit length")
		}
		// geometric winding agrees with the authored normal
		assert.True(t, tri.Normal().Dot(tri.V1.Normal) > 0.99,
			"face normal %+v disagrees with authored %+v", tri.Normal(), tri.V1.Normal)
	}

	box := mesh.BoundingBox()
	assert.Equal(t, V(0, 0, 0), box.Min)
	assert.Equal(t, V(1, 1, 1), box.Max)
}

func TestNewCubeAtOffset(t *testing.T) {
	mesh := NewCubeAt(2, -1, 3)
	box := mesh.BoundingBox()
	assert.Equal(t, V(2, -1, 3), box.Min)
	assert.Equal(t, V(3, 0, 4), box.Max)
}

func TestVoxelMeshHiddenFaces(t *testing.T) {
	solid := func(blocks ...BlockPos) func(BlockPos) bool {
		set := make(map[BlockPos]bool, len(blocks))
		for _, b := range blocks {
			set[b] = true
		}
		return func(p BlockPos) bool { return set[p] }
	}

	single := []BlockPos{{0, 0, 0}}
	mesh := NewVoxelMesh(single, solid(single...))
	assert.Len(t, mesh.Triangles, 12, "lone block exposes all 6 faces")

	pair := []BlockPos{{0, 0, 0}, {1, 0, 0}}
	mesh = NewVoxelMesh(pair, solid(pair...))
	// 10 faces: the shared +X/-X pair is culled
	assert.Len(t, mesh.Triangles, 20)

	// A 2x2x2 solid cube exposes 6 faces of 4 quads each.
	var block []BlockPos
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				block = append(block, BlockPos{x, y, z})
			}
		}
	}
	mesh = NewVoxelMesh(block, solid(block...))
	assert.Len(t, mesh.Triangles, 48)
}

// The solid predicate also answers for cells outside the block list, so
// chunk borders can stitch against neighbor chunks.
func TestVoxelMeshBorderStitch(t *testing.T) {
	chunk := []BlockPos{{0, 0, 0}}
	// neighbor chunk owns x=1 and it is solid there
	solid := func(p BlockPos) bool { return p.Y == 0 && p.Z == 0 && (p.X == 0 || p.X == 1) }

	mesh := NewVoxelMesh(chunk, solid)
	// +X face culled against the neighbor chunk's block
	assert.Len(t, mesh.Triangles, 10)
}

func TestQuadUVs(t *testing.T) {
	tris := NewQuad([4]Vector{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, V(0, 0, 1))
	require.Len(t, tris, 2)
	assert.Equal(t, V(0, 0, 0), tris[0].V1.Texture)
	assert.Equal(t, V(1, 0, 0), tris[0].V2.Texture)
	assert.Equal(t, V(1, 1, 0), tris[0].V3.Texture)
}
