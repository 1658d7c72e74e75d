package voxen

// Block-geometry builders. These produce the vertex buffers the
// pipeline consumes; world generation itself lives upstream and only
// hands a solid-block predicate to the mesher.

var cubeFaces = [6]struct {
	normal  Vector
	corners [4]Vector
}{
	// +X
	{Vector{1, 0, 0}, [4]Vector{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}},
	// -X
	{Vector{-1, 0, 0}, [4]Vector{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	// +Y
	{Vector{0, 1, 0}, [4]Vector{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}},
	// -Y
	{Vector{0, -1, 0}, [4]Vector{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	// +Z
	{Vector{0, 0, 1}, [4]Vector{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	// -Z
	{Vector{0, 0, -1}, [4]Vector{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
}

var faceUVs = [4]Vector{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}

// NewQuad builds a quad from four corners in counter-clockwise order,
// with the given normal on every vertex and [0,1] UVs.
func NewQuad(corners [4]Vector, normal Vector) []*Triangle {
	var vs [4]Vertex
	for i := range corners {
		vs[i] = Vertex{Position: corners[i], Normal: normal, Texture: faceUVs[i]}
	}
	return []*Triangle{
		NewTriangle(vs[0], vs[1], vs[2]),
		NewTriangle(vs[0], vs[2], vs[3]),
	}
}

// NewCube builds a unit cube spanning [0,1]^3 with per-face normals
// and UVs, 12 triangles.
func NewCube() *Mesh {
	return NewCubeAt(0, 0, 0)
}

// NewCubeAt builds the unit cube for the block at integer coordinates
// (x, y, z).
func NewCubeAt(x, y, z int) *Mesh {
	offset := Vector{float64(x), float64(y), float64(z)}
	var triangles []*Triangle
	for _, f := range cubeFaces {
		var corners [4]Vector
		for i, c := range f.corners {
			corners[i] = c.Add(offset)
		}
		triangles = append(triangles, NewQuad(corners, f.normal)...)
	}
	return NewTriangleMesh(triangles)
}

// BlockPos addresses a block in the world grid.
type BlockPos struct {
	X, Y, Z int
}

func (p BlockPos) offset(d Vector) BlockPos {
	return BlockPos{p.X + int(d.X), p.Y + int(d.Y), p.Z + int(d.Z)}
}

// NewVoxelMesh meshes a set of solid blocks, emitting only the faces
// not shared by two solid blocks. solid reports whether a grid cell is
// filled; it is also consulted for cells outside the given list, so a
// chunk border can stitch against its neighbors.
func NewVoxelMesh(blocks []BlockPos, solid func(BlockPos) bool) *Mesh {
	var triangles []*Triangle
	for _, b := range blocks {
		if !solid(b) {
			continue
		}
		offset := Vector{float64(b.X), float64(b.Y), float64(b.Z)}
		for _, f := range cubeFaces {
			if solid(b.offset(f.normal)) {
				continue
			}
			var corners [4]Vector
			for i, c := range f.corners {
				corners[i] = c.Add(offset)
			}
			triangles = append(triangles, NewQuad(corners, f.normal)...)
		}
	}
	return NewTriangleMesh(triangles)
}
