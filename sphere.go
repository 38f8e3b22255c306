package limn

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SphereInstance is one shaded ball. The rendered sphere is pushed along
// Normal by Radius so it visually rests against its attachment point.
type SphereInstance struct {
	Center mgl32.Vec3
	Radius float32
	Normal mgl32.Vec3
	Color  mgl32.Vec3
}

const (
	sphereRings  = 8
	sphereSlices = 8
)

// SphereVertexCount is the triangle-list vertex count of the shared unit
// sphere mesh.
const SphereVertexCount = (sphereRings + 2) * sphereSlices * 6

// SphereVertices generates the shared unit sphere triangle mesh, ring by
// ring. On a unit sphere each position doubles as its own normal.
func SphereVertices() []mgl32.Vec3 {
	const deg2rad = math32.Pi / 180

	vertex := func(i, j float32) mgl32.Vec3 {
		lat := deg2rad * (270 + (180/float32(sphereRings+1))*i)
		lon := deg2rad * (360 * j / sphereSlices)
		return mgl32.Vec3{
			math32.Cos(lat) * math32.Sin(lon),
			math32.Sin(lat),
			math32.Cos(lat) * math32.Cos(lon),
		}
	}

	data := make([]mgl32.Vec3, SphereVertexCount)
	for i := 0; i < sphereRings+2; i++ {
		for j := 0; j < sphereSlices; j++ {
			fi, fj := float32(i), float32(j)
			idx := sphereSlices*6*i + j*6

			data[idx] = vertex(fi, fj)
			data[idx+1] = vertex(fi+1, fj+1)
			data[idx+2] = vertex(fi+1, fj)
			data[idx+3] = vertex(fi, fj)
			data[idx+4] = vertex(fi, fj+1)
			data[idx+5] = vertex(fi+1, fj+1)
		}
	}
	return data
}
