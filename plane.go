package limn

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is an origin plus two orthonormal in-plane axes, used to place
// points around an arbitrary normal.
type Plane struct {
	Origin mgl32.Vec3
	U, V   mgl32.Vec3
}

// Perpendicular returns an arbitrary unit vector orthogonal to n. The seed
// axis is the cardinal direction of n's smallest-magnitude component, so the
// cross product never degenerates for a non-zero n.
func Perpendicular(n mgl32.Vec3) mgl32.Vec3 {
	var cardinal mgl32.Vec3
	cardinal[minAbsComponent(n)] = 1
	return n.Cross(cardinal).Normalize()
}

func minAbsComponent(v mgl32.Vec3) int {
	idx := 0
	min := math32.Abs(v[0])
	for i := 1; i < 3; i++ {
		if a := math32.Abs(v[i]); a < min {
			min = a
			idx = i
		}
	}
	return idx
}

func PlaneFromNormal(origin, n mgl32.Vec3) Plane {
	u := Perpendicular(n)
	v := u.Cross(n).Normalize()
	return Plane{Origin: origin, U: u, V: v}
}

// At maps in-plane coordinates to world space.
func (p Plane) At(x, y float32) mgl32.Vec3 {
	return p.Origin.Add(p.U.Mul(x)).Add(p.V.Mul(y))
}

// CirclePoints returns count points at radius r around the plane origin.
func (p Plane) CirclePoints(count int, r float32) []mgl32.Vec3 {
	theta := 2 * math32.Pi / float32(count)
	points := make([]mgl32.Vec3, count)
	for i := range points {
		a := theta * float32(i)
		points[i] = p.At(math32.Cos(a)*r, math32.Sin(a)*r)
	}
	return points
}
