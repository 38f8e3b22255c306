package limn

import (
	"github.com/go-gl/mathgl/mgl32"
)

// minCrossLenSqr guards the width-axis cross product: below this squared
// length the camera sits on the segment's own axis and the cross is unusable.
const minCrossLenSqr = 1e-12

// BillboardVertex places one geometry-table corner of a segment's ribbon in
// world space, oriented so the ribbon edge-faces the camera at eye. The
// returned t is the distance-along-segment parameter the dash pattern
// samples: the segment length at the start-side corners (offset x > 0), 0 at
// the end-side corners; rasterization interpolates between the two extremes.
//
// Callers must not pass a degenerate segment (Start == End); its tangent
// would normalize a zero vector.
func BillboardVertex(seg LineSegment, offset mgl32.Vec2, eye mgl32.Vec3) (world mgl32.Vec3, t float32) {
	origin := seg.Start.Add(seg.End).Mul(0.5)
	size := seg.End.Sub(seg.Start).Len()

	u := seg.Start.Sub(origin).Normalize()
	toCamera := eye.Sub(origin)

	var v mgl32.Vec3
	if cross := u.Cross(toCamera); cross.LenSqr() < minCrossLenSqr {
		// Camera on the segment axis. Any width axis perpendicular to u
		// keeps the ribbon finite.
		v = Perpendicular(u)
	} else {
		v = cross.Normalize()
	}

	sx := offset.X() * (size / 2)
	sy := offset.Y() * (seg.Thickness / 2)

	world = origin.Add(u.Mul(sx)).Add(v.Mul(sy))
	if offset.X() > 0 {
		t = size
	}
	return world, t
}

// RibbonCorners runs BillboardVertex over all four offsets of the segment's
// style, in triangle-strip order.
func RibbonCorners(seg LineSegment, eye mgl32.Vec3) (corners [VertsPerSegment]mgl32.Vec3, ts [VertsPerSegment]float32) {
	offsets := OffsetsForStyle(seg.Style)
	for i, off := range offsets {
		corners[i], ts[i] = BillboardVertex(seg, off, eye)
	}
	return corners, ts
}
