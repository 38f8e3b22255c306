package limn

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// LineStyle selects which four offsets of the shared geometry table a
// segment is rendered with.
type LineStyle uint32

const (
	// StyleRectangle renders the segment as a plain ribbon quad.
	StyleRectangle LineStyle = iota
	// StyleTriangle renders an arrowhead with its base on the start side
	// and its apex at the end point.
	StyleTriangle

	styleCount
)

// VertsPerSegment is the fixed vertex count of one billboard instance.
const VertsPerSegment = 4

// LineSegment is one camera-facing ribbon instance. Thickness is the
// full ribbon width in world units. SegmentSize 0 draws a solid line; a
// positive value is the dash stride in world units along the segment,
// phase shifted by DashOffset.
type LineSegment struct {
	Start       mgl32.Vec3
	End         mgl32.Vec3
	Color       mgl32.Vec3
	Thickness   float32
	SegmentSize float32
	DashOffset  float32
	Style       LineStyle
}

func (s LineSegment) Length() float32 {
	return s.End.Sub(s.Start).Len()
}

// Degenerate reports whether the segment has no defined orientation.
// Degenerate segments are skipped by the render stages, never fatal.
func (s LineSegment) Degenerate() bool {
	return s.Start == s.End
}

// Valid reports whether the style has an entry in the geometry table.
func (s LineStyle) Valid() bool {
	return s < styleCount
}

// geometryTable holds four 2D corner offsets per style, in triangle-strip
// order. x spans the segment axis (+x towards start), y the thickness axis.
var geometryTable = [styleCount * VertsPerSegment]mgl32.Vec2{
	// StyleRectangle
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	// StyleTriangle: base edge at +x, apex at -x
	{1, -1}, {1, 0}, {-1, 0}, {1, 1},
}

// GeometryTable returns a copy of the shared offset table, four vertices per
// style, indexed style*VertsPerSegment + vertex. Constant for the process
// lifetime.
func GeometryTable() []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(geometryTable))
	copy(out, geometryTable[:])
	return out
}

// OffsetsForStyle returns the four corner offsets of one style. An unknown
// style is a programming error upstream and panics.
func OffsetsForStyle(style LineStyle) [VertsPerSegment]mgl32.Vec2 {
	if style >= styleCount {
		panic(fmt.Sprintf("limn: unknown line style %d", uint32(style)))
	}
	var out [VertsPerSegment]mgl32.Vec2
	copy(out[:], geometryTable[int(style)*VertsPerSegment:])
	return out
}
