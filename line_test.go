package limn

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestGeometryTable(t *testing.T) {
	table := GeometryTable()
	assert.Len(t, table, 8)

	rect := OffsetsForStyle(StyleRectangle)
	assert.Equal(t, [4]mgl32.Vec2{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}, rect)

	tri := OffsetsForStyle(StyleTriangle)
	assert.Equal(t, [4]mgl32.Vec2{{1, -1}, {1, 0}, {-1, 0}, {1, 1}}, tri)

	// The flat table is the two style blocks back to back.
	for i, off := range rect {
		assert.Equal(t, off, table[i])
	}
	for i, off := range tri {
		assert.Equal(t, off, table[VertsPerSegment+i])
	}
}

func TestGeometryTableIsACopy(t *testing.T) {
	table := GeometryTable()
	table[0] = mgl32.Vec2{99, 99}

	if GeometryTable()[0] != (mgl32.Vec2{-1, -1}) {
		t.Error("mutating a returned table must not leak into the shared one")
	}
}

func TestOffsetsForStylePanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() {
		OffsetsForStyle(LineStyle(7))
	})
}

func TestLineSegmentDegenerate(t *testing.T) {
	p := mgl32.Vec3{1, 2, 3}
	if !(LineSegment{Start: p, End: p}).Degenerate() {
		t.Error("zero-length segment must be degenerate")
	}
	if (LineSegment{Start: p, End: mgl32.Vec3{1, 2, 4}}).Degenerate() {
		t.Error("distinct endpoints must not be degenerate")
	}
}

func TestLineSegmentLength(t *testing.T) {
	seg := LineSegment{Start: mgl32.Vec3{0, 0, -5}, End: mgl32.Vec3{0, 0, 5}}
	assert.InDelta(t, 10, seg.Length(), 1e-6)
}
