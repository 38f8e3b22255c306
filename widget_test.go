package limn

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetIdsUnique(t *testing.T) {
	a := NewWidget("a")
	b := NewWidget("b")

	if a.Id == b.Id {
		t.Fatal("widget ids must be unique")
	}
	assert.Equal(t, "a", a.Name)
}

func TestWidgetLowersStrokesThroughPalette(t *testing.T) {
	w := NewWidget("test")
	w.SetPalette(
		Style{Color: mgl32.Vec3{1, 0, 0}, Thickness: 0.1},
		Style{Color: mgl32.Vec3{0, 1, 0}, Thickness: 0.5, Dash: 2},
	)
	w.Stroke(0, NewStrokeLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}))
	w.Stroke(1, NewStrokeLine(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))

	segs := w.AppendSegments(nil)
	require.Len(t, segs, 2)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, segs[0].Color)
	assert.Equal(t, float32(0.5), segs[1].Thickness)
	assert.Equal(t, float32(2), segs[1].SegmentSize)
	assert.Equal(t, 2, w.StrokeCount())
}

func TestGrid(t *testing.T) {
	w := Grid(10, 1)

	// 11 grid positions, one stroke per axis each.
	assert.Equal(t, 22, w.StrokeCount())

	segs := w.AppendSegments(nil)
	require.Len(t, segs, 22)
	for i, seg := range segs {
		assert.Equalf(t, float32(0), seg.Start.Y(), "grid segment %d stays on the ground plane", i)
		assert.Equalf(t, float32(0), seg.End.Y(), "grid segment %d stays on the ground plane", i)
		assert.Equal(t, StyleRectangle, seg.Style)
		assert.Equal(t, float32(0), seg.SegmentSize)
	}
}

func TestCardinalArrows(t *testing.T) {
	w := CardinalArrows(5)
	segs := w.AppendSegments(nil)

	// Three arrows, each a stem plus a head.
	require.Len(t, segs, 6)

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, segs[0].Color)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, segs[2].Color)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, segs[4].Color)

	// The X arrow runs along +X and its head ends at the arrow tip.
	assert.InDelta(t, 0, segs[1].End.Sub(mgl32.Vec3{5, 0, 0}).Len(), 1e-5)
	assert.Equal(t, StyleTriangle, segs[1].Style)
	assert.Equal(t, StyleRectangle, segs[0].Style)
}
