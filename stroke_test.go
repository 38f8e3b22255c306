package limn

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrokeLineLowering(t *testing.T) {
	style := Style{Color: mgl32.Vec3{1, 0, 0}, Thickness: 0.3, Dash: 1.5}
	segs := NewStrokeLine(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 5, 0}).AppendSegments(nil, style)

	require.Len(t, segs, 1)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, segs[0].Start)
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, segs[0].End)
	assert.Equal(t, style.Color, segs[0].Color)
	assert.Equal(t, style.Thickness, segs[0].Thickness)
	assert.Equal(t, style.Dash, segs[0].SegmentSize)
	assert.Equal(t, StyleRectangle, segs[0].Style)
}

func TestStrokeArrowLowering(t *testing.T) {
	style := Style{Color: mgl32.Vec3{0, 1, 0}, Thickness: 0.2, Dash: 0.5}
	origin := mgl32.Vec3{1, 0, 0}
	dir := mgl32.Vec3{1, 0, 0}
	const magnitude float32 = 10

	segs := NewStrokeArrow(origin, dir, magnitude).AppendSegments(nil, style)
	require.Len(t, segs, 2)

	shaft, head := segs[0], segs[1]

	// Head is 4x the stem thickness and 1.5x its own width long.
	const headThickness float32 = 0.2 * 4
	const headLength float32 = headThickness * 1.5

	assert.Equal(t, origin, shaft.Start)
	assert.InDelta(t, 0, shaft.End.Sub(mgl32.Vec3{1 + magnitude - headLength, 0, 0}).Len(), 1e-5)
	assert.Equal(t, StyleRectangle, shaft.Style)
	assert.Equal(t, style.Thickness, shaft.Thickness)
	assert.Equal(t, style.Dash, shaft.SegmentSize)

	assert.Equal(t, shaft.End, head.Start)
	assert.InDelta(t, 0, head.End.Sub(mgl32.Vec3{11, 0, 0}).Len(), 1e-5)
	assert.Equal(t, StyleTriangle, head.Style)
	assert.Equal(t, headThickness, head.Thickness)

	// Arrow heads are always solid.
	assert.Equal(t, float32(0), head.SegmentSize)
}

func TestStrokeShortArrowIsAllHead(t *testing.T) {
	style := Style{Color: mgl32.Vec3{0, 0, 1}, Thickness: 0.2}

	// Head length would be 1.2; a shorter arrow collapses to a lone head.
	segs := NewStrokeArrow(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 1.0).AppendSegments(nil, style)

	require.Len(t, segs, 1)
	assert.Equal(t, StyleTriangle, segs[0].Style)
	assert.Equal(t, float32(0.8), segs[0].Thickness)
	assert.InDelta(t, 0, segs[0].End.Sub(mgl32.Vec3{0, 1, 0}).Len(), 1e-6)
}

func TestStrokeCircleLowering(t *testing.T) {
	style := Style{Color: mgl32.Vec3{1, 1, 0}, Thickness: 0.1, Dash: 0.25}
	center := mgl32.Vec3{0, 2, 0}
	normal := mgl32.Vec3{0, 1, 0}
	const radius float32 = 3

	segs := NewStrokeCircle(center, normal, radius).AppendSegments(nil, style)
	require.Len(t, segs, 24)

	for i, seg := range segs {
		// Closed loop: each segment starts where the previous one ended.
		next := segs[(i+1)%len(segs)]
		assert.Equalf(t, seg.End, next.Start, "segment %d must chain into %d", i, (i+1)%len(segs))

		// Endpoints stay on the circle in the plane of the normal.
		for _, p := range []mgl32.Vec3{seg.Start, seg.End} {
			off := p.Sub(center)
			assert.InDeltaf(t, radius, off.Len(), 1e-4, "segment %d endpoint radius", i)
			assert.InDeltaf(t, 0, off.Dot(normal), 1e-4, "segment %d endpoint planarity", i)
		}

		assert.Equal(t, StyleRectangle, seg.Style)
		assert.Equal(t, style.Dash, seg.SegmentSize)
	}
}
