package gpu

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limn3d/limn"
)

// The GPU records are copied into buffers byte for byte, so their Go
// layout has to line up with the vertex attributes and the WGSL struct
// sizes the pipelines declare.
func TestRecordLayouts(t *testing.T) {
	assert.Equal(t, uintptr(80), unsafe.Sizeof(cameraData{}))
	assert.Equal(t, uintptr(64), unsafe.Offsetof(cameraData{}.Eye))

	assert.Equal(t, uintptr(52), unsafe.Sizeof(lineInstance{}))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(lineInstance{}.Start))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(lineInstance{}.End))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(lineInstance{}.Color))
	assert.Equal(t, uintptr(36), unsafe.Offsetof(lineInstance{}.Thickness))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(lineInstance{}.SegmentSize))
	assert.Equal(t, uintptr(44), unsafe.Offsetof(lineInstance{}.Style))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(lineInstance{}.DashOffset))

	assert.Equal(t, uintptr(40), unsafe.Sizeof(sphereInstance{}))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(sphereInstance{}.Center))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(sphereInstance{}.Radius))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(sphereInstance{}.Normal))
	assert.Equal(t, uintptr(28), unsafe.Offsetof(sphereInstance{}.Color))
}

func TestLineInstanceFrom(t *testing.T) {
	seg := limn.LineSegment{
		Start:       mgl32.Vec3{1, 2, 3},
		End:         mgl32.Vec3{4, 5, 6},
		Color:       mgl32.Vec3{0.5, 0.25, 0.125},
		Thickness:   0.4,
		SegmentSize: 2,
		DashOffset:  0.75,
		Style:       limn.StyleTriangle,
	}

	inst := lineInstanceFrom(seg)
	assert.Equal(t, seg.Start, inst.Start)
	assert.Equal(t, seg.End, inst.End)
	assert.Equal(t, seg.Color, inst.Color)
	assert.Equal(t, seg.Thickness, inst.Thickness)
	assert.Equal(t, seg.SegmentSize, inst.SegmentSize)
	assert.Equal(t, uint32(limn.StyleTriangle), inst.Style)
	assert.Equal(t, seg.DashOffset, inst.DashOffset)
}

func TestAppendLineInstancesSkipsDegenerate(t *testing.T) {
	segs := []limn.LineSegment{
		{Start: mgl32.Vec3{0, 0, 0}, End: mgl32.Vec3{1, 0, 0}, Thickness: 0.1},
		{Start: mgl32.Vec3{2, 2, 2}, End: mgl32.Vec3{2, 2, 2}, Thickness: 0.1},
		{Start: mgl32.Vec3{0, 1, 0}, End: mgl32.Vec3{0, 2, 0}, Thickness: 0.1},
	}

	out := appendLineInstances(nil, segs, limn.NewNopLogger())
	require.Len(t, out, 2)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, out[0].End)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, out[1].Start)
}

func TestAppendLineInstancesPanicsOnUnknownStyle(t *testing.T) {
	segs := []limn.LineSegment{
		{Start: mgl32.Vec3{0, 0, 0}, End: mgl32.Vec3{1, 0, 0}, Style: limn.LineStyle(9)},
	}
	assert.Panics(t, func() {
		appendLineInstances(nil, segs, limn.NewNopLogger())
	})
}

func TestSphereInstanceFrom(t *testing.T) {
	s := limn.SphereInstance{
		Center: mgl32.Vec3{1, 2, 3},
		Radius: 0.5,
		Normal: mgl32.Vec3{0, 1, 0},
		Color:  mgl32.Vec3{1, 0, 0},
	}

	inst := sphereInstanceFrom(s)
	assert.Equal(t, s.Center, inst.Center)
	assert.Equal(t, s.Radius, inst.Radius)
	assert.Equal(t, s.Normal, inst.Normal)
	assert.Equal(t, s.Color, inst.Color)
}

func TestCameraDataFrom(t *testing.T) {
	cam := limn.NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, mgl32.DegToRad(45), 1.5)
	u := cam.Uniforms()

	data := cameraDataFrom(u)
	assert.Equal(t, u.Combined, data.Camera)
	assert.Equal(t, u.Eye, data.Eye)
	assert.Zero(t, data.Pad)
}
