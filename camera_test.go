package limn

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraUniforms(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 10}
	c := NewCamera(eye, mgl32.Vec3{0, 0, 0}, mgl32.DegToRad(45), 16.0/9.0)

	u := c.Uniforms()

	assert.Equal(t, eye, u.Eye)
	assert.Equal(t, c.Projection().Mul4(c.View()), u.Combined)
}

func TestCameraSetAspectRebuildsProjectionOnly(t *testing.T) {
	c := NewCamera(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(60), 1.0)

	view := c.View()
	proj := c.Projection()

	c.SetAspect(2.0)

	if c.View() != view {
		t.Error("view matrix should not change on aspect update")
	}
	if c.Projection() == proj {
		t.Error("projection matrix should be rebuilt on aspect update")
	}
}

func TestCameraLookAtRebuildsViewOnly(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, mgl32.DegToRad(45), 1.0)

	proj := c.Projection()
	view := c.View()

	c.LookAt(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{1, 0, 0})

	if c.Projection() != proj {
		t.Error("projection matrix should not change when the camera moves")
	}
	if c.View() == view {
		t.Error("view matrix should be rebuilt when the camera moves")
	}
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, c.Eye())
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, c.Target())
}

func TestCameraClipDepthRange(t *testing.T) {
	// Eye at z=10 looking down -Z, near 1, far 100.
	c := NewCameraWithPlanes(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, mgl32.DegToRad(60), 1.0, 1, 100)
	combined := c.Uniforms().Combined

	ndcZ := func(world mgl32.Vec3) float32 {
		clip := combined.Mul4x1(world.Vec4(1))
		return clip.Z() / clip.W()
	}

	// On the near plane depth is 0, on the far plane 1, in between inside (0,1).
	assert.InDelta(t, 0.0, ndcZ(mgl32.Vec3{0, 0, 9}), 1e-5)
	assert.InDelta(t, 1.0, ndcZ(mgl32.Vec3{0, 0, -90}), 1e-5)

	mid := ndcZ(mgl32.Vec3{0, 0, 0})
	if mid <= 0 || mid >= 1 {
		t.Errorf("mid-range depth %f should be inside (0,1)", mid)
	}
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}, mgl32.DegToRad(45), 1.0)

	// Default planes keep very distant geometry visible.
	assert.Equal(t, float32(0.01), DefaultNear)
	assert.Equal(t, float32(10000.0), DefaultFar)
	assert.Equal(t, float32(1.0), c.Aspect())
}
