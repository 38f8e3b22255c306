package limn

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultNear float32 = 0.01
	DefaultFar  float32 = 10000.0
)

// clipCorrection remaps OpenGL clip-space z in [-1,1] to the [0,1] range
// WebGPU expects. Applied on top of mgl32.Perspective.
var clipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// CameraUniforms is the only camera state the render stages consume: the
// combined projection*view matrix and the eye position billboards orient
// towards.
type CameraUniforms struct {
	Combined mgl32.Mat4
	Eye      mgl32.Vec3
}

// Camera holds a look-at view and a perspective projection. The two matrices
// are cached: moving the camera rebuilds only the view, changing the aspect
// ratio rebuilds only the projection.
//
// Callers must keep aspect > 0 and fov strictly between 0 and pi.
type Camera struct {
	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3
	fov    float32
	aspect float32
	near   float32
	far    float32

	view mgl32.Mat4
	proj mgl32.Mat4
}

// NewCamera builds a camera with the default near/far planes and +Y up.
// fov is the vertical field of view in radians.
func NewCamera(eye, target mgl32.Vec3, fov, aspect float32) *Camera {
	return NewCameraWithPlanes(eye, target, fov, aspect, DefaultNear, DefaultFar)
}

func NewCameraWithPlanes(eye, target mgl32.Vec3, fov, aspect, near, far float32) *Camera {
	c := &Camera{
		eye:    eye,
		target: target,
		up:     mgl32.Vec3{0, 1, 0},
		fov:    fov,
		aspect: aspect,
		near:   near,
		far:    far,
	}
	c.rebuildView()
	c.rebuildProj()
	return c
}

func (c *Camera) rebuildView() {
	c.view = mgl32.LookAtV(c.eye, c.target, c.up)
}

func (c *Camera) rebuildProj() {
	c.proj = clipCorrection.Mul4(mgl32.Perspective(c.fov, c.aspect, c.near, c.far))
}

func (c *Camera) Eye() mgl32.Vec3    { return c.eye }
func (c *Camera) Target() mgl32.Vec3 { return c.target }
func (c *Camera) Aspect() float32    { return c.aspect }
func (c *Camera) FOV() float32       { return c.fov }

// SetAspect recomputes the projection matrix; the view is untouched.
// Call on every surface resize.
func (c *Camera) SetAspect(aspect float32) {
	if aspect == c.aspect {
		return
	}
	c.aspect = aspect
	c.rebuildProj()
}

// LookAt moves the camera; only the view matrix is recomputed.
func (c *Camera) LookAt(eye, target mgl32.Vec3) {
	c.eye = eye
	c.target = target
	c.rebuildView()
}

func (c *Camera) View() mgl32.Mat4       { return c.view }
func (c *Camera) Projection() mgl32.Mat4 { return c.proj }

func (c *Camera) Uniforms() CameraUniforms {
	return CameraUniforms{
		Combined: c.proj.Mul4(c.view),
		Eye:      c.eye,
	}
}
