// Package soft is a CPU rasterizer mirroring the GPU line and sphere
// passes: same billboard construction, same dash function, same depth
// rules. It renders into an image.RGBA, which makes frame output
// checkable headlessly.
package soft

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/limn3d/limn"
)

// background matches the GPU pass clear color.
var background = color.RGBA{R: 245, G: 253, B: 245, A: 255}

var sphereLight = mgl32.Vec3{0.577, 0.577, 0.577}.Normalize()

// Renderer rasterizes into a fixed-size RGBA canvas with a float32
// depth buffer. Depth compares less-or-equal and is written even for
// fully transparent dash gaps, matching the GPU pipeline which blends
// instead of discarding.
type Renderer struct {
	width  int
	height int
	img    *image.RGBA
	depth  []float32

	sphereMesh []mgl32.Vec3

	log limn.Logger
}

func NewRenderer(width, height int, logger limn.Logger) *Renderer {
	r := &Renderer{
		width:      width,
		height:     height,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:      make([]float32, width*height),
		sphereMesh: limn.SphereVertices(),
		log:        limn.OrNop(logger),
	}
	r.Clear()
	return r
}

// Clear resets the canvas to the background color and the depth buffer
// to the far plane.
func (r *Renderer) Clear() {
	for i := 0; i < len(r.img.Pix); i += 4 {
		r.img.Pix[i+0] = background.R
		r.img.Pix[i+1] = background.G
		r.img.Pix[i+2] = background.B
		r.img.Pix[i+3] = background.A
	}
	for i := range r.depth {
		r.depth[i] = 1
	}
}

// Image returns the canvas. The renderer keeps drawing into the same
// backing array.
func (r *Renderer) Image() *image.RGBA { return r.img }

// DrawLines rasterizes each segment as a camera-facing ribbon, two
// triangles per segment in strip order. Degenerate segments are
// dropped with a warning.
func (r *Renderer) DrawLines(cam *limn.Camera, segments []limn.LineSegment) {
	u := cam.Uniforms()
	for _, seg := range segments {
		if seg.Degenerate() {
			r.log.Warnf("soft: dropping zero length segment at %v", seg.Start)
			continue
		}
		corners, ts := limn.RibbonCorners(seg, u.Eye)
		r.ribbonTriangle(u.Combined,
			[3]mgl32.Vec3{corners[0], corners[1], corners[2]},
			[3]float32{ts[0], ts[1], ts[2]}, seg)
		r.ribbonTriangle(u.Combined,
			[3]mgl32.Vec3{corners[2], corners[1], corners[3]},
			[3]float32{ts[2], ts[1], ts[3]}, seg)
	}
}

// DrawSpheres rasterizes lifted sphere instances with a flat lambert
// term per triangle.
func (r *Renderer) DrawSpheres(cam *limn.Camera, spheres []limn.SphereInstance) {
	u := cam.Uniforms()
	for _, s := range spheres {
		center := s.Center.Add(s.Normal.Mul(s.Radius))
		for i := 0; i+2 < len(r.sphereMesh); i += 3 {
			p0, p1, p2 := r.sphereMesh[i], r.sphereMesh[i+1], r.sphereMesh[i+2]

			n := p0.Add(p1).Add(p2)
			if n.LenSqr() > 0 {
				n = n.Normalize()
			}
			diffuse := math32.Max(n.Dot(sphereLight), 0)
			shaded := s.Color.Mul(0.35 + 0.65*diffuse)

			world := [3]mgl32.Vec3{
				center.Add(p0.Mul(s.Radius)),
				center.Add(p1.Mul(s.Radius)),
				center.Add(p2.Mul(s.Radius)),
			}
			r.solidTriangle(u.Combined, world, shaded)
		}
	}
}

// screenVertex is a vertex after projection: pixel coordinates, depth
// in [0,1] and 1/w for perspective-correct interpolation.
type screenVertex struct {
	x, y float32
	z    float32
	invW float32
}

// project transforms three world points to screen space. Triangles
// touching the w<=0 half-space are dropped rather than clipped.
func (r *Renderer) project(combined mgl32.Mat4, world [3]mgl32.Vec3) ([3]screenVertex, bool) {
	var sv [3]screenVertex
	for i, p := range world {
		clip := combined.Mul4x1(p.Vec4(1))
		w := clip.W()
		if w <= 0 {
			return sv, false
		}
		sv[i].x = (clip.X()/w + 1) * 0.5 * float32(r.width)
		sv[i].y = (1 - clip.Y()/w) * 0.5 * float32(r.height)
		sv[i].z = clip.Z() / w
		sv[i].invW = 1 / w
	}
	return sv, true
}

func (r *Renderer) bounds(sv [3]screenVertex) (minX, minY, maxX, maxY int) {
	minX = int(math32.Floor(min3(sv[0].x, sv[1].x, sv[2].x)))
	maxX = int(math32.Ceil(max3(sv[0].x, sv[1].x, sv[2].x)))
	minY = int(math32.Floor(min3(sv[0].y, sv[1].y, sv[2].y)))
	maxY = int(math32.Ceil(max3(sv[0].y, sv[1].y, sv[2].y)))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > r.width-1 {
		maxX = r.width - 1
	}
	if maxY > r.height-1 {
		maxY = r.height - 1
	}
	return
}

// ribbonTriangle rasterizes one half of a segment ribbon. The distance
// attribute t is interpolated perspective-correct and fed through the
// dash function per pixel.
func (r *Renderer) ribbonTriangle(combined mgl32.Mat4, world [3]mgl32.Vec3, ts [3]float32, seg limn.LineSegment) {
	sv, ok := r.project(combined, world)
	if !ok {
		return
	}

	minX, minY, maxX, maxY := r.bounds(sv)
	if minX > maxX || minY > maxY {
		return
	}

	e0x, e0y := sv[1].x-sv[0].x, sv[1].y-sv[0].y
	e1x, e1y := sv[2].x-sv[0].x, sv[2].y-sv[0].y
	d00 := e0x*e0x + e0y*e0y
	d01 := e0x*e1x + e0y*e1y
	d11 := e1x*e1x + e1y*e1y
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			d20 := (px-sv[0].x)*e0x + (py-sv[0].y)*e0y
			d21 := (px-sv[0].x)*e1x + (py-sv[0].y)*e1y
			b := (d11*d20 - d01*d21) / denom
			c := (d00*d21 - d01*d20) / denom
			a := 1 - b - c
			if a < 0 || b < 0 || c < 0 {
				continue
			}

			z := a*sv[0].z + b*sv[1].z + c*sv[2].z
			idx := y*r.width + x
			if z > r.depth[idx] {
				continue
			}

			w0, w1, w2 := a*sv[0].invW, b*sv[1].invW, c*sv[2].invW
			oneOverW := w0 + w1 + w2
			if oneOverW == 0 {
				continue
			}
			t := (w0*ts[0] + w1*ts[1] + w2*ts[2]) / oneOverW

			alpha := limn.DashAlpha(t, seg.SegmentSize, seg.DashOffset)

			// Gaps still write depth, only the color is left alone.
			r.depth[idx] = z
			r.blend(x, y, seg.Color, alpha)
		}
	}
}

// solidTriangle rasterizes an opaque flat-colored triangle.
func (r *Renderer) solidTriangle(combined mgl32.Mat4, world [3]mgl32.Vec3, col mgl32.Vec3) {
	sv, ok := r.project(combined, world)
	if !ok {
		return
	}

	minX, minY, maxX, maxY := r.bounds(sv)
	if minX > maxX || minY > maxY {
		return
	}

	e0x, e0y := sv[1].x-sv[0].x, sv[1].y-sv[0].y
	e1x, e1y := sv[2].x-sv[0].x, sv[2].y-sv[0].y
	d00 := e0x*e0x + e0y*e0y
	d01 := e0x*e1x + e0y*e1y
	d11 := e1x*e1x + e1y*e1y
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			d20 := (px-sv[0].x)*e0x + (py-sv[0].y)*e0y
			d21 := (px-sv[0].x)*e1x + (py-sv[0].y)*e1y
			b := (d11*d20 - d01*d21) / denom
			c := (d00*d21 - d01*d20) / denom
			a := 1 - b - c
			if a < 0 || b < 0 || c < 0 {
				continue
			}

			z := a*sv[0].z + b*sv[1].z + c*sv[2].z
			idx := y*r.width + x
			if z > r.depth[idx] {
				continue
			}

			r.depth[idx] = z
			r.blend(x, y, col, 1)
		}
	}
}

// blend composites a color over the canvas pixel, source-over.
func (r *Renderer) blend(x, y int, col mgl32.Vec3, alpha float32) {
	i := r.img.PixOffset(x, y)
	pix := r.img.Pix[i : i+4 : i+4]
	for ch := 0; ch < 3; ch++ {
		src := clamp01(col[ch]) * 255
		dst := float32(pix[ch])
		pix[ch] = uint8(src*alpha + dst*(1-alpha) + 0.5)
	}
	pix[3] = 255
}

func clamp01(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}

func min3(a, b, c float32) float32 {
	return math32.Min(a, math32.Min(b, c))
}

func max3(a, b, c float32) float32 {
	return math32.Max(a, math32.Max(b, c))
}
