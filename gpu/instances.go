package gpu

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/limn3d/limn"
)

// cameraData matches the WGSL CameraUniforms struct. The trailing pad
// brings the vec3 eye up to the 80 byte struct size WGSL computes.
type cameraData struct {
	Camera mgl32.Mat4
	Eye    mgl32.Vec3
	Pad    float32
}

// lineInstance matches the WGSL line InstanceInput, one per segment.
type lineInstance struct {
	Start       mgl32.Vec3
	End         mgl32.Vec3
	Color       mgl32.Vec3
	Thickness   float32
	SegmentSize float32
	Style       uint32
	DashOffset  float32
}

// sphereInstance matches the WGSL sphere InstanceInput.
type sphereInstance struct {
	Center mgl32.Vec3
	Radius float32
	Normal mgl32.Vec3
	Color  mgl32.Vec3
}

const (
	cameraUniformSize  = uint64(unsafe.Sizeof(cameraData{}))
	lineInstanceSize   = uint64(unsafe.Sizeof(lineInstance{}))
	sphereInstanceSize = uint64(unsafe.Sizeof(sphereInstance{}))
)

func cameraDataFrom(u limn.CameraUniforms) cameraData {
	return cameraData{
		Camera: u.Combined,
		Eye:    u.Eye,
	}
}

func lineInstanceFrom(seg limn.LineSegment) lineInstance {
	return lineInstance{
		Start:       seg.Start,
		End:         seg.End,
		Color:       seg.Color,
		Thickness:   seg.Thickness,
		SegmentSize: seg.SegmentSize,
		Style:       uint32(seg.Style),
		DashOffset:  seg.DashOffset,
	}
}

func sphereInstanceFrom(s limn.SphereInstance) sphereInstance {
	return sphereInstance{
		Center: s.Center,
		Radius: s.Radius,
		Normal: s.Normal,
		Color:  s.Color,
	}
}

// appendLineInstances flattens API segments into GPU records. Segments
// with coincident endpoints have no axis and are dropped with a warning;
// an out of range style is a programming error upstream and panics.
func appendLineInstances(dst []lineInstance, segments []limn.LineSegment, log limn.Logger) []lineInstance {
	for _, seg := range segments {
		if !seg.Style.Valid() {
			panic(fmt.Sprintf("limn: unknown line style %d", uint32(seg.Style)))
		}
		if seg.Degenerate() {
			log.Warnf("line pass: dropping zero length segment at %v", seg.Start)
			continue
		}
		dst = append(dst, lineInstanceFrom(seg))
	}
	return dst
}

func appendSphereInstances(dst []sphereInstance, spheres []limn.SphereInstance) []sphereInstance {
	for _, s := range spheres {
		dst = append(dst, sphereInstanceFrom(s))
	}
	return dst
}
