package gpu

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/limn3d/limn"
)

// DepthFormat is the depth attachment format shared by every pipeline.
const DepthFormat = wgpu.TextureFormatDepth32Float

var clearColor = wgpu.Color{R: 0.960, G: 0.991, B: 0.960, A: 1.0}

// Renderer owns the render passes, the shared camera uniform buffer and
// the depth texture, and records one frame per Draw call. Draw copies
// everything it needs up front; input slices are never retained, and
// empty inputs still clear the frame.
type Renderer struct {
	device *wgpu.Device
	queue  *wgpu.Queue
	format wgpu.TextureFormat

	cameraBuffer *wgpu.Buffer
	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView

	linePass   *LineRenderPass
	spherePass *SphereRenderPass
	textPass   *TextRenderPass

	log limn.Logger
}

func NewRenderer(device *wgpu.Device, format wgpu.TextureFormat, width, height uint32, logger limn.Logger) (*Renderer, error) {
	r := &Renderer{
		device: device,
		queue:  device.GetQueue(),
		format: format,
		log:    limn.OrNop(logger),
	}

	var err error
	r.cameraBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "CameraUniformBuffer",
		Size:  cameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create camera buffer: %w", err)
	}

	if err := r.createDepthTexture(width, height); err != nil {
		return nil, err
	}

	r.linePass, err = NewLineRenderPass(device, format, r.cameraBuffer, r.log)
	if err != nil {
		return nil, fmt.Errorf("create line pass: %w", err)
	}
	r.spherePass, err = NewSphereRenderPass(device, format, r.cameraBuffer)
	if err != nil {
		return nil, fmt.Errorf("create sphere pass: %w", err)
	}
	return r, nil
}

// InitText creates the overlay text pass from a rendered glyph atlas.
// Rendering works without it; Draw simply skips the overlay.
func (r *Renderer) InitText(atlas *image.Alpha) error {
	pass, err := NewTextRenderPass(r.device, r.format, atlas)
	if err != nil {
		return fmt.Errorf("create text pass: %w", err)
	}
	r.textPass = pass
	return nil
}

func (r *Renderer) createDepthTexture(width, height uint32) error {
	if r.depthView != nil {
		r.depthView.Release()
	}
	if r.depthTexture != nil {
		r.depthTexture.Release()
	}

	var err error
	r.depthTexture, err = r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "DepthTexture",
		Size:          wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create depth texture: %w", err)
	}
	r.depthView, err = r.depthTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create depth view: %w", err)
	}
	return nil
}

// Resize recreates the depth texture to match the new surface size. The
// caller reconfigures the surface itself.
func (r *Renderer) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	if err := r.createDepthTexture(width, height); err != nil {
		r.log.Errorf("resize: %v", err)
	}
}

// Draw records and submits one frame into the given surface view.
func (r *Renderer) Draw(view *wgpu.TextureView, cam *limn.Camera, lines []limn.LineSegment, spheres []limn.SphereInstance, text []TextVertex) error {
	u := cameraDataFrom(cam.Uniforms())
	r.queue.WriteBuffer(r.cameraBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&u)), cameraUniformSize))

	r.spherePass.Upload(r.queue, spheres)
	r.linePass.Upload(r.queue, lines)
	if r.textPass != nil {
		r.textPass.Upload(r.queue, text)
	}

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: clearColor,
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})

	// Opaque spheres first, blended lines after, text overlay last.
	r.spherePass.Draw(pass)
	r.linePass.Draw(pass)
	if r.textPass != nil {
		r.textPass.Draw(pass)
	}

	if err := pass.End(); err != nil {
		return fmt.Errorf("render pass end: %w", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("encoder finish: %w", err)
	}
	r.queue.Submit(cmd)
	return nil
}
