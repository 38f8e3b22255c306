// Package app hosts a limn renderer behind a glfw window: surface and
// device setup, resize plumbing and the per-frame submit path.
package app

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/limn3d/limn"
	"github.com/limn3d/limn/gpu"
)

// Options configure the application shell.
type Options struct {
	FontSize float64
	VSync    bool
	Logger   limn.Logger
}

// App owns the window-bound GPU state. Build a DrawList per frame and
// hand it to RenderFrame.
type App struct {
	Window   *glfw.Window
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface
	Config   *wgpu.SurfaceConfiguration

	Renderer *gpu.Renderer
	Camera   *limn.Camera
	HUD      *HUD

	FrameCount     int
	FPS            float64
	fpsTime        float64
	lastRenderTime float64

	opts Options
	log  limn.Logger
}

func NewApp(window *glfw.Window, opts Options) *App {
	if opts.FontSize <= 0 {
		opts.FontSize = 16
	}
	return &App{
		Window: window,
		opts:   opts,
		log:    limn.OrNop(opts.Logger),
	}
}

func (a *App) Init() error {
	a.Instance = wgpu.CreateInstance(nil)
	a.Surface = a.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(a.Window))

	adapter, err := a.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: a.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("request adapter: %w", err)
	}
	a.Adapter = adapter

	a.Device, err = adapter.RequestDevice(nil)
	if err != nil {
		return fmt.Errorf("request device: %w", err)
	}
	a.Queue = a.Device.GetQueue()

	width, height := a.Window.GetFramebufferSize()
	caps := a.Surface.GetCapabilities(adapter)
	format := caps.Formats[0]

	presentMode := wgpu.PresentModeFifo
	if !a.opts.VSync {
		presentMode = wgpu.PresentModeImmediate
	}

	a.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}
	a.Surface.Configure(adapter, a.Device, a.Config)

	a.Renderer, err = gpu.NewRenderer(a.Device, format, uint32(width), uint32(height), a.log)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	a.Camera = limn.NewCamera(mgl32.Vec3{6, 4, 6}, mgl32.Vec3{0, 0, 0}, mgl32.DegToRad(45), aspect)

	hud, err := NewHUD(a.opts.FontSize)
	if err != nil {
		a.log.Warnf("hud disabled: %v", err)
	} else if err := a.Renderer.InitText(hud.Atlas()); err != nil {
		a.log.Warnf("hud disabled: %v", err)
	} else {
		a.HUD = hud
	}

	a.lastRenderTime = glfw.GetTime()
	return nil
}

// Resize reconfigures the surface and depth buffer and keeps the camera
// projection in step. Zero sizes (minimized window) are ignored.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.Config.Width = uint32(width)
	a.Config.Height = uint32(height)
	a.Surface.Configure(a.Adapter, a.Device, a.Config)
	a.Renderer.Resize(uint32(width), uint32(height))
	a.Camera.SetAspect(float32(width) / float32(height))
}

// RenderFrame draws one frame of the list plus any queued HUD text. A
// failed surface acquire logs and skips the frame; the next frame tries
// again.
func (a *App) RenderFrame(list *limn.DrawList) {
	var lines []limn.LineSegment
	var spheres []limn.SphereInstance
	if list != nil {
		lines, spheres = list.Lines, list.Spheres
	}

	var text []gpu.TextVertex
	if a.HUD != nil {
		text = a.HUD.BuildVertices(int(a.Config.Width), int(a.Config.Height))
	}

	surfaceTexture, err := a.Surface.GetCurrentTexture()
	if err != nil {
		a.log.Errorf("get current texture: %v", err)
		return
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		a.log.Errorf("create surface view: %v", err)
		return
	}
	defer view.Release()

	if err := a.Renderer.Draw(view, a.Camera, lines, spheres, text); err != nil {
		a.log.Errorf("draw: %v", err)
		return
	}
	a.Surface.Present()

	now := glfw.GetTime()
	a.FrameCount++
	a.fpsTime += now - a.lastRenderTime
	if a.fpsTime >= 1.0 {
		a.FPS = float64(a.FrameCount) / a.fpsTime
		a.FrameCount = 0
		a.fpsTime = 0
	}
	a.lastRenderTime = now
}
