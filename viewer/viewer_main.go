package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/limn3d/limn"
	"github.com/limn3d/limn/app"
)

func init() {
	runtime.LockOSThread()
}

// orbit tracks a drag-and-scroll camera around a fixed target.
type orbit struct {
	yaw    float32
	pitch  float32
	radius float32
	target mgl32.Vec3

	dragging     bool
	lastX, lastY float64
}

func (o *orbit) eye() mgl32.Vec3 {
	cp := math32.Cos(o.pitch)
	return o.target.Add(mgl32.Vec3{
		o.radius * cp * math32.Sin(o.yaw),
		o.radius * math32.Sin(o.pitch),
		o.radius * cp * math32.Cos(o.yaw),
	})
}

func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	dash := flag.Float64("dash", 0.12, "dash stride of the demo circle, 0 for solid")
	fontSize := flag.Float64("font-size", 16, "HUD font size")
	vsync := flag.Bool("vsync", true, "wait for vertical sync")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := limn.NewDefaultLogger("viewer", *debug)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(*width, *height, "limn viewer", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	application := app.NewApp(window, app.Options{
		FontSize: *fontSize,
		VSync:    *vsync,
		Logger:   logger,
	})
	if err := application.Init(); err != nil {
		panic(err)
	}

	cam := &orbit{yaw: 0.7, pitch: 0.5, radius: 9}
	application.Camera.LookAt(cam.eye(), cam.target)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		application.Resize(width, height)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft {
			cam.dragging = action == glfw.Press
			cam.lastX, cam.lastY = w.GetCursorPos()
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !cam.dragging {
			return
		}
		cam.yaw -= float32(xpos-cam.lastX) * 0.008
		cam.pitch += float32(ypos-cam.lastY) * 0.008
		if cam.pitch > 1.5 {
			cam.pitch = 1.5
		}
		if cam.pitch < -1.5 {
			cam.pitch = -1.5
		}
		cam.lastX, cam.lastY = xpos, ypos
		application.Camera.LookAt(cam.eye(), cam.target)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cam.radius -= float32(yoff) * 0.8
		if cam.radius < 1 {
			cam.radius = 1
		}
		application.Camera.LookAt(cam.eye(), cam.target)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	grid := limn.Grid(10, 1)
	axes := limn.CardinalArrows(3)
	figure := buildFigure(float32(*dash))

	list := limn.NewDrawList()
	for !window.ShouldClose() {
		glfw.PollEvents()

		list.Reset()
		list.Widget(grid)
		list.Widget(axes)
		list.Widget(figure)
		addJoints(list)

		if application.HUD != nil {
			application.HUD.Clear()
			status := fmt.Sprintf("FPS %.1f  lines %d  spheres %d", application.FPS, len(list.Lines), len(list.Spheres))
			application.HUD.Print(status, 10, 10, 1, [4]float32{0.1, 0.1, 0.1, 1})
		}
		application.RenderFrame(list)
	}
}

// buildFigure assembles a small stick figure: a dashed torso ring with
// arrow limbs, the kind of armature the stroke set is meant for.
func buildFigure(dash float32) *limn.Widget {
	w := limn.NewWidget("figure")
	w.SetPalette(
		limn.Style{Color: mgl32.Vec3{0.35, 0.35, 0.35}, Thickness: 0.05, Dash: dash},
		limn.Style{Color: mgl32.Vec3{0.9, 0.45, 0.1}, Thickness: 0.08},
	)

	w.Stroke(0, limn.NewStrokeCircle(mgl32.Vec3{0, 1.6, 0}, mgl32.Vec3{0, 0, 1}, 0.6))
	w.Stroke(1, limn.NewStrokeArrow(mgl32.Vec3{0, 2.2, 0}, mgl32.Vec3{0, 1, 0}, 0.5))
	w.Stroke(1, limn.NewStrokeArrow(mgl32.Vec3{0, 1.9, 0}, mgl32.Vec3{1, 0.2, 0}.Normalize(), 1.1))
	w.Stroke(1, limn.NewStrokeArrow(mgl32.Vec3{0, 1.9, 0}, mgl32.Vec3{-1, 0.2, 0}.Normalize(), 1.1))
	w.Stroke(1, limn.NewStrokeArrow(mgl32.Vec3{0, 1.0, 0}, mgl32.Vec3{0.45, -1, 0}.Normalize(), 1.3))
	w.Stroke(1, limn.NewStrokeArrow(mgl32.Vec3{0, 1.0, 0}, mgl32.Vec3{-0.45, -1, 0}.Normalize(), 1.3))
	return w
}

// addJoints marks the figure's joints with small spheres.
func addJoints(list *limn.DrawList) {
	for _, p := range []mgl32.Vec3{{0, 1.0, 0}, {0, 1.9, 0}, {0, 2.2, 0}} {
		list.Sphere(limn.SphereInstance{
			Center: p,
			Radius: 0.09,
			Normal: mgl32.Vec3{0, 1, 0},
			Color:  mgl32.Vec3{0.16, 0.45, 0.85},
		})
	}
}
