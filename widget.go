package limn

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// WidgetId identifies an authored widget across frames.
type WidgetId string

func newWidgetId() WidgetId {
	return WidgetId(uuid.NewString())
}

// Widget is a named group of strokes drawn with a shared palette. The host
// keeps widgets between frames and lowers them into the frame's draw list.
type Widget struct {
	Id   WidgetId
	Name string

	palette []Style
	strokes []placedStroke
}

type placedStroke struct {
	stroke Stroke
	style  int
}

func NewWidget(name string) *Widget {
	return &Widget{Id: newWidgetId(), Name: name}
}

// SetPalette replaces the widget's style palette. Stroke calls index into it.
func (w *Widget) SetPalette(styles ...Style) {
	w.palette = styles
}

// Stroke adds a stroke drawn with palette entry style.
func (w *Widget) Stroke(style int, s Stroke) {
	w.strokes = append(w.strokes, placedStroke{stroke: s, style: style})
}

func (w *Widget) StrokeCount() int { return len(w.strokes) }

// AppendSegments lowers every stroke of the widget onto dst.
func (w *Widget) AppendSegments(dst []LineSegment) []LineSegment {
	for _, ps := range w.strokes {
		dst = ps.stroke.AppendSegments(dst, w.palette[ps.style])
	}
	return dst
}

// Grid builds a ground grid widget on the XZ plane, spanning size in both
// directions with one line every step.
func Grid(size, step float32) *Widget {
	w := NewWidget("grid")
	w.SetPalette(Style{Color: mgl32.Vec3{0, 0, 0}, Thickness: 0.1})

	start := -(size / 2)
	for pos := start; pos <= -start; pos += step {
		w.Stroke(0, NewStrokeLine(mgl32.Vec3{pos, 0, -start}, mgl32.Vec3{pos, 0, start}))
		w.Stroke(0, NewStrokeLine(mgl32.Vec3{-start, 0, pos}, mgl32.Vec3{start, 0, pos}))
	}
	return w
}

// CardinalArrows builds the origin marker: red, green and blue arrows along
// +X, +Y and +Z.
func CardinalArrows(magnitude float32) *Widget {
	w := NewWidget("cardinal-arrows")
	w.SetPalette(
		Style{Color: mgl32.Vec3{1, 0, 0}, Thickness: 0.2},
		Style{Color: mgl32.Vec3{0, 1, 0}, Thickness: 0.2},
		Style{Color: mgl32.Vec3{0, 0, 1}, Thickness: 0.2},
	)

	w.Stroke(0, NewStrokeArrow(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, magnitude))
	w.Stroke(1, NewStrokeArrow(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, magnitude))
	w.Stroke(2, NewStrokeArrow(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, magnitude))
	return w
}
