package limn

import "github.com/go-gl/mathgl/mgl32"

// Style is the shared look of a stroke: color, ribbon thickness and dash
// period (0 for solid).
type Style struct {
	Color     mgl32.Vec3
	Thickness float32
	Dash      float32
}

type StrokeKind int

const (
	StrokeLine StrokeKind = iota
	StrokeArrow
	StrokeCircle
)

// Fixed tessellation of circle strokes.
const circleSegments = 24

// Arrow heads widen to 4x the stem and run 1.5x their own width in length.
const (
	arrowHeadThickness = 4.0
	arrowHeadLength    = 1.5
)

// Stroke is one authored mark that lowers to line segments.
type Stroke struct {
	Kind StrokeKind

	// For Line: Start to End.
	Start, End mgl32.Vec3

	// For Circle: center, plane normal and radius.
	Center mgl32.Vec3
	Normal mgl32.Vec3
	Radius float32

	// For Arrow: origin, direction and length along it.
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	Magnitude float32
}

func NewStrokeLine(start, end mgl32.Vec3) Stroke {
	return Stroke{Kind: StrokeLine, Start: start, End: end}
}

func NewStrokeArrow(origin, direction mgl32.Vec3, magnitude float32) Stroke {
	return Stroke{Kind: StrokeArrow, Origin: origin, Direction: direction, Magnitude: magnitude}
}

func NewStrokeCircle(center, normal mgl32.Vec3, radius float32) Stroke {
	return Stroke{Kind: StrokeCircle, Center: center, Normal: normal, Radius: radius}
}

// AppendSegments lowers the stroke onto dst with the given style and returns
// the extended slice.
func (s Stroke) AppendSegments(dst []LineSegment, style Style) []LineSegment {
	switch s.Kind {
	case StrokeLine:
		return append(dst, LineSegment{
			Start:       s.Start,
			End:         s.End,
			Color:       style.Color,
			Thickness:   style.Thickness,
			SegmentSize: style.Dash,
			Style:       StyleRectangle,
		})

	case StrokeCircle:
		points := PlaneFromNormal(s.Center, s.Normal).CirclePoints(circleSegments, s.Radius)
		for i := range points {
			last := i - 1
			if i == 0 {
				last = len(points) - 1
			}
			dst = append(dst, LineSegment{
				Start:       points[last],
				End:         points[i],
				Color:       style.Color,
				Thickness:   style.Thickness,
				SegmentSize: style.Dash,
				Style:       StyleRectangle,
			})
		}
		return dst

	case StrokeArrow:
		start := s.Origin
		end := start.Add(s.Direction.Mul(s.Magnitude))

		headThickness := style.Thickness * arrowHeadThickness
		headLength := headThickness * arrowHeadLength

		if s.Magnitude <= headLength {
			// Too short for a stem, the whole stroke becomes the head.
			return append(dst, LineSegment{
				Start:     start,
				End:       end,
				Color:     style.Color,
				Thickness: headThickness,
				Style:     StyleTriangle,
			})
		}

		stemEnd := start.Add(s.Direction.Mul(s.Magnitude - headLength))
		dst = append(dst, LineSegment{
			Start:       start,
			End:         stemEnd,
			Color:       style.Color,
			Thickness:   style.Thickness,
			SegmentSize: style.Dash,
			Style:       StyleRectangle,
		})
		return append(dst, LineSegment{
			Start:     stemEnd,
			End:       end,
			Color:     style.Color,
			Thickness: headThickness,
			Style:     StyleTriangle,
		})
	}
	return dst
}
