package limn

// DrawList is the frame-scoped instance buffer. The host fills it every
// frame and hands it to the pipeline bridge by reference for one encode and
// draw; the bridge never retains it. Reset keeps the backing storage so a
// steady scene allocates nothing after the first frame.
type DrawList struct {
	Lines   []LineSegment
	Spheres []SphereInstance
}

func NewDrawList() *DrawList {
	return &DrawList{}
}

func (d *DrawList) Reset() {
	d.Lines = d.Lines[:0]
	d.Spheres = d.Spheres[:0]
}

func (d *DrawList) Line(seg LineSegment) {
	d.Lines = append(d.Lines, seg)
}

func (d *DrawList) Sphere(s SphereInstance) {
	d.Spheres = append(d.Spheres, s)
}

func (d *DrawList) Stroke(s Stroke, style Style) {
	d.Lines = s.AppendSegments(d.Lines, style)
}

func (d *DrawList) Widget(w *Widget) {
	d.Lines = w.AppendSegments(d.Lines)
}
