package limn

import "github.com/chewxy/math32"

// DashAlpha is the procedural dash pattern: the alpha of a pixel at distance
// t along a segment. A segmentSize of 0 disables dashing. Otherwise the
// pattern repeats every 2*segmentSize world units with a 50% duty cycle,
// phase shifted by dashOffset.
func DashAlpha(t, segmentSize, dashOffset float32) float32 {
	if segmentSize == 0 {
		return 1
	}
	y := math32.Sin((t+dashOffset)*math32.Pi/segmentSize)/2 + 0.5
	if y > 0.5 {
		return 1
	}
	return 0
}
