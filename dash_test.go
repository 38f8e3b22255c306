package limn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashAlphaSolid(t *testing.T) {
	for _, tc := range []float32{0, 0.1, 1, 5, 123.45} {
		if got := DashAlpha(tc, 0, 0); got != 1 {
			t.Errorf("segment size 0 must be fully opaque, got %f at t=%f", got, tc)
		}
	}
}

func TestDashAlphaDutyCycle(t *testing.T) {
	// Roughly half the segment is opaque regardless of the period.
	for _, size := range []float32{0.5, 1, 2, 7.3} {
		const samples = 10000
		span := size * 10

		opaque := 0
		for i := 0; i < samples; i++ {
			tPos := span * (float32(i) + 0.5) / samples
			if DashAlpha(tPos, size, 0) == 1 {
				opaque++
			}
		}

		duty := float64(opaque) / samples
		assert.InDeltaf(t, 0.5, duty, 0.02, "duty cycle for period %f", size)
	}
}

func TestDashAlphaPeriod(t *testing.T) {
	const size float32 = 2

	// The on/off pattern repeats every 2*size along t.
	for _, frac := range []float32{0.25, 0.75, 1.25, 1.75} {
		tPos := frac * size
		first := DashAlpha(tPos, size, 0)
		second := DashAlpha(tPos+2*size, size, 0)
		if first != second {
			t.Errorf("alpha at t=%f (%f) differs from one period later (%f)", tPos, first, second)
		}
	}

	// First half period opaque, second half transparent.
	assert.Equal(t, float32(1), DashAlpha(0.5*size, size, 0))
	assert.Equal(t, float32(0), DashAlpha(1.5*size, size, 0))
}

func TestDashAlphaOffsetShiftsPhase(t *testing.T) {
	const size float32 = 3

	for _, frac := range []float32{0.25, 0.75, 1.25, 1.75} {
		tPos := frac * size
		shifted := DashAlpha(tPos, size, size)
		reference := DashAlpha(tPos+size, size, 0)
		if shifted != reference {
			t.Errorf("dash offset must shift phase: t=%f got %f want %f", tPos, shifted, reference)
		}
	}

	// A full-period offset lands back on the same pattern.
	assert.Equal(t, DashAlpha(0.5*size, size, 0), DashAlpha(0.5*size, size, 2*size))
}
