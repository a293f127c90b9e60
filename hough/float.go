package hough

import (
	"github.com/laneref/lanedetect/raster"
	"github.com/laneref/lanedetect/trig"
)

// FloatAccumulator is the floating-point twin of Accumulator, retained
// only as a cross-validation reference for the Q10 hot path (never the
// authoritative output).
type FloatAccumulator struct {
	Rhos, Thetas int
	Counts       [][]uint16
}

// NewFloatAccumulator allocates a zeroed float-path accumulator sized for
// rhos rho bins.
func NewFloatAccumulator(rhos int) *FloatAccumulator {
	counts := make([][]uint16, rhos)
	for i := range counts {
		counts[i] = make([]uint16, trig.Thetas)
	}
	return &FloatAccumulator{Rhos: rhos, Thetas: trig.Thetas, Counts: counts}
}

// FloatAccumulate mirrors Accumulate using the float sinvals/cosvals
// tables and real division instead of the Q10 shift-and-multiply path; it
// exists purely to cross-check the integer accumulator on the high-res
// reference path, and is never fed to the lane selector directly.
func FloatAccumulate(acc *FloatAccumulator, in *raster.Image, rhoResolution int) {
	halfW := float64(in.Width / 2)
	halfH := float64(in.Height / 2)
	half := float64(acc.Rhos / 2)

	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			if in.At(x, y) == 0 {
				continue
			}
			cx := (float64(x) - halfW) / float64(rhoResolution)
			cy := (float64(y) - halfH) / float64(rhoResolution)

			for theta := 0; theta < acc.Thetas; theta++ {
				if !inSector(theta) {
					continue
				}
				rhoReal := cx*trig.CosF[theta] + cy*trig.SinF[theta]
				rhoIdx := int(rhoReal + half)
				if rhoIdx < 0 || rhoIdx >= acc.Rhos {
					continue
				}
				acc.Counts[rhoIdx][theta]++
			}
		}
	}
}
