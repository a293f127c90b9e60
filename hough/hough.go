// Package hough implements the reduced (ρ, θ) accumulator and the
// sequential top-N peak extractor that turns an ROI-masked edge image into
// a short list of line candidates for lane selection.
package hough

import (
	"fmt"
	"os"

	"github.com/laneref/lanedetect/qfix"
	"github.com/laneref/lanedetect/raster"
	"github.com/laneref/lanedetect/trig"
)

// Lane sector bounds, in θ index (degrees). Only θ inside one of these two
// half-open-by-convention-but-inclusive ranges ever receives a vote.
const (
	LeftLB, LeftUB   = 100, 160
	RightLB, RightUB = 20, 80
)

func inSector(theta int) bool {
	return (theta >= LeftLB && theta <= LeftUB) || (theta >= RightLB && theta <= RightUB)
}

// Accumulator is a RHOS x THETAS saturating vote count, indexed
// accum[rhoIdx][theta].
type Accumulator struct {
	Rhos, Thetas int
	Counts       [][]uint16
}

// NewAccumulator allocates a zeroed accumulator sized for rhos rho bins
// across trig.Thetas angle bins.
func NewAccumulator(rhos int) *Accumulator {
	counts := make([][]uint16, rhos)
	for i := range counts {
		counts[i] = make([]uint16, trig.Thetas)
	}
	return &Accumulator{Rhos: rhos, Thetas: trig.Thetas, Counts: counts}
}

// Accumulate votes every non-zero pixel of in into acc, using the
// pre-quantized Q10 trig tables and an arithmetic right-shift by
// rhoResLog to reduce ρ resolution. Votes whose resulting ρ index falls
// outside [0, acc.Rhos) are dropped with a diagnostic on stderr; votes
// outside the two lane sectors are skipped entirely, never touching the
// accumulator.
func Accumulate(acc *Accumulator, in *raster.Image, rhoResLog uint) {
	halfW := int32(in.Width / 2)
	halfH := int32(in.Height / 2)
	half := int32(acc.Rhos / 2)

	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			if in.At(x, y) == 0 {
				continue
			}
			cx := int32(x) - halfW
			cy := int32(y) - halfH
			xs := cx >> rhoResLog
			ys := cy >> rhoResLog

			for theta := 0; theta < acc.Thetas; theta++ {
				if !inSector(theta) {
					continue
				}
				sum32 := xs*trig.Cos[theta] + ys*trig.Sin[theta]
				rhoReal := sum32 / qfix.Unit
				rhoIdx := int(rhoReal + half)
				if rhoIdx < 0 || rhoIdx >= acc.Rhos {
					fmt.Fprintf(os.Stderr, "lanedetect: dropped vote, rho index %d out of [0, %d)\n", rhoIdx, acc.Rhos)
					continue
				}
				if acc.Counts[rhoIdx][theta] < 0xFFFF {
					acc.Counts[rhoIdx][theta]++
				}
			}
		}
	}
}

// Peak is one retained (ρ, θ) candidate with its vote count.
type Peak struct {
	RhoIdx, Theta int
	Votes         uint16
}

// TopN scans acc in row-major order and returns the topN triples with the
// largest vote counts, using the sequential online min-replacement scan:
// on each cell, the current minimum of the retained set is found (first
// such on ties) and replaced only if the new cell's votes strictly exceed
// it. Every slot starts at (0, 0, 0); order of the result is unspecified.
func TopN(acc *Accumulator, topN int) []Peak {
	peaks := make([]Peak, topN)
	for r := 0; r < acc.Rhos; r++ {
		for t := 0; t < acc.Thetas; t++ {
			votes := acc.Counts[r][t]
			minIdx := 0
			for i := 1; i < len(peaks); i++ {
				if peaks[i].Votes < peaks[minIdx].Votes {
					minIdx = i
				}
			}
			if votes > peaks[minIdx].Votes {
				peaks[minIdx] = Peak{RhoIdx: r, Theta: t, Votes: votes}
			}
		}
	}
	return peaks
}
