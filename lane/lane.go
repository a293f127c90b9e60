// Package lane implements lane selection over the Hough peak set and the
// Q10 steering estimate derived from the chosen left/right lines.
package lane

import (
	"github.com/laneref/lanedetect/hough"
	"github.com/laneref/lanedetect/qfix"
	"github.com/laneref/lanedetect/trig"
)

// Lane sector target angles used to break vote ties: the θ each sector's
// candidate is expected to cluster around.
const (
	LeftTarget  = 130
	RightTarget = 50
)

// Q10 gain constants from the steering equation: OFFSET_Q = QUANTIZE_F(0.05),
// ANGLE_Q = QUANTIZE_F(0.3).
const (
	OffsetQ = 51
	AngleQ  = 307
)

// SelectMode chooses how a lane's single representative is picked out of
// its sector's candidate peaks.
type SelectMode int

const (
	// SelectBestVote picks the candidate with the highest vote count,
	// breaking ties by closeness of θ to the sector target (the
	// hardware, low-res path).
	SelectBestVote SelectMode = iota
	// SelectFirstMatch picks the first candidate in the order the peaks
	// are given, ignoring vote count (the high-res reference path).
	SelectFirstMatch
)

// Config bundles the knobs the steering computation needs beyond the
// peak set itself.
type Config struct {
	SelectMode   SelectMode
	Rhos         int
	RhoResLog    uint
	ImageCenterY int32
}

// Result is the outcome of lane selection: either both indices are valid
// and Steering carries the computed Q10 value (already masked to its low
// 10 bits), or Valid is false and Steering is 0.
type Result struct {
	LeftRhoIdx, LeftTheta   int
	RightRhoIdx, RightTheta int
	Valid                   bool
	Steering                int32
}

// Select partitions peaks into left- and right-sector candidates, picks
// one from each per cfg.SelectMode, and computes the steering value. If
// either sector has no candidate, the result is invalid and Steering is 0.
func Select(peaks []hough.Peak, cfg Config) Result {
	var left, right *hough.Peak
	for i := range peaks {
		p := &peaks[i]
		switch {
		case p.Theta >= hough.LeftLB && p.Theta <= hough.LeftUB:
			left = pickBetter(left, p, cfg.SelectMode, LeftTarget)
		case p.Theta >= hough.RightLB && p.Theta <= hough.RightUB:
			right = pickBetter(right, p, cfg.SelectMode, RightTarget)
		}
	}

	if left == nil || right == nil {
		return Result{}
	}

	steering, ok := Steering(int32(left.RhoIdx), int32(left.Theta), int32(right.RhoIdx), int32(right.Theta), cfg.Rhos, cfg.RhoResLog, cfg.ImageCenterY)
	if !ok {
		return Result{}
	}

	return Result{
		LeftRhoIdx:  left.RhoIdx,
		LeftTheta:   left.Theta,
		RightRhoIdx: right.RhoIdx,
		RightTheta:  right.Theta,
		Valid:       true,
		Steering:    steering,
	}
}

// pickBetter returns the candidate cur should become current after
// considering next, per mode. A nil current always loses.
func pickBetter(cur, next *hough.Peak, mode SelectMode, target int) *hough.Peak {
	if cur == nil {
		return next
	}
	if mode == SelectFirstMatch {
		return cur
	}
	switch {
	case next.Votes > cur.Votes:
		return next
	case next.Votes < cur.Votes:
		return cur
	default:
		if absInt(next.Theta-target) < absInt(cur.Theta-target) {
			return next
		}
		return cur
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Steering computes the Q10 signed steering value from a chosen left and
// right line, exactly mirroring calculate_center_lane's integer path: the
// ρ indices are converted back to centered Q10 distances, projected along
// each line's normal through the image's vertical center, truncating
// divided by the line's cosine to recover each line's x-intercept, and the
// two intercepts are averaged and weighted against the mean angle error.
// ok is false (and steering 0) if either cosine entry is zero.
func Steering(leftRhoIdx, leftTheta, rightRhoIdx, rightTheta int32, rhos int, rhoResLog uint, imageCenterY int32) (steering int32, ok bool) {
	half := int32(rhos / 2)

	leftRhoQ := qfix.QuantizeInt((leftRhoIdx - half) << rhoResLog)
	rightRhoQ := qfix.QuantizeInt((rightRhoIdx - half) << rhoResLog)

	sinL := trig.Sin[leftTheta]
	sinR := trig.Sin[rightTheta]
	cosL := trig.Cos[leftTheta]
	cosR := trig.Cos[rightTheta]

	numL := leftRhoQ + ((imageCenterY * qfix.Unit * sinL) >> qfix.Bits)
	numR := rightRhoQ + ((imageCenterY * qfix.Unit * sinR) >> qfix.Bits)

	leftX, okL := qfix.TruncDiv(numL, cosL)
	if !okL {
		return 0, false
	}
	rightX, okR := qfix.TruncDiv(numR, cosR)
	if !okR {
		return 0, false
	}

	laneCenter := (leftX + rightX) >> 1
	offset := -laneCenter
	angleErr := ((leftTheta + rightTheta) >> 1) - 90

	steeringQ := (offset*OffsetQ + angleErr*AngleQ) >> qfix.Bits
	return steeringQ & 0x3FF, true
}
