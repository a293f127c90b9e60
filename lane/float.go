package lane

import (
	"github.com/laneref/lanedetect/hough"
	"github.com/laneref/lanedetect/trig"
)

// FloatResult is the floating-point twin of Result, retained only for
// cross-validation against the Q10 path.
type FloatResult struct {
	LeftRhoIdx, LeftTheta   int
	RightRhoIdx, RightTheta int
	Valid                   bool
	Steering                float64
}

// SelectFloat mirrors Select and Steering using real arithmetic and the
// float sinvals/cosvals tables; it is the high-res reference path's
// selector and always uses first-match semantics, matching
// calculate_center_lane's floating variant.
func SelectFloat(peaks []hough.Peak, rhos int, rhoResolution int, imageCenterY float64, offset, angle float64) FloatResult {
	var left, right *hough.Peak
	for i := range peaks {
		p := &peaks[i]
		switch {
		case p.Theta >= hough.LeftLB && p.Theta <= hough.LeftUB && left == nil:
			left = p
		case p.Theta >= hough.RightLB && p.Theta <= hough.RightUB && right == nil:
			right = p
		}
	}
	if left == nil || right == nil {
		return FloatResult{}
	}

	half := float64(rhos / 2)
	leftRho := float64(left.RhoIdx-int(half)) * float64(rhoResolution)
	rightRho := float64(right.RhoIdx-int(half)) * float64(rhoResolution)

	sinL := trig.SinF[left.Theta]
	sinR := trig.SinF[right.Theta]
	cosL := trig.CosF[left.Theta]
	cosR := trig.CosF[right.Theta]

	if cosL == 0 || cosR == 0 {
		return FloatResult{}
	}

	leftX := (leftRho + imageCenterY*sinL) / cosL
	rightX := (rightRho + imageCenterY*sinR) / cosR

	laneCenter := (leftX + rightX) / 2
	off := -laneCenter
	angleErr := float64((left.Theta+right.Theta)/2) - 90

	return FloatResult{
		LeftRhoIdx:  left.RhoIdx,
		LeftTheta:   left.Theta,
		RightRhoIdx: right.RhoIdx,
		RightTheta:  right.Theta,
		Valid:       true,
		Steering:    off*offset + angleErr*angle,
	}
}
