package lane

import (
	"testing"

	"github.com/frankban/quicktest"
)

const (
	lowResRhos      = 50
	lowResRhoResLog = 2
	lowResCenterY   = 60
)

func TestSteeringSymmetricAnglesYieldZero(t *testing.T) {
	c := quicktest.New(t)
	steering, ok := Steering(lowResRhos/2, 130, lowResRhos/2, 50, lowResRhos, lowResRhoResLog, lowResCenterY)
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(steering, quicktest.Equals, int32(0))
}

// TestSteeringNonMirrorAnglesAtEqualRho checks a pair that shares a
// ρ_idx but isn't a true mirror pair (130+60 != 180, unlike the 130/50
// pair above where Sin[130]==Sin[50] and Cos[130]==-Cos[50]). The
// resulting offset (-16) and angle error (5) are both nonzero, but their
// weighted sum -16*51 + 5*307 = 719 is below 1024, so the final >>10
// truncates it to 0.
func TestSteeringNonMirrorAnglesAtEqualRho(t *testing.T) {
	c := quicktest.New(t)
	steering, ok := Steering(lowResRhos/2, 130, lowResRhos/2, 60, lowResRhos, lowResRhoResLog, lowResCenterY)
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(steering, quicktest.Equals, int32(0))
}

func TestSteeringZeroCosineIsRejected(t *testing.T) {
	c := quicktest.New(t)
	_, ok := Steering(lowResRhos/2, 90, lowResRhos/2, 50, lowResRhos, lowResRhoResLog, lowResCenterY)
	c.Assert(ok, quicktest.IsFalse)
}

// TestSteeringDeterministic guards the property the iteration-26 oracle in
// vectorgen depends on: identical (rho, theta) inputs always produce an
// identical steering value, since the pipeline has no hidden state.
func TestSteeringDeterministic(t *testing.T) {
	c := quicktest.New(t)
	a, okA := Steering(39, 144, 6, 27, lowResRhos, lowResRhoResLog, lowResCenterY)
	b, okB := Steering(39, 144, 6, 27, lowResRhos, lowResRhoResLog, lowResCenterY)
	c.Assert(okA, quicktest.IsTrue)
	c.Assert(okB, quicktest.IsTrue)
	c.Assert(a, quicktest.Equals, b)
}

// TestSteeringVectorgenOracle pins the iteration-26 fixture from the
// vectorgen harness (seed 12345, rejecting theta=90): left_rho_idx 31,
// left_theta 91, right_rho_idx 47, right_theta 145 must yield steering
// 0x08a.
func TestSteeringVectorgenOracle(t *testing.T) {
	c := quicktest.New(t)
	steering, ok := Steering(31, 91, 47, 145, lowResRhos, lowResRhoResLog, lowResCenterY)
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(steering, quicktest.Equals, int32(0x8a))
}
