package hough

import (
	"testing"

	"github.com/frankban/quicktest"
	"github.com/laneref/lanedetect/raster"
)

func TestAccumulateAllZeroFrameStaysZero(t *testing.T) {
	c := quicktest.New(t)
	in := raster.NewImage(160, 120)
	acc := NewAccumulator(50)
	Accumulate(acc, in, 2)
	for r := 0; r < acc.Rhos; r++ {
		for th := 0; th < acc.Thetas; th++ {
			c.Assert(acc.Counts[r][th], quicktest.Equals, uint16(0))
		}
	}
}

func TestAccumulateOutsideSectorsNeverVoted(t *testing.T) {
	c := quicktest.New(t)
	in := raster.NewImage(160, 120)
	in.Set(80, 60, 255)
	acc := NewAccumulator(50)
	Accumulate(acc, in, 2)
	for r := 0; r < acc.Rhos; r++ {
		for th := 0; th < acc.Thetas; th++ {
			if inSector(th) {
				continue
			}
			c.Assert(acc.Counts[r][th], quicktest.Equals, uint16(0))
		}
	}
}

func TestAccumulateSingleCenteredPixelVotesOncePerGatedTheta(t *testing.T) {
	c := quicktest.New(t)
	in := raster.NewImage(160, 120)
	in.Set(80, 60, 255) // centered pixel: cx=cy=0
	acc := NewAccumulator(50)
	Accumulate(acc, in, 2)

	for th := 0; th < acc.Thetas; th++ {
		if !inSector(th) {
			continue
		}
		c.Assert(acc.Counts[acc.Rhos/2][th], quicktest.Equals, uint16(1))
	}
}

// TestFloatAccumulateAgreesWithIntegerPath drives the same single-pixel
// frame through both Accumulate and FloatAccumulate and checks they vote
// into the same ρ bin for every gated θ, the cross-validation the float
// twin is kept around for. The pixel sits on the frame's center, where
// both paths compute an exact zero before truncation, so this avoids the
// differing truncation order (integer path truncates before re-centering,
// float path re-centers before truncating) that would otherwise make an
// off-center pixel disagree by a bin near half the sector range.
func TestFloatAccumulateAgreesWithIntegerPath(t *testing.T) {
	c := quicktest.New(t)
	const rhoResolution = 2
	const rhoResLog = 1

	in := raster.NewImage(160, 120)
	in.Set(80, 60, 255)

	acc := NewAccumulator(50)
	Accumulate(acc, in, rhoResLog)

	facc := NewFloatAccumulator(50)
	FloatAccumulate(facc, in, rhoResolution)

	for th := 0; th < acc.Thetas; th++ {
		if !inSector(th) {
			continue
		}
		var intRho, floatRho int = -1, -1
		for r := 0; r < acc.Rhos; r++ {
			if acc.Counts[r][th] > 0 {
				intRho = r
			}
			if facc.Counts[r][th] > 0 {
				floatRho = r
			}
		}
		c.Assert(intRho, quicktest.Equals, floatRho, quicktest.Commentf("theta=%d", th))
	}
}

func TestTopNAllZeroYieldsZeroTriples(t *testing.T) {
	c := quicktest.New(t)
	acc := NewAccumulator(50)
	peaks := TopN(acc, 16)
	c.Assert(peaks, quicktest.HasLen, 16)
	for _, p := range peaks {
		c.Assert(p, quicktest.Equals, Peak{})
	}
}

func TestTopNKeepsLargestVotes(t *testing.T) {
	c := quicktest.New(t)
	acc := NewAccumulator(4)
	acc.Counts[0][LeftLB] = 5
	acc.Counts[1][LeftLB+1] = 9
	acc.Counts[2][RightLB] = 3
	peaks := TopN(acc, 2)

	var maxVotes uint16
	for _, p := range peaks {
		if p.Votes > maxVotes {
			maxVotes = p.Votes
		}
	}
	c.Assert(maxVotes, quicktest.Equals, uint16(9))

	for r := 0; r < acc.Rhos; r++ {
		for th := 0; th < acc.Thetas; th++ {
			v := acc.Counts[r][th]
			found := false
			for _, p := range peaks {
				if p.Votes >= v {
					found = true
				}
			}
			c.Assert(found, quicktest.IsTrue)
		}
	}
}
