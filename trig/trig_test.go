package trig

import (
	"testing"

	"github.com/frankban/quicktest"
)

func TestKnownAngles(t *testing.T) {
	c := quicktest.New(t)
	c.Assert(Sin[0], quicktest.Equals, int32(0))
	c.Assert(Cos[0], quicktest.Equals, int32(1024))
	c.Assert(Sin[90], quicktest.Equals, int32(1024))
	c.Assert(Cos[90], quicktest.Equals, int32(0))
}

func TestPythagoreanIdentityWithinRounding(t *testing.T) {
	c := quicktest.New(t)
	for theta := 0; theta < Thetas; theta++ {
		sum := Sin[theta]*Sin[theta] + Cos[theta]*Cos[theta]
		diff := sum - 1024*1024
		if diff < 0 {
			diff = -diff
		}
		c.Assert(diff <= 2*1024, quicktest.IsTrue)
	}
}

func TestFloatTablesAgreeWithQ10Sign(t *testing.T) {
	c := quicktest.New(t)
	for theta := 0; theta < Thetas; theta++ {
		if Cos[theta] > 0 {
			c.Assert(CosF[theta] >= 0, quicktest.IsTrue)
		}
		if Cos[theta] < 0 {
			c.Assert(CosF[theta] <= 0, quicktest.IsTrue)
		}
	}
}
