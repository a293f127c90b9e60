package qfix

import (
	"testing"

	"github.com/frankban/quicktest"
)

func TestQuantizeFloatMatchesReferenceConstants(t *testing.T) {
	c := quicktest.New(t)
	c.Assert(QuantizeFloat(0.05), quicktest.Equals, int32(51))
	c.Assert(QuantizeFloat(0.3), quicktest.Equals, int32(307))
}

func TestDequantizeTruncatesTowardZero(t *testing.T) {
	c := quicktest.New(t)
	c.Assert(Dequantize(1536), quicktest.Equals, int32(1))
	c.Assert(Dequantize(-1536), quicktest.Equals, int32(-1))
}

func TestMulReentersQ10(t *testing.T) {
	c := quicktest.New(t)
	// 1.0 * 1.0 in Q10 is Unit * Unit >> 10 == Unit.
	c.Assert(Mul(Unit, Unit), quicktest.Equals, int32(Unit))
}

func TestTruncDivSignReconstruction(t *testing.T) {
	c := quicktest.New(t)
	q, ok := TruncDiv(-7, 2)
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(q, quicktest.Equals, int32(-3))

	q, ok = TruncDiv(7, -2)
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(q, quicktest.Equals, int32(-3))

	q, ok = TruncDiv(-7, -2)
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(q, quicktest.Equals, int32(3))
}

func TestTruncDivZeroDivisor(t *testing.T) {
	c := quicktest.New(t)
	_, ok := TruncDiv(10, 0)
	c.Assert(ok, quicktest.IsFalse)
}
