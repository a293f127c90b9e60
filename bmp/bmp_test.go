package bmp

import (
	"testing"

	"github.com/frankban/quicktest"
	"github.com/laneref/lanedetect/raster"
)

func makeHeader(width, height int32) Header {
	var h Header
	binaryPutHeader(&h, width, height)
	return h
}

// binaryPutHeader fills in just the fields Decode/Encode care about; the
// rest of the 54-byte header stays zeroed, matching a minimal synthetic
// fixture rather than a real BMP file on disk.
func binaryPutHeader(h *Header, width, height int32) {
	buf := make([]byte, HeaderSize)
	le := func(off int, v uint32) {
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
	le(offsetWidth, uint32(width))
	le(offsetHeight, uint32(height))
	buf[offsetBPP] = 24
	buf[offsetBPP+1] = 0
	h.UnmarshalHeader(buf)
}

func TestDecodeRejectsUnsupportedDepth(t *testing.T) {
	c := quicktest.New(t)
	buf := make([]byte, HeaderSize+3)
	buf[offsetBPP] = 32
	_, _, err := Decode(buf)
	c.Assert(err, quicktest.Equals, ErrUnsupportedDepth)
}

func TestDecodeRejectsShortBuffer(t *testing.T) {
	c := quicktest.New(t)
	_, _, err := Decode(make([]byte, 10))
	c.Assert(err, quicktest.Equals, ErrBufferTooSmall)
}

func TestGrayscaleRoundTrip(t *testing.T) {
	c := quicktest.New(t)
	hdr := makeHeader(4, 2)

	img := raster.NewImage(4, 2)
	for i := range img.Pix {
		img.Pix[i] = byte(i * 10)
	}

	encoded := Encode(img, hdr)
	decodedColor, decodedHdr, err := Decode(encoded)
	c.Assert(err, quicktest.IsNil)
	c.Assert(decodedHdr.Width, quicktest.Equals, int32(4))
	c.Assert(decodedHdr.Height, quicktest.Equals, int32(2))

	for i, p := range decodedColor.Pix {
		c.Assert(p.B, quicktest.Equals, img.Pix[i])
		c.Assert(p.G, quicktest.Equals, img.Pix[i])
		c.Assert(p.R, quicktest.Equals, img.Pix[i])
	}
}
