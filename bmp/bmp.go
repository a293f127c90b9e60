// Package bmp implements the minimal 24-bit uncompressed BMP codec the
// pipeline's harness needs: a 54-byte header, width/height as
// little-endian int32 fields, and packed B, G, R pixel rows with no
// alignment padding (the harness only ever targets dimensions chosen to
// avoid BMP's usual 4-byte row rule).
package bmp

import (
	"encoding/binary"
	"errors"

	"github.com/laneref/lanedetect/raster"
)

const (
	HeaderSize = 54

	offsetWidth  = 18
	offsetHeight = 22
	offsetBPP    = 28
)

// ErrBufferTooSmall is returned when a payload is shorter than the header
// or pixel data it claims to hold.
var ErrBufferTooSmall = errors.New("bmp: buffer too small")

// ErrUnsupportedDepth is returned when the header's bits-per-pixel field
// is not 24.
var ErrUnsupportedDepth = errors.New("bmp: unsupported bit depth")

// Header is the subset of the 54-byte BMP header this codec reads and
// writes back verbatim on encode.
type Header struct {
	Raw    [HeaderSize]byte
	Width  int32
	Height int32
	BPP    uint16
}

// UnmarshalHeader parses the 54-byte BMP header from the front of
// payload, validating that the pixel depth is 24 bits.
func (h *Header) UnmarshalHeader(payload []byte) error {
	if len(payload) < HeaderSize {
		return ErrBufferTooSmall
	}
	copy(h.Raw[:], payload[:HeaderSize])
	h.Width = int32(binary.LittleEndian.Uint32(payload[offsetWidth : offsetWidth+4]))
	h.Height = int32(binary.LittleEndian.Uint32(payload[offsetHeight : offsetHeight+4]))
	h.BPP = binary.LittleEndian.Uint16(payload[offsetBPP : offsetBPP+2])
	if h.BPP != 24 {
		return ErrUnsupportedDepth
	}
	return nil
}

// MarshalHeader writes the stored raw header bytes into payload.
func (h *Header) MarshalHeader(payload []byte) error {
	if len(payload) < HeaderSize {
		return ErrBufferTooSmall
	}
	copy(payload[:HeaderSize], h.Raw[:])
	return nil
}

// Decode parses a full in-memory BMP file into a color raster. Rows are
// read top-to-bottom as stored (the harness's source images are already
// oriented this way; no bottom-up flip is performed).
func Decode(data []byte) (*raster.ColorImage, Header, error) {
	var hdr Header
	if err := hdr.UnmarshalHeader(data); err != nil {
		return nil, hdr, err
	}
	width := int(hdr.Width)
	height := int(hdr.Height)
	pixelBytes := width * height * 3
	if len(data) < HeaderSize+pixelBytes {
		return nil, hdr, ErrBufferTooSmall
	}

	img := raster.NewColorImage(width, height)
	body := data[HeaderSize:]
	for i := range img.Pix {
		off := i * 3
		img.Pix[i] = raster.RawPixel{
			B: body[off],
			G: body[off+1],
			R: body[off+2],
		}
	}
	return img, hdr, nil
}

// Encode writes a single-channel byte buffer back out as a 24-bit BMP,
// broadcasting each luma byte to R, G and B, and reusing hdr's original
// 54 header bytes unchanged.
func Encode(img *raster.Image, hdr Header) []byte {
	out := make([]byte, HeaderSize+len(img.Pix)*3)
	hdr.MarshalHeader(out)
	body := out[HeaderSize:]
	for i, v := range img.Pix {
		off := i * 3
		body[off] = v
		body[off+1] = v
		body[off+2] = v
	}
	return out
}

// EncodeColor writes a packed color raster back out as a 24-bit BMP,
// reusing hdr's original header bytes. Used for the debug overlay output,
// which is the only stage in the pipeline that carries color.
func EncodeColor(img *raster.ColorImage, hdr Header) []byte {
	out := make([]byte, HeaderSize+len(img.Pix)*3)
	hdr.MarshalHeader(out)
	body := out[HeaderSize:]
	for i, p := range img.Pix {
		off := i * 3
		body[off] = p.B
		body[off+1] = p.G
		body[off+2] = p.R
	}
	return out
}
