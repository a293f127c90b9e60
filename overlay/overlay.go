// Package overlay renders a debug visualization of the selected lane
// lines and the computed steering value on top of a copy of the source
// frame. It is purely additive: nothing in the core pipeline ever reads
// the overlay back.
package overlay

import (
	"image/color"

	"github.com/laneref/lanedetect/raster"
	"github.com/laneref/lanedetect/trig"
)

// Canvas is a packed-color raster that implements tinyfont's Displayer
// interface (SetPixel/Size), so a host build can stamp steering text onto
// it with the exact same rendering code a framebuffer-backed device uses.
type Canvas struct {
	width, height int16
	Image         *raster.ColorImage
}

// NewCanvas wraps a fresh copy of src as a drawable canvas, leaving src
// itself untouched.
func NewCanvas(src *raster.ColorImage) *Canvas {
	dup := raster.NewColorImage(src.Width, src.Height)
	copy(dup.Pix, src.Pix)
	return &Canvas{width: int16(src.Width), height: int16(src.Height), Image: dup}
}

// Size reports the canvas dimensions, satisfying tinyfont.Displayer.
func (c *Canvas) Size() (x, y int16) {
	return c.width, c.height
}

// SetPixel writes one pixel, satisfying tinyfont.Displayer. Out-of-bounds
// coordinates are silently dropped.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	idx := int(y)*int(c.width) + int(x)
	c.Image.Pix[idx] = raster.RawPixel{R: col.R, G: col.G, B: col.B}
}

// Line colors for the left and right selected lanes.
var (
	ColorLeft  = color.RGBA{R: 255, A: 255}
	ColorRight = color.RGBA{B: 255, A: 255}
)

// DrawLine draws the Hough line identified by (rhoIdx, theta) across the
// full canvas using the same projection and Bresenham stepping as the
// reference debug rasterizer: project the line's two far endpoints along
// its normal, then step pixel-by-pixel from one to the other. rhos is the
// accumulator's total rho-bin count, needed to re-center rhoIdx.
func DrawLine(c *Canvas, rhoIdx, theta, rhos, rhoResolution int, col color.RGBA) {
	halfW := int(c.width) / 2
	halfH := int(c.height) / 2

	rhoCentered := float64(rhoIdx-rhos/2) * float64(rhoResolution)
	cosT := trig.CosF[theta]
	sinT := trig.SinF[theta]

	x0 := cosT * rhoCentered
	y0 := sinT * rhoCentered

	dx := -sinT
	dy := cosT

	x1 := int(x0+1000*dx) + halfW
	y1 := int(y0+1000*dy) + halfH
	x2 := int(x0-1000*dx) + halfW
	y2 := int(y0-1000*dy) + halfH

	bresenham(c, x1, y1, x2, y2, col)
}

func bresenham(c *Canvas, x1, y1, x2, y2 int, col color.RGBA) {
	dxDraw := absInt(x2 - x1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	dyDraw := -absInt(y2 - y1)
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dxDraw + dyDraw

	for {
		c.SetPixel(int16(x1), int16(y1), col)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dyDraw {
			err += dyDraw
			x1 += sx
		}
		if e2 <= dxDraw {
			err += dxDraw
			y1 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
