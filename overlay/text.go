package overlay

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// TextColor is the steering-value annotation color.
var TextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// StampSteering draws the steering value's low 10 bits (two's complement
// for negative steering) as hex text in the corner of
// the canvas, using a pre-quantized bitmap font so the annotation renders
// identically to a framebuffer-backed hardware build of the same code.
func StampSteering(c *Canvas, steering int32) {
	label := fmt.Sprintf("steer=%04x", uint32(steering)&0x3FF)
	tinyfont.WriteLine(c, &freemono.Regular9pt7b, 4, 12, label, TextColor)
}
