package overlay

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyterm"
)

// Console is a scrolling text log rendered onto a canvas, used to keep a
// short history of recent steering values visible alongside the line
// overlay. It is backed by tinyterm, the same terminal widget a
// framebuffer-backed hardware build would use for its own debug console.
type Console struct {
	term *tinyterm.Terminal
}

// NewConsole creates a console writing onto c.
func NewConsole(c *Canvas) *Console {
	term := tinyterm.NewTerminal(c)
	term.Configure(&tinyterm.Config{
		Font:            &freemono.Regular9pt7b,
		FontColor:       TextColor,
		BackgroundColor: color.RGBA{},
	})
	return &Console{term: term}
}

// LogSteering appends one line recording the frame's selection result.
func (c *Console) LogSteering(valid bool, steering int32) {
	fmt.Fprintf(c.term, "valid=%v steering=0x%03x\n", valid, steering&0x3FF)
}
