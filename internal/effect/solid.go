package effect

import (
	"time"

	"github.com/lumacast/lumacast/internal/color"
	"github.com/lumacast/lumacast/internal/frame"
)

// Solid fills the whole strip with one color and walks it around the hue
// circle one step per tick.
type Solid struct {
	hue int // [0,256)
}

func NewSolid() *Solid { return &Solid{} }

func (s *Solid) Name() string { return "solid" }

func (s *Solid) Interval() time.Duration { return 50 * time.Millisecond }

func (s *Solid) Tick(buf *frame.Buffer) {
	cr, cg, cb := color.HSVToRGB(uint8(s.hue), 255, 255)
	p := frame.Pixel{R: cr, G: cg, B: cb}
	for i := 0; i < buf.Len(); i++ {
		buf.Set(i, p)
	}
	s.hue = (s.hue + 1) % 256
}
