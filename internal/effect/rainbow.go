package effect

import (
	"time"

	"github.com/lumacast/lumacast/internal/color"
	"github.com/lumacast/lumacast/internal/frame"
)

// Rainbow spreads the hue circle across the strip and scrolls it by one
// hue step per tick.
type Rainbow struct {
	offset int // hue offset, [0,256)
}

func NewRainbow() *Rainbow { return &Rainbow{} }

func (r *Rainbow) Name() string { return "rainbow" }

func (r *Rainbow) Interval() time.Duration { return 30 * time.Millisecond }

func (r *Rainbow) Tick(buf *frame.Buffer) {
	for i := 0; i < buf.Len(); i++ {
		hue := uint8((i*5 + r.offset) % 256)
		cr, cg, cb := color.HSVToRGB(hue, 255, 255)
		buf.Set(i, frame.Pixel{R: cr, G: cg, B: cb})
	}
	r.offset = (r.offset + 1) % 256
}
