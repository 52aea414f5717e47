package effect

import (
	"time"

	"github.com/lumacast/lumacast/internal/frame"
)

const trailLen = 9

// palette cycles one color per full lap of the strip.
var palette = []frame.Pixel{
	{R: 255, G: 0, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 255, G: 255, B: 0},
	{R: 255, G: 0, B: 255},
	{R: 0, G: 255, B: 255},
}

// Chase runs a single dot around the strip with a linearly fading
// nine-pixel tail, switching palette color each time it wraps.
type Chase struct {
	n        int
	position int // [0,n)
	colorIdx int // [0,len(palette))
}

func NewChase(n int) *Chase { return &Chase{n: n} }

func (c *Chase) Name() string { return "chase" }

func (c *Chase) Interval() time.Duration { return 30 * time.Millisecond }

func (c *Chase) Tick(buf *frame.Buffer) {
	buf.Clear()
	head := palette[c.colorIdx]
	buf.Set(c.position, head)
	for t := 1; t <= trailLen; t++ {
		brightness := 255 * (10 - t) / 10
		buf.Set(c.position-t, frame.Pixel{
			R: uint8(int(head.R) * brightness / 255),
			G: uint8(int(head.G) * brightness / 255),
			B: uint8(int(head.B) * brightness / 255),
		})
	}
	c.position = (c.position + 1) % c.n
	if c.position == 0 {
		c.colorIdx = (c.colorIdx + 1) % len(palette)
	}
}
