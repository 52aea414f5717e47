package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSVPrimaries(t *testing.T) {
	r, g, b := HSVToRGB(0, 255, 255)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(0), b)
}

func TestHSVZeroSaturationIsGray(t *testing.T) {
	for v := 0; v <= 255; v++ {
		r, g, b := HSVToRGB(0, 0, uint8(v))
		assert.Equal(t, r, g)
		assert.Equal(t, g, b)
		// Truncation may land one below v.
		assert.InDelta(t, v, int(r), 1, "v=%d", v)
	}
	r, _, _ := HSVToRGB(0, 0, 0)
	assert.Equal(t, uint8(0), r)
	r, _, _ = HSVToRGB(0, 0, 255)
	assert.Equal(t, uint8(255), r)
}

func TestHSVFullBrightnessAlwaysHasPeakChannel(t *testing.T) {
	// At s=v=255 one channel sits at (or within truncation of) 255.
	for h := 0; h <= 255; h++ {
		r, g, b := HSVToRGB(uint8(h), 255, 255)
		peak := r
		if g > peak {
			peak = g
		}
		if b > peak {
			peak = b
		}
		assert.GreaterOrEqual(t, int(peak), 254, "h=%d", h)
	}
}

func TestHSVZeroValueIsBlack(t *testing.T) {
	for h := 0; h < 256; h += 7 {
		for s := 0; s < 256; s += 17 {
			r, g, b := HSVToRGB(uint8(h), uint8(s), 0)
			if r != 0 || g != 0 || b != 0 {
				t.Fatalf("h=%d s=%d v=0: got (%d,%d,%d), want black", h, s, r, g, b)
			}
		}
	}
}
