// Package frame holds the per-strip pixel buffer that effects mutate in place.
package frame

import (
	"fmt"
)

// MaxPixels is the most RGB pixels a single DMX universe can address
// (512 channels / 3 per pixel).
const MaxPixels = 170

// Pixel is one LED's color. Channels map 1:1 to DMX channel bytes.
type Pixel struct {
	R, G, B uint8
}

// Buffer is an ordered strip of exactly N pixels, allocated once per run.
// Pixel i occupies DMX channels 3i..3i+2.
type Buffer struct {
	pix []Pixel
}

// New allocates a buffer for n pixels. n must fit a single universe.
func New(n int) (*Buffer, error) {
	if n < 1 || n > MaxPixels {
		return nil, fmt.Errorf("strip length %d out of range [1,%d]", n, MaxPixels)
	}
	return &Buffer{pix: make([]Pixel, n)}, nil
}

// Len returns the strip length.
func (b *Buffer) Len() int { return len(b.pix) }

// Clear sets every pixel to black.
func (b *Buffer) Clear() {
	for i := range b.pix {
		b.pix[i] = Pixel{}
	}
}

// Decay scales every channel by factor, truncating to integer. Used for
// fading trails. Factor is clamped to [0,1] rather than rejected.
func (b *Buffer) Decay(factor float64) {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	for i := range b.pix {
		b.pix[i].R = uint8(float64(b.pix[i].R) * factor)
		b.pix[i].G = uint8(float64(b.pix[i].G) * factor)
		b.pix[i].B = uint8(float64(b.pix[i].B) * factor)
	}
}

// Set writes pixel i, wrapping i modulo the strip length so callers can use
// unbounded or negative indices for wraparound trails.
func (b *Buffer) Set(i int, p Pixel) {
	n := len(b.pix)
	i = ((i % n) + n) % n
	b.pix[i] = p
}

// At returns pixel i, wrapped the same way as Set.
func (b *Buffer) At(i int) Pixel {
	n := len(b.pix)
	i = ((i % n) + n) % n
	return b.pix[i]
}

// Bytes flattens the buffer to the R,G,B,R,G,B... channel sequence the
// ArtNet encoder consumes. The returned slice is a fresh copy.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.pix)*3)
	for i, p := range b.pix {
		out[i*3+0] = p.R
		out[i*3+1] = p.G
		out[i*3+2] = p.B
	}
	return out
}
