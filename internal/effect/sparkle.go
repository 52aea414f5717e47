package effect

import (
	"math"
	"math/rand"
	"time"

	"github.com/lumacast/lumacast/internal/frame"
)

const (
	sparkleFade = 0.9
	sparkleMin  = 180
	sparkleMax  = 255
)

// Sparkle fades the whole strip each tick and relights ~5% of the pixels
// with bright random colors. The only non-deterministic effect.
type Sparkle struct {
	n      int
	sparks int
	rng    *rand.Rand
}

// NewSparkle builds the effect for an n-pixel strip. rng may be nil, in
// which case a time-seeded source is used; tests inject a fixed seed.
func NewSparkle(n int, rng *rand.Rand) *Sparkle {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sparkle{
		n:      n,
		sparks: int(math.Ceil(float64(n) * 0.05)),
		rng:    rng,
	}
}

func (s *Sparkle) Name() string { return "random" }

func (s *Sparkle) Interval() time.Duration { return 50 * time.Millisecond }

func (s *Sparkle) Tick(buf *frame.Buffer) {
	buf.Decay(sparkleFade)
	for k := 0; k < s.sparks; k++ {
		i := s.rng.Intn(s.n)
		buf.Set(i, frame.Pixel{
			R: uint8(sparkleMin + s.rng.Intn(sparkleMax-sparkleMin+1)),
			G: uint8(sparkleMin + s.rng.Intn(sparkleMax-sparkleMin+1)),
			B: uint8(sparkleMin + s.rng.Intn(sparkleMax-sparkleMin+1)),
		})
	}
}
