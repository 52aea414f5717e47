// Package effect implements the strip animators. Each effect owns its
// animation state and mutates the shared frame buffer once per tick.
package effect

import (
	"fmt"
	"sort"
	"time"

	"github.com/lumacast/lumacast/internal/frame"
)

// Effect is one stateful animator. Tick advances the animation by exactly
// one frame; the transmitter calls it once per Interval.
type Effect interface {
	Name() string
	Interval() time.Duration
	Tick(buf *frame.Buffer)
}

type factory func(n int) Effect

var factories = map[string]factory{
	"rainbow": func(n int) Effect { return NewRainbow() },
	"chase":   func(n int) Effect { return NewChase(n) },
	"random":  func(n int) Effect { return NewSparkle(n, nil) },
	"solid":   func(n int) Effect { return NewSolid() },
}

// New builds the named effect for an n-pixel strip. Unknown names are a
// configuration error.
func New(name string, n int) (Effect, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown effect %q (available: %v)", name, Names())
	}
	return f(n), nil
}

// Names lists the registered effect names, sorted.
func Names() []string {
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
