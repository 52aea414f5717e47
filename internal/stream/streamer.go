// Package stream drives the tick → encode → send loop at the effect's
// frame rate and guarantees the strip is blanked on exit.
package stream

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumacast/lumacast/internal/artnet"
	"github.com/lumacast/lumacast/internal/effect"
	"github.com/lumacast/lumacast/internal/frame"
)

// FrameTap observes every outbound frame's channel data. Used by the
// preview server; must not retain the slice.
type FrameTap func(frameID uint64, channels []byte)

// Streamer owns the single run loop. One buffer, one effect, one target;
// nothing here is shared across goroutines.
type Streamer struct {
	universe uint16
	buf      *frame.Buffer
	eff      effect.Effect
	tr       Transport
	tap      FrameTap
	log      zerolog.Logger

	frameID uint64
}

func New(universe uint16, buf *frame.Buffer, eff effect.Effect, tr Transport, log zerolog.Logger) *Streamer {
	return &Streamer{
		universe: universe,
		buf:      buf,
		eff:      eff,
		tr:       tr,
		log:      log,
	}
}

// SetTap installs a frame observer. Call before Run.
func (s *Streamer) SetTap(tap FrameTap) { s.tap = tap }

// Run loops until ctx is canceled, sending one frame per effect interval.
// Pacing is best-effort: a slow tick just falls behind, ticks are never
// replayed to catch up. On every exit path one all-zero frame is sent so
// the strip is left dark rather than frozen.
func (s *Streamer) Run(ctx context.Context) error {
	defer func() {
		if err := s.clear(); err != nil {
			s.log.Warn().Err(err).Msg("clear frame on shutdown failed")
		}
	}()

	ticker := time.NewTicker(s.eff.Interval())
	defer ticker.Stop()

	s.log.Info().
		Str("effect", s.eff.Name()).
		Dur("interval", s.eff.Interval()).
		Int("leds", s.buf.Len()).
		Msg("streaming")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.step()
		}
	}
}

// step produces and sends one frame. Encode or send failures are logged
// and the frame is dropped; one lost animation frame is imperceptible.
func (s *Streamer) step() {
	s.eff.Tick(s.buf)
	data := s.buf.Bytes()
	pkt, err := artnet.Packet(s.universe, data)
	if err != nil {
		s.log.Error().Err(err).Msg("encode failed, frame skipped")
		return
	}
	if err := s.tr.Send(pkt); err != nil {
		s.log.Warn().Err(err).Msg("send failed, frame skipped")
		return
	}
	s.frameID++
	if s.tap != nil {
		s.tap(s.frameID, data)
	}
}

func (s *Streamer) clear() error {
	return Blank(s.tr, s.universe, s.buf.Len())
}

// Blank sends a single all-zero frame for an n-pixel strip, turning the
// LEDs off. Also used on the configuration-error path before exit.
func Blank(tr Transport, universe uint16, n int) error {
	pkt, err := artnet.Packet(universe, make([]byte, n*3))
	if err != nil {
		return err
	}
	return tr.Send(pkt)
}
