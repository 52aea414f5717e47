package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/config"
	"github.com/lumacast/lumacast/internal/effect"
	"github.com/lumacast/lumacast/internal/frame"
	"github.com/lumacast/lumacast/internal/preview"
	"github.com/lumacast/lumacast/internal/stream"
)

func main() {
	var (
		leds        = flag.Int("leds", 0, "strip length in pixels (max 170; 0 = config/default)")
		previewAddr = flag.String("preview", "", "HTTP listen address for the websocket frame preview (empty = off)")
		configPath  = flag.String("config", "", "path to optional yaml config")
	)
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		w.Write([]byte("usage: lumacast [flags] [target] [universe] [effect]\n"))
		flag.PrintDefaults()
	}
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Config: defaults <- yaml <- CLI ----
	cfg := config.Default()
	if *configPath != "" {
		if err := config.Load(*configPath, &cfg); err != nil {
			log.Error().Err(err).Str("path", *configPath).Msg("config load failed")
			os.Exit(1)
		}
	}
	if *leds > 0 {
		cfg.NumLEDs = *leds
	}
	if *previewAddr != "" {
		cfg.PreviewAddr = *previewAddr
	}
	if flag.NArg() > 0 {
		cfg.Target = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		u, err := strconv.ParseUint(flag.Arg(1), 10, 16)
		if err != nil {
			log.Error().Str("universe", flag.Arg(1)).Msg("universe must be a 16-bit unsigned integer")
			os.Exit(1)
		}
		cfg.Universe = uint16(u)
	}
	if flag.NArg() > 2 {
		cfg.Effect = flag.Arg(2)
	}

	os.Exit(run(cfg))
}

func run(cfg config.Config) int {
	tr, err := stream.NewUDP(cfg.Target)
	if err != nil {
		log.Error().Err(err).Str("target", cfg.Target).Msg("cannot open transport")
		return 1
	}
	defer tr.Close()

	if err := cfg.Validate(); err != nil {
		// Bad config still blanks the strip before exiting, in case a
		// previous run left it lit.
		log.Error().Err(err).Msg("invalid configuration")
		if cfg.NumLEDs >= 1 && cfg.NumLEDs <= frame.MaxPixels {
			if berr := stream.Blank(tr, cfg.Universe, cfg.NumLEDs); berr != nil {
				log.Warn().Err(berr).Msg("clear frame failed")
			}
		}
		return 1
	}

	buf, err := frame.New(cfg.NumLEDs)
	if err != nil {
		log.Error().Err(err).Msg("invalid strip length")
		return 1
	}
	eff, err := effect.New(cfg.Effect, cfg.NumLEDs)
	if err != nil {
		log.Error().Err(err).Msg("invalid effect")
		return 1
	}

	log.Info().
		Str("target", cfg.Target).
		Uint16("universe", cfg.Universe).
		Int("leds", cfg.NumLEDs).
		Str("effect", cfg.Effect).
		Msg("lumacast starting")

	s := stream.New(cfg.Universe, buf, eff, tr, log.Logger)

	if cfg.PreviewAddr != "" {
		pv := preview.New(log.Logger)
		s.SetTap(pv.Broadcast)
		go func() {
			log.Info().Str("addr", cfg.PreviewAddr).Msg("preview listening")
			err := http.ListenAndServe(cfg.PreviewAddr, pv.Handler())
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn().Err(err).Msg("preview server stopped")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil {
		log.Error().Err(err).Msg("stream loop failed")
		return 1
	}
	log.Info().Msg("interrupted, strip cleared")
	return 0
}
