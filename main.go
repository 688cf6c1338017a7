package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/drumveil/internal/config"
	"git.lost.host/meutraa/drumveil/internal/generator"
	"git.lost.host/meutraa/drumveil/internal/input"
	"git.lost.host/meutraa/drumveil/internal/render"
	"git.lost.host/meutraa/drumveil/internal/theme"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	var out io.WriteCloser = nopCloser{os.Stderr}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if nil != err {
			return nil, nil, errors.Wrap(err, "unable to open log file")
		}
		out = f
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(handler), out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if nil != err {
		return err
	}
	defer closer.Close()

	keys := input.DefaultKeyMap()
	if err := keys.Override(cfg.Keys); nil != err {
		return errors.Wrap(err, "invalid key bindings")
	}

	gen := generator.NewRandom()
	if cfg.Seed != 0 {
		gen = generator.New(cfg.Seed)
	}

	status := render.NewStatusLine(os.Stdout)
	p := &Program{
		Difficulty: cfg.Difficulty,
		Generator:  gen,
		Keys:       keys,
		Theme:      &theme.DefaultTheme{},
		Log:        logger,
		Out:        status,
	}
	if err := p.Init(); nil != err {
		return err
	}

	src, err := input.Open(128)
	if nil != err {
		return err
	}
	defer func() {
		if err := src.Close(); nil != err {
			logger.Error("unable to close keyboard", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	status.Init()
	defer status.Deinit()

	loop := render.NewFrameLoop(cfg.FramePeriod)
	err = loop.Run(ctx, func(elapsed time.Duration) bool {
		return p.Frame(src.Events(), elapsed)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
