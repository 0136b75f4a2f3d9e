package main

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/notify"
	"github.com/robalobadob/hangman/internal/outbox"
	"github.com/robalobadob/hangman/internal/render"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx := context.Background()

	notifier, closeOutbox, err := newNotifier(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up notifications")
	}
	defer closeOutbox()

	styler := render.Detect(os.Stdout)
	out := colorable.NewColorableStdout()

	src := words.Source{
		Path:     cfg.WordsFile,
		Progress: render.Progress(out, cfg.LoadingDelay),
	}
	if cfg.DailySalt != "" {
		src.Picker = words.DailyPicker{Salt: cfg.DailySalt}
	}

	s := session.New(os.Stdin, out, styler, src, notifier)
	if err := s.Run(ctx); err != nil {
		closeOutbox()
		log.Fatal().Err(err).Msg("session aborted")
	}
}

// newNotifier builds the win notifier from configuration. Without SMTP
// settings notifications are disabled; otherwise every attempt is recorded
// in the outbox and earlier failures are retried once.
func newNotifier(ctx context.Context, cfg config.Config) (notify.Notifier, func(), error) {
	if !cfg.SMTP.Enabled() {
		return notify.Disabled{}, func() {}, nil
	}

	transport, err := notify.NewSMTP(notify.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
		Timeout:  cfg.SMTP.Timeout,
	})
	if err != nil {
		return nil, nil, err
	}

	store := outbox.NewMemoryStore()
	if cfg.OutboxDB != "" {
		if store, err = outbox.OpenSQLite(cfg.OutboxDB); err != nil {
			return nil, nil, err
		}
	}
	closed := false
	closeStore := func() {
		if closed {
			return
		}
		closed = true
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("close outbox")
		}
	}

	svc := &notify.Service{Transport: transport, Store: store}
	if n, err := svc.Redeliver(ctx); err != nil {
		log.Warn().Err(err).Msg("redeliver notifications")
	} else if n > 0 {
		log.Info().Int("count", n).Msg("redelivered notifications")
	}
	return svc, closeStore, nil
}
