// internal/notify/notify.go
//
// Win notifications.
// Responsibilities:
//   - Compose the congratulation message for a player.
//   - Deliver it through a Transport (SMTP in production).
//   - Record every attempt in the outbox and retry failed ones.
//
// Notes:
//   - Sending is best effort. Callers log errors and carry on; a failed
//     email never changes the result of a game.

package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/outbox"
)

// Notifier sends the end-of-game message for a player.
type Notifier interface {
	Send(ctx context.Context, player string, won bool) error
}

// Message is a composed notification.
type Message struct {
	Subject string
	Body    string
}

// Transport delivers a composed message.
type Transport interface {
	Deliver(ctx context.Context, m Message) error
}

// Compose builds the message for player.
func Compose(player string, won bool) Message {
	if won {
		return Message{
			Subject: "You won Hangman!",
			Body:    fmt.Sprintf("Hello %s,\n\nYou won Hangman!!", player),
		}
	}
	return Message{
		Subject: "Better luck next time",
		Body:    fmt.Sprintf("Hello %s,\n\nThe word got away this time. Have another go!", player),
	}
}

// Service composes, delivers and records notifications.
type Service struct {
	Transport Transport
	Store     outbox.Store
	Now       func() time.Time // defaults to time.Now
}

// Send delivers the message for player and records the attempt.
// The delivery error, if any, is returned after it has been recorded.
func (s *Service) Send(ctx context.Context, player string, won bool) error {
	m := Compose(player, won)
	now := s.now()
	d := outbox.Delivery{
		ID:        outbox.NewID(),
		Player:    player,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: now,
	}
	return s.attempt(ctx, d)
}

// Redeliver retries every failed delivery once. It returns the number of
// deliveries that went through; individual failures are recorded, not returned.
func (s *Service) Redeliver(ctx context.Context) (int, error) {
	failed, err := s.Store.Failed(ctx)
	if err != nil {
		return 0, fmt.Errorf("list failed deliveries: %w", err)
	}
	sent := 0
	for _, d := range failed {
		if err := s.attempt(ctx, d); err != nil {
			log.Warn().Err(err).Str("delivery", d.ID).Int("attempts", d.Attempts+1).Msg("redelivery failed")
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *Service) attempt(ctx context.Context, d outbox.Delivery) error {
	sendErr := s.Transport.Deliver(ctx, Message{Subject: d.Subject, Body: d.Body})

	d.Attempts++
	d.UpdatedAt = s.now()
	d.Status = outbox.StatusSent
	d.LastError = ""
	if sendErr != nil {
		d.Status = outbox.StatusFailed
		d.LastError = sendErr.Error()
	}
	if err := s.Store.Save(ctx, d); err != nil {
		log.Warn().Err(err).Str("delivery", d.ID).Msg("record delivery")
	}
	if sendErr != nil {
		return fmt.Errorf("deliver %s: %w", d.ID, sendErr)
	}
	log.Info().Str("delivery", d.ID).Str("player", d.Player).Msg("notification sent")
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Disabled is the Notifier used when no mail server is configured.
type Disabled struct{}

func (Disabled) Send(ctx context.Context, player string, won bool) error {
	log.Debug().Str("player", player).Bool("won", won).Msg("notifications disabled; skipping")
	return nil
}
