// internal/outbox/outbox.go
//
// Delivery log for win notifications.
// Every notification attempt is recorded with its outcome so failed sends
// can be retried on the next start-up. Only notifications are stored here;
// scores and game history are never persisted.

package outbox

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// Status is the delivery state of one notification.
type Status string

const (
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// ErrNotFound is returned when a delivery ID is unknown.
var ErrNotFound = errors.New("outbox: delivery not found")

// Delivery is one recorded notification.
type Delivery struct {
	ID        string    // Random hex identifier.
	Player    string    // Display name the message was composed for.
	Subject   string    // Message subject.
	Body      string    // Plain-text message body.
	Status    Status    // Result of the latest attempt.
	Attempts  int       // Number of send attempts so far.
	LastError string    // Error text of the latest failed attempt.
	CreatedAt time.Time // First attempt, UTC.
	UpdatedAt time.Time // Latest attempt, UTC.
}

// Store defines the persistence interface for deliveries.
// Implementations may be backed by memory or SQLite (this package).
type Store interface {
	// Save inserts or replaces a delivery by ID.
	Save(ctx context.Context, d Delivery) error

	// Get retrieves a delivery by ID.
	// Returns ErrNotFound if the delivery is unknown.
	Get(ctx context.Context, id string) (Delivery, error)

	// Failed lists deliveries whose latest attempt failed, oldest first.
	Failed(ctx context.Context) ([]Delivery, error)

	// Close releases any underlying resources.
	Close() error
}

// NewID returns a compact 16‑hex‑char identifier.
func NewID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
