package outbox

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "outbox.db"))
	if err != nil {
		t.Fatalf("OpenSQLite error = %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func delivery(id string, status Status, created time.Time) Delivery {
	return Delivery{
		ID:        id,
		Player:    "ADA",
		Subject:   "You won Hangman!",
		Body:      "Hello ADA",
		Status:    status,
		Attempts:  1,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 30, 0, 123, time.UTC)
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			d := delivery("a1", StatusSent, now)
			if err := st.Save(ctx, d); err != nil {
				t.Fatalf("Save error = %v", err)
			}
			got, err := st.Get(ctx, "a1")
			if err != nil {
				t.Fatalf("Get error = %v", err)
			}
			if got.Player != d.Player || got.Status != StatusSent || !got.CreatedAt.Equal(now) {
				t.Fatalf("Get = %+v, want %+v", got, d)
			}
			if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreFailedOrderedAndUpdated(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for _, d := range []Delivery{
				delivery("late", StatusFailed, base.Add(2*time.Minute)),
				delivery("ok", StatusSent, base.Add(time.Minute)),
				delivery("early", StatusFailed, base.Add(100*time.Millisecond)),
			} {
				if err := st.Save(ctx, d); err != nil {
					t.Fatalf("Save error = %v", err)
				}
			}

			failed, err := st.Failed(ctx)
			if err != nil {
				t.Fatalf("Failed error = %v", err)
			}
			if len(failed) != 2 || failed[0].ID != "early" || failed[1].ID != "late" {
				t.Fatalf("Failed = %+v, want [early late]", failed)
			}

			retried := failed[0]
			retried.Status = StatusSent
			retried.Attempts = 2
			retried.UpdatedAt = base.Add(time.Hour)
			if err := st.Save(ctx, retried); err != nil {
				t.Fatalf("Save retried error = %v", err)
			}
			failed, err = st.Failed(ctx)
			if err != nil {
				t.Fatalf("Failed error = %v", err)
			}
			if len(failed) != 1 || failed[0].ID != "late" {
				t.Fatalf("Failed after retry = %+v, want [late]", failed)
			}
			got, _ := st.Get(ctx, "early")
			if got.Attempts != 2 {
				t.Fatalf("attempts = %d, want 2", got.Attempts)
			}
		})
	}
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outbox.db")
	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("first open error = %v", err)
	}
	if err := first.Save(context.Background(), delivery("x", StatusFailed, time.Now())); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	_ = first.Close()

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("second open error = %v", err)
	}
	defer second.Close()
	failed, err := second.Failed(context.Background())
	if err != nil || len(failed) != 1 {
		t.Fatalf("Failed after reopen = %v, %v, want one delivery", failed, err)
	}
}

func TestSQLiteCorruptTimestamp(t *testing.T) {
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "outbox.db"))
	if err != nil {
		t.Fatalf("OpenSQLite error = %v", err)
	}
	defer st.Close()
	ctx := context.Background()
	if err := st.Save(ctx, delivery("bad", StatusFailed, time.Now())); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	db := st.(*sqliteStore).db
	if _, err := db.ExecContext(ctx, `UPDATE deliveries SET created_at='yesterday' WHERE id='bad'`); err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	if _, err := st.Get(ctx, "bad"); err == nil || !strings.Contains(err.Error(), "created_at") {
		t.Fatalf("Get error = %v, want created_at parse error", err)
	}
	if got, err := st.Failed(ctx); err == nil {
		t.Fatalf("Failed = %v, want parse error", got)
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 16 || a == b {
		t.Fatalf("NewID = %q, %q, want distinct 16-char ids", a, b)
	}
}
