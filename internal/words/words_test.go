package words

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	return path
}

type fixedPicker int

func (f fixedPicker) Pick(int) (int, error) { return int(f), nil }

func TestLoadNormalizesAndFilters(t *testing.T) {
	path := writeList(t, "# comment\nApple\n\n  pear \nice-cream\nx9\nkiwi")

	var calls []int
	list, err := Load(path, func(n int) { calls = append(calls, n) })
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	want := []string{"apple", "pear", "kiwi"}
	if strings.Join(list, ",") != strings.Join(want, ",") {
		t.Fatalf("list = %v, want %v", list, want)
	}
	if len(calls) != 3 || calls[2] != 3 {
		t.Fatalf("progress calls = %v, want [1 2 3]", calls)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	for _, content := range []string{"", "\n\n", "# only comments\n", "123\n--\n"} {
		_, err := Load(writeList(t, content), nil)
		if !errors.Is(err, ErrEmptyList) {
			t.Fatalf("Load(%q) error = %v, want ErrEmptyList", content, err)
		}
	}
}

func TestLoadDefault(t *testing.T) {
	list, err := LoadDefault(nil)
	if err != nil {
		t.Fatalf("LoadDefault error = %v", err)
	}
	if len(list) == 0 {
		t.Fatalf("embedded list is empty")
	}
	for _, w := range list {
		if !isAlpha(w) || strings.ToLower(w) != w {
			t.Fatalf("embedded word %q is not lowercase letters", w)
		}
	}
}

func TestPickEmpty(t *testing.T) {
	if _, err := Pick(nil, RandomPicker{}); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("Pick(nil) error = %v, want ErrEmptyList", err)
	}
}

func TestPickOutOfRange(t *testing.T) {
	if _, err := Pick([]string{"a"}, fixedPicker(4)); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}

func TestRandomPickerCoversList(t *testing.T) {
	list := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 500 && len(seen) < len(list); i++ {
		w, err := Pick(list, RandomPicker{})
		if err != nil {
			t.Fatalf("Pick error = %v", err)
		}
		seen[w] = true
	}
	if len(seen) != len(list) {
		t.Fatalf("picked %v, want every word at least once", seen)
	}
}

func TestDailyPickerIsStablePerDay(t *testing.T) {
	at := func(h int) func() time.Time {
		return func() time.Time { return time.Date(2026, 10, 19, h, 0, 0, 0, time.UTC) }
	}
	a, err := DailyPicker{Salt: "s", Now: at(1)}.Pick(1000)
	if err != nil {
		t.Fatalf("Pick error = %v", err)
	}
	b, _ := DailyPicker{Salt: "s", Now: at(23)}.Pick(1000)
	if a != b {
		t.Fatalf("same day picks differ: %d vs %d", a, b)
	}
	if a < 0 || a >= 1000 {
		t.Fatalf("pick %d out of range", a)
	}
}

func TestDailyPickerVariesWithSaltAndDay(t *testing.T) {
	day := func(d int) func() time.Time {
		return func() time.Time { return time.Date(2026, 10, d, 12, 0, 0, 0, time.UTC) }
	}
	base, _ := DailyPicker{Salt: "s", Now: day(19)}.Pick(1 << 30)
	other, _ := DailyPicker{Salt: "t", Now: day(19)}.Pick(1 << 30)
	next, _ := DailyPicker{Salt: "s", Now: day(20)}.Pick(1 << 30)
	if base == other || base == next {
		t.Fatalf("picks base=%d salt=%d day=%d, want all distinct", base, other, next)
	}
}

func TestDailyPickerEmptyList(t *testing.T) {
	if _, err := (DailyPicker{Salt: "s"}).Pick(0); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("Pick(0) error = %v, want ErrEmptyList", err)
	}
}

func TestDayKeyUsesUTC(t *testing.T) {
	at := time.Date(2026, 10, 19, 5, 0, 0, 0, time.FixedZone("UTC+10", 10*60*60))
	if got := dayKey(at); got != "2026-10-18" {
		t.Fatalf("dayKey = %q, want %q", got, "2026-10-18")
	}
}

func TestSourceNext(t *testing.T) {
	path := writeList(t, "alpha\nbravo\ncharlie\n")
	w, err := Source{Path: path, Picker: fixedPicker(1)}.Next()
	if err != nil {
		t.Fatalf("Next error = %v", err)
	}
	if w != "bravo" {
		t.Fatalf("Next = %q, want %q", w, "bravo")
	}
}

func TestSourceNextEmbedded(t *testing.T) {
	w, err := Source{}.Next()
	if err != nil {
		t.Fatalf("Next error = %v", err)
	}
	if w == "" {
		t.Fatalf("Next returned an empty word")
	}
}

func TestSourceNextEmptyFile(t *testing.T) {
	_, err := Source{Path: writeList(t, "")}.Next()
	if !errors.Is(err, ErrEmptyList) {
		t.Fatalf("Next error = %v, want ErrEmptyList", err)
	}
}
