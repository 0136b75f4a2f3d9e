package words

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"
	"time"
)

// Picker chooses an index in [0, n).
type Picker interface {
	Pick(n int) (int, error)
}

// Pick returns one word of list chosen by p.
func Pick(list []string, p Picker) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyList
	}
	i, err := p.Pick(len(list))
	if err != nil {
		return "", fmt.Errorf("words: pick: %w", err)
	}
	if i < 0 || i >= len(list) {
		return "", fmt.Errorf("words: pick: index %d out of range [0,%d)", i, len(list))
	}
	return list[i], nil
}

// RandomPicker picks uniformly using crypto/rand.
type RandomPicker struct{}

func (RandomPicker) Pick(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// DailyPicker picks the same index for everyone sharing Salt on a given
// UTC day. The index is the salted HMAC-SHA256 of the day, reduced mod n.
type DailyPicker struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

func (d DailyPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyList
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	mac := hmac.New(sha256.New, []byte(d.Salt))
	mac.Write([]byte(dayKey(now())))
	sum := new(big.Int).SetBytes(mac.Sum(nil))
	return int(sum.Mod(sum, big.NewInt(int64(n))).Int64()), nil
}

// dayKey names the UTC calendar day of t.
func dayKey(t time.Time) string { return t.UTC().Format(time.DateOnly) }
