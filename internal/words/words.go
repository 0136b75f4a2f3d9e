// internal/words/words.go
//
// Provides word list loading and selection for the game engine.
//
// Responsibilities:
//   - Load a line-delimited word list from a file, or from the embedded
//     default list when no file is configured.
//   - Pick one word, uniformly at random or as the word of the day.
//
// Word Lists:
//   - One word per line; lines are trimmed and lowercased.
//   - Blank lines and lines starting with '#' are ignored.
//   - Lines containing anything but letters are skipped: such a word
//     could never be completed with single-letter guesses.
//
// Constraints:
//   • A configured file that is missing or unreadable is an error; there is
//     no fallback to the embedded list.
//   • A list with no usable words is ErrEmptyList.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
)

// ErrEmptyList is returned when a word list has no usable words.
var ErrEmptyList = errors.New("words: word list is empty")

// Progress is called once for every word accepted while loading.
type Progress func(n int)

// Load reads one word per line from the file at path.
// The file is closed before Load returns.
func Load(path string, progress Progress) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Parse(f, progress)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return list, nil
}

// LoadDefault reads the embedded default word list.
func LoadDefault(progress Progress) ([]string, error) {
	f, err := assets.OpenWords()
	if err != nil {
		return nil, fmt.Errorf("words: open embedded list: %w", err)
	}
	defer f.Close()
	return Parse(f, progress)
}

// Parse reads one word per line from r,
// lowercases, trims, and keeps only alphabetic words.
func Parse(r io.Reader, progress Progress) ([]string, error) {
	var out []string
	skipped := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !isAlpha(w) {
			skipped++
			continue
		}
		out = append(out, w)
		if progress != nil {
			progress(len(out))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("ignored non-alphabetic words")
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return out, nil
}

// isAlpha reports whether s is all letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Source loads a word list and picks one word from it on every call.
type Source struct {
	Path     string   // Word list file; empty selects the embedded list.
	Picker   Picker   // Selection strategy; nil means RandomPicker.
	Progress Progress // Optional per-word loading callback.
}

// Next loads the list and returns one word from it.
func (s Source) Next() (string, error) {
	var (
		list []string
		err  error
	)
	if s.Path == "" {
		list, err = LoadDefault(s.Progress)
	} else {
		list, err = Load(s.Path, s.Progress)
	}
	if err != nil {
		return "", err
	}

	picker := s.Picker
	if picker == nil {
		picker = RandomPicker{}
	}
	w, err := Pick(list, picker)
	if err != nil {
		return "", err
	}
	log.Debug().Int("words", len(list)).Str("path", s.Path).Msg("word list loaded")
	return w, nil
}
