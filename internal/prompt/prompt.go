// Package prompt reads validated lines from an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"io"

	"github.com/rs/zerolog/log"
)

// MaxLineLength is the longest answer, in bytes, a Prompter returns.
// Longer lines are read to their end and discarded.
const MaxLineLength = 4096

// ErrClosed is returned once the input reaches EOF.
var ErrClosed = errors.New("prompt: input closed")

// Prompter writes labels and reads answers one line at a time.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from r and writing labels to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), out: w}
}

// Line writes label and returns the next line without its line ending.
// A line longer than MaxLineLength comes back empty, so every parse
// function rejects it and the caller asks again.
func (p *Prompter) Line(label string) (string, error) {
	if label != "" {
		if _, err := io.WriteString(p.out, label); err != nil {
			return "", err
		}
	}

	var (
		buf  []byte
		long bool
		read bool
	)
	for {
		chunk, more, err := p.r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			if errors.Is(err, io.EOF) {
				return "", ErrClosed
			}
			return "", err
		}
		read = true
		if !long && len(buf)+len(chunk) > MaxLineLength {
			long, buf = true, nil
		}
		if !long {
			buf = append(buf, chunk...)
		}
		if !more {
			break
		}
	}
	if long {
		log.Debug().Int("max", MaxLineLength).Msg("discarded over-long input line")
		return "", nil
	}
	return string(buf), nil
}

// Until asks with label until parse accepts the answer. Rejected answers are
// never errors; the only way out besides a valid answer is closed input.
func Until[T any](p *Prompter, label string, parse func(string) (T, bool)) (T, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			var zero T
			return zero, err
		}
		if v, ok := parse(line); ok {
			return v, nil
		}
	}
}
