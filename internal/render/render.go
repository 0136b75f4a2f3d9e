// internal/render/render.go
//
// Terminal presentation for the game.
// Responsibilities:
//   - Styler capability: ANSI colours or plain text.
//   - Board: masked word, colour-banded lives, guessed letters.
//   - Static banners: rules, difficulty menu, separators.
//
// The game package never imports this one; swapping the Styler changes the
// look without touching any transition logic.

package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/hangman/internal/difficulty"
	"github.com/robalobadob/hangman/internal/game"
)

// Tone names the intent of a piece of text; stylers map it to a colour.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneDanger
	ToneWarning
	ToneOK
	ToneRule
)

// Placeholder is shown for letters not yet guessed.
const Placeholder = '_'

// Styler decorates text according to its tone.
type Styler interface {
	Style(t Tone, s string) string
}

// Plain returns text unchanged.
type Plain struct{}

func (Plain) Style(_ Tone, s string) string { return s }

// ANSI wraps text in terminal colour escapes. It always colours; choosing
// between ANSI and Plain is Detect's job.
type ANSI struct{}

var palette = map[Tone]*color.Color{
	ToneInfo:    forced(color.FgBlue),
	ToneSuccess: forced(color.FgCyan),
	ToneDanger:  forced(color.FgRed),
	ToneWarning: forced(color.FgYellow),
	ToneOK:      forced(color.FgGreen),
	ToneRule:    forced(color.FgMagenta),
}

func forced(a color.Attribute) *color.Color {
	c := color.New(a)
	c.EnableColor()
	return c
}

func (ANSI) Style(t Tone, s string) string {
	c, ok := palette[t]
	if !ok || s == "" {
		return s
	}
	return c.Sprint(s)
}

// Detect returns ANSI when f is a terminal and colour has not been turned
// off (NO_COLOR, TERM=dumb, redirected stdout); Plain otherwise.
func Detect(f *os.File) Styler {
	if color.NoColor {
		return Plain{}
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return ANSI{}
	}
	return Plain{}
}

// LivesTone bands the remaining lives into three severities.
func LivesTone(lives int) Tone {
	switch {
	case lives <= 3:
		return ToneDanger
	case lives <= 6:
		return ToneWarning
	default:
		return ToneOK
	}
}

// Masked spells the word with unguessed letters replaced by Placeholder.
func Masked(g game.Game) string {
	var b strings.Builder
	for i, r := range g.Word() {
		if i > 0 {
			b.WriteByte(' ')
		}
		if g.Revealed(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// Board renders the masked word, the lives and the guessed letters.
func Board(st Styler, g game.Game) string {
	guessed := make([]string, 0, len(g.Guessed()))
	for _, r := range g.Guessed() {
		guessed = append(guessed, string(r))
	}
	return fmt.Sprintf("%s\n%s\nGUESSED: %s\n",
		Masked(g),
		st.Style(LivesTone(g.Lives()), fmt.Sprintf("LIVES: %d", g.Lives())),
		strings.Join(guessed, " "),
	)
}

// Separator returns a styled line of n copies of ch.
func Separator(st Styler, ch rune, n int) string {
	return st.Style(ToneRule, strings.Repeat(string(ch), n))
}

// Rules returns the static rules banner.
func Rules(st Styler) string {
	return st.Style(ToneInfo, strings.Join([]string{
		"",
		"********** RULES **********",
		"- Select a difficulty",
		"- Guess a letter",
		"- If it's wrong, you lose a life",
		"- If it's right, you'll see the letter appear",
		"- Reveal the whole word before you run out of lives",
	}, "\n")) + "\n"
}

var menuTones = map[difficulty.Tier]Tone{
	difficulty.Easy:   ToneOK,
	difficulty.Medium: ToneWarning,
	difficulty.Hard:   ToneDanger,
}

// Menu returns the difficulty menu followed by the input marker.
func Menu(st Styler) string {
	var b strings.Builder
	b.WriteString("\nSelect Difficulty")
	for _, t := range difficulty.Tiers {
		b.WriteString("\n")
		b.WriteString(st.Style(menuTones[t], fmt.Sprintf("- %s (%d lives)", t, t.Lives())))
	}
	b.WriteString("\n")
	b.WriteString(Marker(st))
	return b.String()
}

// Marker is the input prompt marker.
func Marker(st Styler) string { return st.Style(ToneInfo, "> ") }

// Progress returns a loading callback that prints alternating '<' and '>'
// to w, pausing for delay after each word. A zero delay never sleeps.
func Progress(w io.Writer, delay time.Duration) func(n int) {
	return func(n int) {
		ch := "<"
		if n%2 == 0 {
			ch = ">"
		}
		_, _ = io.WriteString(w, ch)
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}
