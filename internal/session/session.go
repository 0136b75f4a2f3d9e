// internal/session/session.go
//
// Interactive controller for the terminal game.
// Responsibilities:
//   - Prompt for the player name and difficulty.
//   - Load a word, build a game, and loop render → guess → apply.
//   - Notify on a win; offer a replay after a loss.
//
// Notes:
//   - Invalid input is always re-prompted, never an error.
//   - A word source failure aborts the session.
//   - A notification failure is logged and otherwise ignored.
//   - Closed input ends the session normally.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/hangman/internal/difficulty"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/notify"
	"github.com/robalobadob/hangman/internal/prompt"
	"github.com/robalobadob/hangman/internal/render"
)

const separatorWidth = 25

// WordSource supplies the word for each new game.
type WordSource interface {
	Next() (string, error)
}

// Session drives games on one terminal until the player stops.
type Session struct {
	in       *prompt.Prompter
	out      io.Writer
	st       render.Styler
	words    WordSource
	notifier notify.Notifier
}

// New constructs a Session reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, st render.Styler, words WordSource, n notify.Notifier) *Session {
	if st == nil {
		st = render.Plain{}
	}
	if n == nil {
		n = notify.Disabled{}
	}
	return &Session{
		in:       prompt.New(in, out),
		out:      out,
		st:       st,
		words:    words,
		notifier: n,
	}
}

// Run plays games until the player declines a replay or input closes.
// The only errors returned are fatal ones, such as an unusable word list.
func (s *Session) Run(ctx context.Context) error {
	for {
		again, err := s.play(ctx)
		if errors.Is(err, prompt.ErrClosed) {
			log.Debug().Msg("input closed; ending session")
			again, err = false, nil
		}
		if err != nil {
			return err
		}
		if !again {
			s.printf("\nHave a nice day :)\n")
			return nil
		}
	}
}

// play runs one game from the name prompt to the terminal state and
// reports whether the player asked for another one.
func (s *Session) play(ctx context.Context) (bool, error) {
	name, err := prompt.Until(s.in, "Enter your name: ", ParseName)
	if err != nil {
		return false, err
	}
	s.printf("Welcome to Hangman, %s!\n", name)
	s.printf("%s", render.Rules(s.st))

	tier, err := prompt.Until(s.in, render.Menu(s.st), difficulty.Parse)
	if err != nil {
		return false, err
	}

	s.printf("\nLoading ...\n")
	word, err := s.words.Next()
	s.printf("\n")
	if err != nil {
		s.printf("%s\n", s.st.Style(render.ToneDanger, "Could not load the word list: "+err.Error()))
		return false, fmt.Errorf("load word: %w", err)
	}

	g, err := game.New(word, tier.Lives())
	if err != nil {
		return false, fmt.Errorf("new game: %w", err)
	}
	log.Debug().Str("game", g.ID()).Str("tier", string(tier)).Int("lives", g.Lives()).Msg("game started")

	for g.Outcome() == game.OutcomePlaying {
		s.printf("%s", render.Board(s.st, g))
		letter, err := prompt.Until(s.in, render.Marker(s.st), game.ParseGuess)
		if err != nil {
			return false, err
		}
		next, res, err := g.Guess(letter)
		if err != nil {
			return false, fmt.Errorf("apply guess: %w", err)
		}
		g = next
		log.Debug().Str("game", g.ID()).Str("letter", string(letter)).Str("result", string(res)).Msg("guess")
		s.printf("\n%s\n", render.Separator(s.st, '#', separatorWidth))
	}
	log.Info().Str("game", g.ID()).Str("outcome", string(g.Outcome())).Int("lives", g.Lives()).Msg("game over")

	if g.Outcome() == game.OutcomeWon {
		s.printf("%s\n", render.Masked(g))
		s.printf("%s\n", s.st.Style(render.ToneSuccess, "You won!"))
		if err := s.notifier.Send(ctx, name, true); err != nil {
			log.Warn().Err(err).Str("player", name).Msg("win notification failed")
		}
		return false, nil
	}

	s.printf("%s\n\n", s.st.Style(render.ToneDanger, "You lost!"))
	s.printf("The word you were looking for was: [%s]\n\n", g.Word())
	answer, err := s.in.Line(s.st.Style(render.ToneDanger, "Would you like to play again? (y/n): "))
	if err != nil {
		return false, err
	}
	if !isYes(answer) {
		return false, nil
	}
	s.printf("Good choice, %s!  Best of luck this time.\n", name)
	return true, nil
}

// ParseName trims a player name and upper-cases it for display.
// Blank names are rejected.
func ParseName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return cases.Upper(language.Und).String(s), true
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
