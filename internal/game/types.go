// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Result: per-guess evaluation (hit/miss/duplicate).
//   - Outcome: derived game state (playing/won/lost).
//   - Game: immutable state for a single game.

package game

import "errors"

// Result represents the evaluation of a single guessed letter.
// Possible values:
//   - "hit":       letter occurs in the word.
//   - "miss":      letter does not occur in the word; one life is lost.
//   - "duplicate": letter was already guessed; nothing changes.
type Result string

const (
	ResultHit       Result = "hit"
	ResultMiss      Result = "miss"
	ResultDuplicate Result = "duplicate"
)

// Outcome is the coarse state of a game. It is always derived from the
// word, the guessed letters and the remaining lives, never stored.
type Outcome string

const (
	OutcomePlaying Outcome = "playing"
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool { return o == OutcomeWon || o == OutcomeLost }

var (
	ErrInvalidWord  = errors.New("game: word must be non-empty lowercase letters")
	ErrInvalidLives = errors.New("game: lives must be positive")
	ErrInvalidGuess = errors.New("game: guess must be a single letter")
	ErrFinished     = errors.New("game: game finished")
)

// Game holds the state of a single hangman game.
// Values are never mutated in place; Guess returns the next state.
type Game struct {
	id      string // Random hex identifier used to correlate log lines.
	word    string // The solution word (always lowercase).
	guessed []rune // Guessed letters in the order they were played.
	lives   int    // Remaining lives, never below zero.
}
