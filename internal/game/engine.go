// internal/game/engine.go
//
// Core game engine for a single hangman game.
// Responsibilities:
//   - Create new games from a word and a life budget.
//   - Validate and apply single-letter guesses.
//   - Derive the outcome: playing → won/lost.
//
// Notes:
//   - Game is a value; Guess returns the next game instead of mutating.
//   - Presentation lives in the render package; nothing here does I/O.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// New constructs a game for word with the given starting lives.
func New(word string, lives int) (Game, error) {
	if !isWord(word) {
		return Game{}, ErrInvalidWord
	}
	if lives <= 0 {
		return Game{}, ErrInvalidLives
	}
	return Game{
		id:    randomID(),
		word:  word,
		lives: lives,
	}, nil
}

// Guess applies a letter and returns the resulting game and evaluation.
// The receiver is left untouched.
//
// Validation rules:
//   - Game must not be finished.
//   - letter must be alphabetic; it is lowercased before comparison.
//
// State transitions:
//   - Already guessed → ResultDuplicate, no change.
//   - In the word → ResultHit.
//   - Otherwise → ResultMiss and one life less.
func (g Game) Guess(letter rune) (Game, Result, error) {
	if g.Outcome().Terminal() {
		return g, "", ErrFinished
	}
	letter = unicode.ToLower(letter)
	if !unicode.IsLetter(letter) {
		return g, "", ErrInvalidGuess
	}
	if g.Revealed(letter) {
		return g, ResultDuplicate, nil
	}

	next := g
	next.guessed = append(slices.Clip(g.guessed), letter)
	if !strings.ContainsRune(g.word, letter) {
		next.lives--
		return next, ResultMiss, nil
	}
	return next, ResultHit, nil
}

// Outcome reports the current state. A win is checked before a loss.
func (g Game) Outcome() Outcome {
	if g.word == "" {
		return OutcomePlaying
	}
	if g.solved() {
		return OutcomeWon
	}
	if g.lives <= 0 {
		return OutcomeLost
	}
	return OutcomePlaying
}

// ID returns the game's random identifier.
func (g Game) ID() string { return g.id }

// Word returns the solution word.
func (g Game) Word() string { return g.word }

// Lives returns the remaining lives.
func (g Game) Lives() int { return g.lives }

// Guessed returns a copy of the guessed letters in play order.
func (g Game) Guessed() []rune { return slices.Clone(g.guessed) }

// Revealed reports whether letter has been guessed.
func (g Game) Revealed(letter rune) bool {
	return slices.Contains(g.guessed, unicode.ToLower(letter))
}

// ParseGuess reduces a line of input to a single lowercase letter.
// Surrounding whitespace is ignored; anything else must be exactly one letter.
func ParseGuess(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return unicode.ToLower(r), true
}

// solved reports whether every letter of the word has been guessed.
func (g Game) solved() bool {
	for _, r := range g.word {
		if !slices.Contains(g.guessed, r) {
			return false
		}
	}
	return true
}

// isWord checks that s is non-empty and consists only of lowercase letters.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) || unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
