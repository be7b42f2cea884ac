// internal/game/types.go
//
// Core type definitions for the hangman engine.
// Defines:
//   - Difficulty: the word pool tier a game draws from.
//   - WordList:   three tiered word pools.
//   - Configurations: per-session game settings.
//   - Guess:      a single-character or whole-word guess.
//   - State:      the record of a single in-progress or finished game.
//   - Outcome:    what a call to State.Update did.

package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxLives is the upper bound for Configurations.Lives.
	MaxLives = 10
	// MinLength is the smallest allowed minimum word length.
	MinLength = 2
	// DefaultMaxLength is the maximum word length used when none is configured.
	DefaultMaxLength = 10
)

// ErrInvalidConfiguration is returned (wrapped) whenever settings cannot
// produce a playable game: bad bounds, bad lives, or no word in range.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Difficulty selects one of the three word pools.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps "easy", "medium" or "hard" (any case) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, medium or hard)", ErrInvalidConfiguration, s)
}

// WordList holds the candidate words of every tier.
// Lists are treated as read-only once built.
type WordList struct {
	Easy   []string `json:"easy"`
	Medium []string `json:"medium"`
	Hard   []string `json:"hard"`
}

// Tier returns the pool for d, or nil for an unknown difficulty.
func (w WordList) Tier(d Difficulty) []string {
	switch d {
	case Easy:
		return w.Easy
	case Medium:
		return w.Medium
	case Hard:
		return w.Hard
	}
	return nil
}

// Configurations describes one game session. It is built once from flags and
// environment and never mutated afterwards.
type Configurations struct {
	Lives      int
	MinLength  int
	MaxLength  int
	Difficulty Difficulty
	WordList   WordList
}

// DefaultConfigurations returns the settings used when nothing is overridden.
func DefaultConfigurations(wl WordList) Configurations {
	return Configurations{
		Lives:      MaxLives,
		MinLength:  MinLength,
		MaxLength:  DefaultMaxLength,
		Difficulty: Medium,
		WordList:   wl,
	}
}

// Validate checks the lives and length invariants.
// Whether any word satisfies the bounds is only known at PickWord time.
func (c Configurations) Validate() error {
	switch {
	case c.MinLength > c.MaxLength:
		return fmt.Errorf("%w: minimum length value higher than maximum length value", ErrInvalidConfiguration)
	case c.MinLength < MinLength:
		return fmt.Errorf("%w: minimum length value too low", ErrInvalidConfiguration)
	case c.Lives > MaxLives:
		return fmt.Errorf("%w: that many lives make the game too easy", ErrInvalidConfiguration)
	case c.Lives < 1:
		return fmt.Errorf("%w: having less than 1 live is not advised", ErrInvalidConfiguration)
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return err
	}
	return nil
}

// Guess is either a single character or a whole-word attempt.
// Guess values are comparable, so two guesses are equal iff text and flag match.
type Guess struct {
	Guess     string
	WholeWord bool
}

// NewGuess builds a lower-cased guess.
func NewGuess(text string, wholeWord bool) Guess {
	return Guess{Guess: strings.ToLower(text), WholeWord: wholeWord}
}

// State holds the state of a single hangman game.
type State struct {
	ID           string  // Random hex identifier, used to correlate logs and results.
	TargetWord   string  // The word to guess (always lowercase).
	MaxLives     int     // Lives the game started with; 0 skips the upper bound check.
	CurrentLives int     // Remaining lives, 0..MaxLives.
	Guesses      []Guess // Accepted guesses in submission order, no duplicates.
	CurrentGuess *Guess  // Most recently accepted guess; nil before the first one.
	IsRunning    bool    // True until the game is won or lost.
	IsVictory    bool    // Meaningful once IsRunning is false.
}

// Outcome reports what State.Update did with a guess.
type Outcome string

const (
	OutcomeDuplicate Outcome = "duplicate" // already guessed, nothing changed
	OutcomeHit       Outcome = "hit"       // letter present, game continues
	OutcomeMiss      Outcome = "miss"      // life spent, game continues
	OutcomeWon       Outcome = "won"
	OutcomeLost      Outcome = "lost"
)
