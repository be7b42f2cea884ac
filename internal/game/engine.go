// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Pick a target word from a difficulty tier within length bounds.
//   - Create new games from a Configurations value.
//   - Apply guesses: duplicate detection, life accounting, win/loss.
//
// Notes:
//   - All comparisons are on lower-cased text; length bounds are inclusive.
//   - Randomness is injected through Chooser so tests can fix the pick.
//   - Calling Update on a finished game, or with lives outside
//     1..MaxLives, is a programming error and panics.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	randv2 "math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"
)

// Chooser picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Chooser interface {
	IntN(n int) int
}

type globalChooser struct{}

func (globalChooser) IntN(n int) int { return randv2.IntN(n) }

// PickWord returns a word of the requested tier whose length lies in
// [minLen, maxLen]. A nil rng uses the package-level generator.
// It fails with ErrInvalidConfiguration when no word qualifies.
func PickWord(minLen, maxLen int, d Difficulty, wl WordList, rng Chooser) (string, error) {
	if rng == nil {
		rng = globalChooser{}
	}
	candidates := Candidates(minLen, maxLen, d, wl)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no %s word has between %d and %d letters",
			ErrInvalidConfiguration, d, minLen, maxLen)
	}
	return candidates[rng.IntN(len(candidates))], nil
}

// Candidates lists the lower-cased words of tier d with length in [minLen, maxLen],
// preserving list order.
func Candidates(minLen, maxLen int, d Difficulty, wl WordList) []string {
	var out []string
	for _, w := range wl.Tier(d) {
		n := utf8.RuneCountInString(w)
		if n >= minLen && n <= maxLen {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}

// NewState validates cfg, picks a target word and returns a fresh running game.
func NewState(cfg Configurations, rng Chooser) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	word, err := PickWord(cfg.MinLength, cfg.MaxLength, cfg.Difficulty, cfg.WordList, rng)
	if err != nil {
		return nil, err
	}
	return &State{
		ID:           randomID(),
		TargetWord:   word,
		MaxLives:     cfg.Lives,
		CurrentLives: cfg.Lives,
		Guesses:      []Guess{},
		IsRunning:    true,
	}, nil
}

// Update applies g to the game and reports the outcome.
//
// Rules:
//   - A guess equal to an earlier one changes nothing (OutcomeDuplicate).
//   - A correct whole-word guess wins; a wrong one costs a life.
//   - A letter present in the target keeps lives and wins once every letter
//     of the target is covered; an absent letter costs a life.
//   - Reaching zero lives loses the game.
func (s *State) Update(g Guess) Outcome {
	if !s.IsRunning {
		panic("game: Update called on a finished game")
	}
	if s.CurrentLives <= 0 || (s.MaxLives > 0 && s.CurrentLives > s.MaxLives) {
		panic(fmt.Sprintf("game: lives %d outside 1..%d", s.CurrentLives, s.MaxLives))
	}

	g = NewGuess(g.Guess, g.WholeWord)
	if slices.Contains(s.Guesses, g) {
		return OutcomeDuplicate
	}
	s.Guesses = append(s.Guesses, g)
	current := g
	s.CurrentGuess = &current

	if g.WholeWord {
		if g.Guess == s.TargetWord {
			return s.finish(true)
		}
		return s.spendLife()
	}

	if !containsLetter(s.TargetWord, g.Guess) {
		return s.spendLife()
	}
	if s.IsWordFound() {
		return s.finish(true)
	}
	return OutcomeHit
}

// IsWordFound reports whether every letter of the target has been guessed.
// It is recomputed from the guess history on every call.
func (s *State) IsWordFound() bool {
	for _, c := range s.TargetWord {
		if !s.Revealed(c) {
			return false
		}
	}
	return true
}

// Revealed reports whether letter c of the target has been guessed.
func (s *State) Revealed(c rune) bool {
	letter := string(c)
	return slices.ContainsFunc(s.Guesses, func(g Guess) bool { return g.Guess == letter })
}

// Status reports a coarse string representation of the game.
func (s *State) Status() string {
	if !s.IsRunning {
		if s.IsVictory {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	c.Guesses = slices.Clone(s.Guesses)
	if s.CurrentGuess != nil {
		g := *s.CurrentGuess
		c.CurrentGuess = &g
	}
	return &c
}

// spendLife takes one life and ends the game when none are left.
func (s *State) spendLife() Outcome {
	s.CurrentLives--
	if s.CurrentLives == 0 {
		return s.finish(false)
	}
	return OutcomeMiss
}

func (s *State) finish(won bool) Outcome {
	s.IsRunning, s.IsVictory = false, won
	if won {
		return OutcomeWon
	}
	return OutcomeLost
}

// containsLetter reports whether the single-letter string letter occurs in word.
func containsLetter(word, letter string) bool {
	for _, c := range word {
		if string(c) == letter {
			return true
		}
	}
	return false
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
