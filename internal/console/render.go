package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrLivesInconsistent means a state's lives do not map to a gallows frame.
var ErrLivesInconsistent = errors.New("lives is inconsistent with animations")

// Gallows holds one frame per lost life, from game.MaxLives lives left
// (index 0) down to none (index game.MaxLives).
var Gallows = [game.MaxLives + 1]string{
	`

 
 
 
 
=========`,
	`
      
      |
      |
      |
      |
=========`,
	`
  +---+
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
=========`,
	`
  +---+
  |   |
  X   |
 /|\  |
 / \  |
=========`,
}

// Masked returns the target with unguessed letters as "_", space separated.
func Masked(s *game.State) string {
	parts := make([]string, 0, len(s.TargetWord))
	for _, c := range s.TargetWord {
		if s.Revealed(c) {
			parts = append(parts, string(c))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// Render writes the word progress, the last guess and the gallows for s.
// A finished game shows a banner and the whole word instead of the progress.
func Render(w io.Writer, s *game.State) error {
	frame := game.MaxLives - s.CurrentLives
	if frame < 0 || frame >= len(Gallows) {
		return fmt.Errorf("%w: %d lives", ErrLivesInconsistent, s.CurrentLives)
	}

	var b strings.Builder
	if !s.IsRunning {
		if s.IsVictory {
			b.WriteString("\nCongratulations, you have guessed the word! 🥳\n\n")
		} else {
			b.WriteString("\nSorry, you have lost! 😢\n\n")
		}
		fmt.Fprintf(&b, "Word: %s\n", strings.Join(strings.Split(s.TargetWord, ""), " "))
	} else {
		fmt.Fprintf(&b, "Word: %s\n", Masked(s))
	}
	if s.CurrentGuess != nil {
		fmt.Fprintf(&b, "Guess: %s\n", s.CurrentGuess.Guess)
	}
	b.WriteString(Gallows[frame])
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
