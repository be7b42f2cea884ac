package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrAborted is returned by the prompts when input ends (EOF).
var ErrAborted = errors.New("input closed")

// Guess validation failures, shown to the player before re-prompting.
var (
	ErrEmptyGuess  = errors.New("you must guess a character or the entire word")
	ErrNotALetter  = errors.New("the character must be a valid ASCII (65-90 or 97-122)")
	ErrNotAWord    = errors.New("the word must only contain ASCII letters")
	ErrWrongLength = errors.New("the word to be guessed has a different length")
	ErrNotYesOrNo  = errors.New("you must answer yes (y) or no (n)")
)

const (
	guessPrompt     = "Please enter your guess: "
	playAgainPrompt = "Do you want to start a new game? [y/n] "
)

// ParseGuess turns raw input into a Guess for a game whose word is target.
// One letter is a letter guess; input as long as target is a whole-word guess.
func ParseGuess(input, target string) (game.Guess, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	switch n := utf8.RuneCountInString(input); {
	case n == 0:
		return game.Guess{}, ErrEmptyGuess
	case n == 1:
		if !isASCIILetter(input) {
			return game.Guess{}, ErrNotALetter
		}
		return game.NewGuess(input, false), nil
	case n == utf8.RuneCountInString(target):
		if !isASCIILetter(input) {
			return game.Guess{}, ErrNotAWord
		}
		return game.NewGuess(input, true), nil
	}
	return game.Guess{}, ErrWrongLength
}

func isASCIILetter(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// Prompter asks the player for guesses and yes/no answers, re-prompting
// until the answer is valid. Input is read on a background goroutine so a
// prompt can be abandoned when its context is cancelled.
type Prompter struct {
	out     *Printer
	lines   chan string
	readErr error // set before lines is closed
}

// NewPrompter starts reading lines from in.
func NewPrompter(in io.Reader, out *Printer) *Prompter {
	p := &Prompter{out: out, lines: make(chan string)}
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			p.lines <- sc.Text()
		}
		p.readErr = sc.Err()
		close(p.lines)
	}()
	return p
}

// Guess prompts until the player enters a valid guess for s.
func (p *Prompter) Guess(ctx context.Context, s *game.State) (game.Guess, error) {
	for {
		line, err := p.readLine(ctx, guessPrompt)
		if err != nil {
			return game.Guess{}, err
		}
		g, err := ParseGuess(line, s.TargetWord)
		if err != nil {
			p.out.Error(err.Error())
			continue
		}
		return g, nil
	}
}

// PlayAgain prompts until the player answers y or n.
func (p *Prompter) PlayAgain(ctx context.Context) (bool, error) {
	for {
		line, err := p.readLine(ctx, playAgainPrompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		p.out.Error(ErrNotYesOrNo.Error())
	}
}

func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	p.out.Print(prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.readErr != nil {
				return "", fmt.Errorf("read input: %w", p.readErr)
			}
			return "", ErrAborted
		}
		return line, nil
	}
}
