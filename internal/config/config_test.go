package config

import (
	"errors"
	"flag"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
)

func parse(t *testing.T, args []string, environ map[string]string) (*Options, error) {
	t.Helper()
	if environ == nil {
		environ = map[string]string{}
	}
	return Parse(args, environ, io.Discard)
}

func TestParseDefaults(t *testing.T) {
	got, err := parse(t, nil, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &Options{
		Lives:      game.MaxLives,
		MinLength:  game.MinLength,
		MaxLength:  game.DefaultMaxLength,
		Difficulty: game.Medium,
		DailySalt:  "local_dev_salt",
		LogLevel:   zerolog.WarnLevel,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		min, max int
	}{
		{"short min", []string{"-m", "4"}, 4, 10},
		{"short max", []string{"-M", "7"}, 2, 7},
		{"long min", []string{"--minimum-length", "4"}, 4, 10},
		{"long max", []string{"--maximum-length", "7"}, 2, 7},
		{"both", []string{"-m", "4", "-M", "7"}, 4, 7},
		{"both reversed", []string{"-M", "500", "-m", "2"}, 2, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(t, tt.args, nil)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got.MinLength != tt.min || got.MaxLength != tt.max {
				t.Errorf("bounds = [%d, %d], want [%d, %d]", got.MinLength, got.MaxLength, tt.min, tt.max)
			}
		})
	}
}

func TestParseLives(t *testing.T) {
	for i := -1; i <= 11; i++ {
		got, err := parse(t, []string{"-l", strconv.Itoa(i)}, nil)
		switch {
		case i > game.MaxLives:
			wantErr(t, err, "that many lives make the game too easy")
		case i < 1:
			wantErr(t, err, "having less than 1 live is not advised")
		case err != nil:
			t.Errorf("lives %d: %v", i, err)
		case got.Lives != i:
			t.Errorf("lives = %d, want %d", got.Lives, i)
		}
	}
	got, err := parse(t, []string{"--lives", "5"}, nil)
	if err != nil || got.Lives != 5 {
		t.Errorf("--lives 5 = %v, %v", got, err)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []game.Difficulty{game.Easy, game.Medium, game.Hard} {
		got, err := parse(t, []string{"-d", string(d)}, nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got.Difficulty != d {
			t.Errorf("difficulty = %q, want %q", got.Difficulty, d)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"min above max", []string{"-m", "6", "-M", "4"}, "minimum length value higher than maximum length value"},
		{"min too low", []string{"-m", "0", "-M", "4"}, "minimum length value too low"},
		{"missing value", []string{"-m"}, "flag needs an argument"},
		{"bad difficulty", []string{"-d", "not_valid"}, "unknown difficulty"},
		{"missing difficulty", []string{"-d"}, "flag needs an argument"},
		{"not a number", []string{"-l", "many"}, "invalid value"},
		{"positional", []string{"penguin"}, "unexpected argument"},
		{"bad log level", []string{"--log-level", "loud"}, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args, nil)
			wantErr(t, err, tt.msg)
		})
	}
}

func TestParseHelp(t *testing.T) {
	var out strings.Builder
	_, err := Parse([]string{"-h"}, map[string]string{}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(out.String(), "minimum-length") {
		t.Errorf("usage output missing flags:\n%s", out.String())
	}
}

func TestParseEnvironment(t *testing.T) {
	environ := map[string]string{
		"HANGMAN_LIVES":      "3",
		"HANGMAN_MIN_LENGTH": "4",
		"HANGMAN_MAX_LENGTH": "6",
		"HANGMAN_DIFFICULTY": "hard",
		"HANGMAN_WORDLIST":   "words.json",
		"HANGMAN_DAILY":      "true",
		"DAILY_SALT":         "pepper",
		"LOG_LEVEL":          "debug",
	}
	got, err := parse(t, nil, environ)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &Options{
		Lives:        3,
		MinLength:    4,
		MaxLength:    6,
		Difficulty:   game.Hard,
		WordListPath: "words.json",
		Daily:        true,
		DailySalt:    "pepper",
		LogLevel:     zerolog.DebugLevel,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}

	// flags win over the environment
	got, err = parse(t, []string{"-l", "8", "-d", "easy"}, environ)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Lives != 8 || got.Difficulty != game.Easy {
		t.Errorf("lives %d difficulty %q, want 8 easy", got.Lives, got.Difficulty)
	}
}

func TestParseBadEnvironment(t *testing.T) {
	if _, err := parse(t, nil, map[string]string{"HANGMAN_LIVES": "lots"}); err == nil {
		t.Error("expected error for non-numeric HANGMAN_LIVES")
	}
}

func TestConfigurations(t *testing.T) {
	o, err := parse(t, []string{"-l", "4", "-d", "easy"}, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	wl := game.WordList{Easy: []string{"bye"}}
	want := game.Configurations{Lives: 4, MinLength: 2, MaxLength: 10, Difficulty: game.Easy, WordList: wl}
	if diff := cmp.Diff(want, o.Configurations(wl)); diff != "" {
		t.Errorf("Configurations mismatch (-want +got):\n%s", diff)
	}
}

func wantErr(t *testing.T, err error, msg string) {
	t.Helper()
	if !errors.Is(err, game.ErrInvalidConfiguration) {
		t.Errorf("err = %v, want ErrInvalidConfiguration", err)
		return
	}
	if !strings.Contains(err.Error(), msg) {
		t.Errorf("err = %q, want it to contain %q", err, msg)
	}
}
