// Package config builds the session settings from the environment and the
// command line. Environment variables (optionally loaded from .env by main)
// provide defaults; flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
)

// Env mirrors the supported environment variables.
type Env struct {
	Lives      int    `env:"HANGMAN_LIVES" envDefault:"10"`
	MinLength  int    `env:"HANGMAN_MIN_LENGTH" envDefault:"2"`
	MaxLength  int    `env:"HANGMAN_MAX_LENGTH" envDefault:"10"`
	Difficulty string `env:"HANGMAN_DIFFICULTY" envDefault:"medium"`
	WordList   string `env:"HANGMAN_WORDLIST"`
	Daily      bool   `env:"HANGMAN_DAILY" envDefault:"false"`
	DailySalt  string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
}

// Options is the validated result of Load.
type Options struct {
	Lives        int
	MinLength    int
	MaxLength    int
	Difficulty   game.Difficulty
	WordListPath string
	Daily        bool
	DailySalt    string
	LogLevel     zerolog.Level
}

// Load reads the process environment and then args.
func Load(args []string, output io.Writer) (*Options, error) {
	return Parse(args, nil, output)
}

// Parse is Load with an explicit environment; a nil environ means the process
// environment. Usage and flag errors are written to output.
// Invalid values fail with game.ErrInvalidConfiguration; -h returns flag.ErrHelp.
func Parse(args []string, environ map[string]string, output io.Writer) (*Options, error) {
	e, err := env.ParseAsWithOptions[Env](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	var (
		o          Options
		difficulty string
		logLevel   string
	)
	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)
	fs.SetOutput(output)
	for _, name := range []string{"m", "minimum-length"} {
		fs.IntVar(&o.MinLength, name, e.MinLength, "minimum length of the word to be guessed")
	}
	for _, name := range []string{"M", "maximum-length"} {
		fs.IntVar(&o.MaxLength, name, e.MaxLength, "maximum length of the word to be guessed")
	}
	for _, name := range []string{"l", "lives"} {
		fs.IntVar(&o.Lives, name, e.Lives, "number of lives for each game")
	}
	for _, name := range []string{"d", "difficulty"} {
		fs.StringVar(&difficulty, name, e.Difficulty, "word difficulty: easy, medium or hard")
	}
	for _, name := range []string{"w", "wordlist"} {
		fs.StringVar(&o.WordListPath, name, e.WordList, "word list file (.json tiers or one word per line)")
	}
	fs.BoolVar(&o.Daily, "daily", e.Daily, "play the word of the day")
	fs.StringVar(&o.DailySalt, "daily-salt", e.DailySalt, "salt for the word of the day")
	fs.StringVar(&logLevel, "log-level", e.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", game.ErrInvalidConfiguration, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", game.ErrInvalidConfiguration, fs.Arg(0))
	}

	if o.Difficulty, err = game.ParseDifficulty(difficulty); err != nil {
		return nil, err
	}
	if o.LogLevel, err = zerolog.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("%w: log level: %v", game.ErrInvalidConfiguration, err)
	}
	if err := o.Configurations(game.WordList{}).Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Configurations combines the options with a loaded word list.
func (o *Options) Configurations(wl game.WordList) game.Configurations {
	return game.Configurations{
		Lives:      o.Lives,
		MinLength:  o.MinLength,
		MaxLength:  o.MaxLength,
		Difficulty: o.Difficulty,
		WordList:   wl,
	}
}
