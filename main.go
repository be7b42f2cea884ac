package main

import (
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     colorable.NewColorableStderr(),
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})

	opts, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		console.NewPrinter(os.Stderr, isatty.IsTerminal(os.Stderr.Fd())).Error(err.Error())
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(opts.LogLevel)

	wl, err := words.Load(opts.WordListPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.WordListPath).Msg("failed to load word list")
	}
	easy, medium, hard := words.Stats(wl)
	log.Info().Int("easy", easy).Int("medium", medium).Int("hard", hard).Msg("word list loaded")

	var chooser game.Chooser = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	if opts.Daily {
		chooser = daily.Chooser{Date: time.Now(), Salt: opts.DailySalt}
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("daily word mode")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := console.Stdout()
	runner := &session.Runner{
		Config:  opts.Configurations(wl),
		Chooser: chooser,
		Prompts: console.NewPrompter(os.Stdin, out),
		Out:     out,
		Store:   store.NewMemoryStore(),
		Log:     log.Logger,
	}
	if err := runner.Play(ctx); err != nil {
		if errors.Is(err, game.ErrInvalidConfiguration) {
			out.Error(err.Error())
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("game exited")
	}
	// ctx may already be cancelled by Ctrl-C
	if err := runner.Goodbye(context.Background()); err != nil {
		log.Error().Err(err).Msg("goodbye")
	}
}
