// internal/session/session.go
//
// The game loop: starts games from a Configurations value, feeds the
// player's guesses to the engine, renders every state and records results.
//
// Flow per game:
//   - game.NewState picks the word (an invalid configuration ends Play).
//   - Render, then prompt → Update → render until the game is over.
//   - Duplicate guesses print an info notice and do not re-render.
//   - The result is recorded, then the player is asked to play again.
//
// End of input or a cancelled context (Ctrl-C) stops Play without error;
// an unfinished game is recorded as abandoned.

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
)

// Prompts is the input side of a session.
type Prompts interface {
	Guess(ctx context.Context, s *game.State) (game.Guess, error)
	PlayAgain(ctx context.Context) (bool, error)
}

// Runner plays consecutive games with one configuration.
type Runner struct {
	Config  game.Configurations
	Chooser game.Chooser // nil uses the engine's default generator
	Prompts Prompts
	Out     *console.Printer
	Store   store.Store
	Log     zerolog.Logger
}

// Play runs games until the player declines another one or input stops.
func (r *Runner) Play(ctx context.Context) error {
	for {
		s, err := game.NewState(r.Config, r.Chooser)
		if err != nil {
			return err
		}
		log := r.Log.With().Str("game", s.ID).Logger()
		log.Info().
			Str("difficulty", string(r.Config.Difficulty)).
			Int("lives", s.CurrentLives).
			Int("length", len(s.TargetWord)).
			Msg("game started")

		err = r.playOne(ctx, s, log)
		if recErr := r.Store.Record(ctx, store.ResultFromState(s, r.Config.Difficulty)); recErr != nil {
			log.Warn().Err(recErr).Msg("record result")
		}
		if err == nil {
			var again bool
			if again, err = r.Prompts.PlayAgain(ctx); err == nil && !again {
				return nil
			}
		}
		if err != nil {
			if interrupted(err) {
				log.Debug().Err(err).Msg("session interrupted")
				r.Out.Print("\n")
				return nil
			}
			return err
		}
	}
}

// Goodbye prints the farewell and the session's scoreboard.
func (r *Runner) Goodbye(ctx context.Context) error {
	sum, err := r.Store.Summary(ctx)
	if err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	if sum.Played > 0 {
		r.Out.Printf("Games: %d, won: %d, best streak: %d\n", sum.Played, sum.Wins, sum.BestStreak)
	}
	r.Out.Print("Thank you for playing :)\n")
	return nil
}

func (r *Runner) playOne(ctx context.Context, s *game.State, log zerolog.Logger) error {
	if err := console.Render(r.Out.Writer(), s); err != nil {
		return err
	}
	for s.IsRunning {
		g, err := r.Prompts.Guess(ctx, s)
		if err != nil {
			return err
		}
		outcome := s.Update(g)
		log.Debug().
			Str("guess", g.Guess).
			Bool("wholeWord", g.WholeWord).
			Str("outcome", string(outcome)).
			Int("lives", s.CurrentLives).
			Msg("guess")
		if outcome == game.OutcomeDuplicate {
			r.Out.Info(fmt.Sprintf("you have already guessed %q", g.Guess))
			continue
		}
		if err := console.Render(r.Out.Writer(), s); err != nil {
			return err
		}
	}
	log.Info().Str("status", s.Status()).Int("guesses", len(s.Guesses)).Msg("game finished")
	return nil
}

func interrupted(err error) bool {
	return errors.Is(err, console.ErrAborted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
