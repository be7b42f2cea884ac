// internal/store/memory.go
//
// In-memory scoreboard for the games played in one process.
//
// Characteristics:
//   - Results are appended in the order games finish.
//   - Summary applies the usual rules: a win extends the streak, a loss
//     or abandoned game resets it.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hangman/internal/game"
)

// Result is the record of one finished or abandoned game.
type Result struct {
	GameID     string
	Word       string
	Difficulty game.Difficulty
	Won        bool
	Abandoned  bool // the player quit before the game ended
	Guesses    int
	LivesLeft  int
}

// ResultFromState builds a Result from a game's final state.
func ResultFromState(s *game.State, d game.Difficulty) Result {
	return Result{
		GameID:     s.ID,
		Word:       s.TargetWord,
		Difficulty: d,
		Won:        !s.IsRunning && s.IsVictory,
		Abandoned:  s.IsRunning,
		Guesses:    len(s.Guesses),
		LivesLeft:  s.CurrentLives,
	}
}

// Summary aggregates all recorded results.
type Summary struct {
	Played     int
	Wins       int
	Streak     int
	BestStreak int
}

// Store defines the scoreboard interface.
type Store interface {
	// Record appends a game result.
	Record(ctx context.Context, r Result) error

	// Results returns a copy of every recorded result, oldest first.
	Results(ctx context.Context) ([]Result, error)

	// Summary returns counters over every recorded result.
	Summary(ctx context.Context) (Summary, error)
}

// memory is an in-memory slice-backed Store implementation.
type memory struct {
	mu      sync.RWMutex // guards results and summary
	results []Result
	summary Summary
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Record appends r and updates the counters.
func (m *memory) Record(ctx context.Context, r Result) error {
	if r.GameID == "" {
		return errors.New("store: result without game id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	m.summary.Played++
	if r.Won {
		m.summary.Wins++
		m.summary.Streak++
		m.summary.BestStreak = max(m.summary.BestStreak, m.summary.Streak)
	} else {
		m.summary.Streak = 0
	}
	return nil
}

// Results returns a copy of the recorded results.
func (m *memory) Results(ctx context.Context) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Result(nil), m.results...), nil
}

// Summary returns the current counters.
func (m *memory) Summary(ctx context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.summary, nil
}
