// internal/words/words.go
//
// Provides tiered word list management for the game engine.
//
// Responsibilities:
//   - Load easy/medium/hard word pools from a user-provided file or fall back
//     to the embedded defaults in the assets package.
//   - Normalize every list the same way so the engine's case policy holds.
//   - Report per-tier counts for logging.
//
// File formats (Load):
//   1. "*.json": {"easy": [...], "medium": [...], "hard": [...]}.
//   2. Anything else: one word per line, split into tiers by Classify.
//   3. Empty path: embedded defaults.
//
// Constraints:
//   • Words must be at least 2 alphabetic ASCII letters (a–z).
//   • Lists are normalized to lowercase and de-duplicated, order preserved.
//   • Embedded defaults are parsed once (sync.Once).

package words

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/game"
)

var (
	defaultOnce sync.Once
	defaultList game.WordList
	defaultErr  error
)

// Default returns the embedded word list.
func Default() (game.WordList, error) {
	defaultOnce.Do(func() {
		var wl game.WordList
		for _, tier := range []struct {
			dst  *[]string
			load func() ([]string, error)
		}{
			{&wl.Easy, assets.EasyList},
			{&wl.Medium, assets.MediumList},
			{&wl.Hard, assets.HardList},
		} {
			list, err := tier.load()
			if err != nil {
				defaultErr = fmt.Errorf("words: read embedded list: %w", err)
				return
			}
			*tier.dst = Normalize(list)
		}
		defaultList, defaultErr = wl, checkNotEmpty(wl)
	})
	return defaultList, defaultErr
}

// Load reads a word list from path, or returns Default when path is empty.
func Load(path string) (game.WordList, error) {
	if path == "" {
		return Default()
	}
	var (
		wl  game.WordList
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		wl, err = readJSONFile(path)
	} else {
		var list []string
		list, err = readWordFile(path)
		wl = Classify(list)
	}
	if err != nil {
		return game.WordList{}, fmt.Errorf("words: load %s: %w", path, err)
	}
	return wl, checkNotEmpty(wl)
}

// readJSONFile decodes a tiered list and normalizes each tier.
func readJSONFile(path string) (game.WordList, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return game.WordList{}, err
	}
	var wl game.WordList
	if err := json.Unmarshal(b, &wl); err != nil {
		return game.WordList{}, fmt.Errorf("decode json: %w", err)
	}
	return game.WordList{
		Easy:   Normalize(wl.Easy),
		Medium: Normalize(wl.Medium),
		Hard:   Normalize(wl.Hard),
	}, nil
}

// readWordFile loads one word per line from a file, skipping blank lines
// and # comments, and normalizes the result.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	return Normalize(raw), sc.Err()
}

// Normalize lowercases and trims words, drops anything that is not at least
// game.MinLength ASCII letters, and removes repeats.
func Normalize(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) < game.MinLength || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func checkNotEmpty(wl game.WordList) error {
	if e, m, h := Stats(wl); e+m+h == 0 {
		return fmt.Errorf("%w: word list is empty", game.ErrInvalidConfiguration)
	}
	return nil
}

// Stats returns the number of words in each tier.
func Stats(wl game.WordList) (easy, medium, hard int) {
	return len(wl.Easy), len(wl.Medium), len(wl.Hard)
}
