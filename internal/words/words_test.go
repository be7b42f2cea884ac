package words

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/hangman/internal/game"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestNormalize(t *testing.T) {
	in := []string{" Hello ", "hello", "a", "it's", "café", "WORLD", "", "ox"}
	want := []string{"hello", "world", "ox"}
	if diff := cmp.Diff(want, Normalize(in)); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault(t *testing.T) {
	wl, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, d := range []game.Difficulty{game.Easy, game.Medium, game.Hard} {
		tier := wl.Tier(d)
		if len(tier) == 0 {
			t.Errorf("%s tier is empty", d)
		}
		if got := Normalize(tier); !slices.Equal(got, tier) {
			t.Errorf("%s tier is not normalized", d)
		}
	}
}

func TestDefaultTiersMatchClassifier(t *testing.T) {
	wl, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	all := slices.Concat(wl.Easy, wl.Medium, wl.Hard)
	if diff := cmp.Diff(wl, Classify(all)); diff != "" {
		t.Errorf("embedded tiers differ from Classify (-embedded +classified):\n%s", diff)
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want, _ := Default()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "list.json", `{"easy":["Bye"],"medium":["Difficult","difficult"],"hard":["Zyuganov","x1"]}`)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := game.WordList{Easy: []string{"bye"}, Medium: []string{"difficult"}, Hard: []string{"zyuganov"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "list.txt", "# animals\nat\ntea\n\nCat\ndog\npenguin\nOX\njazz\n")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := game.WordList{
		Medium: []string{"at", "tea", "cat", "dog", "penguin"},
		Hard:   []string{"ox", "jazz"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want ErrNotExist", err)
		}
	})
	t.Run("bad json", func(t *testing.T) {
		if _, err := Load(writeFile(t, "bad.json", `{"easy":`)); err == nil {
			t.Error("expected decode error")
		}
	})
	t.Run("no usable words", func(t *testing.T) {
		_, err := Load(writeFile(t, "empty.txt", "# nothing\n1234\n"))
		if !errors.Is(err, game.ErrInvalidConfiguration) {
			t.Errorf("err = %v, want ErrInvalidConfiguration", err)
		}
	})
}

func TestScore(t *testing.T) {
	if Score("ox") <= Score("tea") {
		t.Errorf("Score(ox) = %f should exceed Score(tea) = %f", Score("ox"), Score("tea"))
	}
	if Score("") != 0 {
		t.Errorf("Score(\"\") = %f, want 0", Score(""))
	}
}

func TestBoundaries(t *testing.T) {
	lo, hi := Boundaries([]float64{1, 2, 3, 4})
	// median 2.5, population stddev sqrt(1.25)
	if lo >= 2.5 || hi <= 2.5 || math.Abs(lo+hi-5) > 1e-9 {
		t.Errorf("Boundaries = (%f, %f), want symmetric around 2.5", lo, hi)
	}
}

func TestClassifyEmpty(t *testing.T) {
	if diff := cmp.Diff(game.WordList{}, Classify(nil)); diff != "" {
		t.Errorf("Classify(nil) mismatch:\n%s", diff)
	}
}
