package words

import (
	"math"
	"slices"

	"github.com/robalobadob/hangman/internal/game"
)

// letterFrequency is the relative frequency of each letter in English
// dictionary words, indexed 'a'..'z'.
var letterFrequency = [26]float64{
	43.31, 10.56, 23.13, 17.25, 56.88, 9.24, 12.59, 15.31, 38.45, 1.00,
	5.61, 27.98, 15.36, 33.92, 36.51, 16.14, 1.00, 38.64, 29.23, 35.43,
	18.51, 5.13, 6.57, 1.48, 9.06, 1.39,
}

// Score rates how hard w is to guess: the sum of 1/frequency over its letters.
// Rare letters and long words score higher. w must be lowercase a–z.
func Score(w string) float64 {
	var s float64
	for _, r := range w {
		s += 1 / letterFrequency[r-'a']
	}
	return s
}

// Classify splits normalized words into tiers by Score. Words scoring below
// median-stddev/2 are easy, above median+stddev/2 hard, the rest medium.
// Input order is kept within each tier.
func Classify(list []string) game.WordList {
	if len(list) == 0 {
		return game.WordList{}
	}
	scores := make([]float64, len(list))
	for i, w := range list {
		scores[i] = Score(w)
	}
	easyEnds, hardStarts := Boundaries(scores)

	var wl game.WordList
	for i, w := range list {
		switch s := scores[i]; {
		case s < easyEnds:
			wl.Easy = append(wl.Easy, w)
		case s > hardStarts:
			wl.Hard = append(wl.Hard, w)
		default:
			wl.Medium = append(wl.Medium, w)
		}
	}
	return wl
}

// Boundaries returns the easy and hard cut-off scores for a score population.
func Boundaries(scores []float64) (easyEnds, hardStarts float64) {
	m, sd := median(scores), stddev(scores)
	return m - sd/2, m + sd/2
}

func median(xs []float64) float64 {
	s := slices.Clone(xs)
	slices.Sort(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// stddev is the population standard deviation.
func stddev(xs []float64) float64 {
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var v float64
	for _, x := range xs {
		v += (x - mean) * (x - mean)
	}
	return math.Sqrt(v / float64(len(xs)))
}
