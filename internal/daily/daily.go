// Package daily derives a word of the day from the date, so every player
// running the same configuration on the same day guesses the same word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Chooser picks the daily index among n candidates. It satisfies game.Chooser.
type Chooser struct {
	Date time.Time
	Salt string
}

// IntN implements game.Chooser.
func (c Chooser) IntN(n int) int {
	return WordIndex(c.Date, c.Salt, n)
}
