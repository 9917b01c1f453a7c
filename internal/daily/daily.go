// Package daily derives a deterministic secret for a calendar day, so every
// player on the same range gets the same number until UTC midnight.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Pick returns a deterministic value in [min, max] using HMAC(salt, YYYY-MM-DD).
func Pick(date time.Time, salt string, min, max int) int {
	if max <= min {
		return min
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	// unsigned difference stays exact even when max-min overflows an int
	d := uint64(max) - uint64(min)
	if d == math.MaxUint64 {
		return int(n)
	}
	return int(uint64(min) + n%(d+1))
}

// Source implements game.Source for a fixed day.
type Source struct {
	Date time.Time
	Salt string
}

// Today returns a Source for the current UTC date.
func Today(salt string) Source {
	return Source{Date: time.Now().UTC(), Salt: salt}
}

// Between returns the day's value in [min, max].
func (s Source) Between(min, max int) int {
	return Pick(s.Date, s.Salt, min, max)
}
