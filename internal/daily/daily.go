// internal/daily/daily.go
//
// Board of the day. Every client asking for the same date gets the same
// board: the date key is hashed with a server-side salt and the digest
// seeds the board generator.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/mntnorv/wrdl/internal/grid"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDateKey parses a YYYY-MM-DD key as a UTC date.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", key, time.UTC)
}

// Seed derives the generator seed for a date from HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) (uint64, uint64) {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// Board returns the size×size board for date.
func Board(date time.Time, salt string, size int) []string {
	s1, s2 := Seed(date, salt)
	return grid.Generate(rand.New(rand.NewPCG(s1, s2)), size)
}
