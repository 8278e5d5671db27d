package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 02:00 on the 5th at UTC+10 is still the 4th in UTC.
	require.Equal(t, "2026-03-04", DateKey(time.Date(2026, 3, 5, 2, 0, 0, 0, loc)))

	d, err := ParseDateKey("2026-03-04")
	require.NoError(t, err)
	require.Equal(t, "2026-03-04", DateKey(d))

	_, err = ParseDateKey("04/03/2026")
	require.Error(t, err)
}

func TestBoardDeterministic(t *testing.T) {
	day := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)

	a := Board(day, "salt", 4)
	require.Len(t, a, 16)
	require.Equal(t, a, Board(later, "salt", 4), "same day, same board")
}

func TestSeedVariesByDateAndSalt(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	a1, a2 := Seed(day, "salt")
	b1, b2 := Seed(day.AddDate(0, 0, 1), "salt")
	c1, c2 := Seed(day, "pepper")

	require.False(t, a1 == b1 && a2 == b2)
	require.False(t, a1 == c1 && a2 == c2)
}
