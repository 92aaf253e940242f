package opday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowBeforeBoundary(t *testing.T) {
	// 04:59:59.999 UTC still belongs to the previous operational day.
	now := time.Date(2026, 3, 10, 4, 59, 59, 999_000_000, time.UTC)

	start, end := Window(now)

	assert.Equal(t, time.Date(2026, 3, 9, 5, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC), end)
}

func TestWindowAtBoundary(t *testing.T) {
	// Exactly 05:00 UTC opens a new operational day.
	now := time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC)

	start, end := Window(now)

	assert.Equal(t, time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 11, 5, 0, 0, 0, time.UTC), end)
}

func TestWindowContainsNow(t *testing.T) {
	for _, hour := range []int{0, 4, 5, 6, 12, 23} {
		now := time.Date(2026, 7, 1, hour, 30, 0, 0, time.UTC)
		start, end := Window(now)

		assert.False(t, now.Before(start), "hour %d", hour)
		assert.True(t, now.Before(end), "hour %d", hour)
		assert.Equal(t, 24*time.Hour, end.Sub(start))
	}
}

func TestWindowNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("GMT-3", -3*3600)
	// 23:30 GMT-3 = 02:30 UTC next day → previous 05:00 UTC anchor
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, loc)

	start, _ := Window(now)

	assert.Equal(t, time.Date(2026, 3, 9, 5, 0, 0, 0, time.UTC), start)
}
