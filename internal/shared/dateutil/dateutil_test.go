package dateutil_test

import (
	"testing"
	"time"

	"go-hrm/internal/shared/dateutil"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	t.Run("accepts strict calendar day", func(t *testing.T) {
		day, err := dateutil.ParseDay("2025-06-10")

		assert.NoError(t, err)
		assert.Equal(t, 2025, day.Year())
		assert.Equal(t, time.June, day.Month())
		assert.Equal(t, 10, day.Day())
		assert.Equal(t, 0, day.Hour())
		assert.Equal(t, dateutil.Location(), day.Location())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, bad := range []string{
			"10-06-2025",
			"2025/06/10",
			"June 10, 2025",
			"2025-6-1",
			"2025-06-10T00:00:00Z",
			"",
		} {
			_, err := dateutil.ParseDay(bad)
			assert.Error(t, err, bad)
		}
	})
}

func TestNormalize(t *testing.T) {
	afternoon := time.Date(2025, 6, 10, 15, 42, 7, 0, dateutil.Location())

	day := dateutil.Normalize(afternoon)

	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, 0, day.Minute())
	assert.Equal(t, 10, day.Day())

	// Normalizing twice is stable.
	assert.Equal(t, day, dateutil.Normalize(day))
}

func TestTomorrowAfterToday(t *testing.T) {
	assert.True(t, dateutil.Tomorrow().After(dateutil.Today()))
	assert.Equal(t, 24*time.Hour, dateutil.Tomorrow().Sub(dateutil.Today()))
}
