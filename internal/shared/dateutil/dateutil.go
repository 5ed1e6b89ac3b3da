package dateutil

import (
	"os"
	"sync"
	"time"
)

// Semua perbandingan "hari ini"/"besok" memakai satu zona waktu referensi.
// Default mengikuti zona operasional HR (Asia/Kolkata); override via HRM_TIMEZONE.
const DefaultTimezone = "Asia/Kolkata"

const DayFormat = "2006-01-02"

var (
	locOnce sync.Once
	loc     *time.Location
)

func Location() *time.Location {
	locOnce.Do(func() {
		name := os.Getenv("HRM_TIMEZONE")
		if name == "" {
			name = DefaultTimezone
		}
		l, err := time.LoadLocation(name)
		if err != nil {
			l = time.FixedZone("IST", 5*3600+1800)
		}
		loc = l
	})
	return loc
}

// ParseDay parses a strict YYYY-MM-DD calendar day at midnight in the
// reference timezone.
func ParseDay(v string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, v, Location())
}

// Normalize truncates a timestamp to midnight in the reference timezone.
// The result is the uniqueness/lookup key for day-granular records.
func Normalize(t time.Time) time.Time {
	t = t.In(Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location())
}

func Today() time.Time {
	return Normalize(time.Now())
}

func Tomorrow() time.Time {
	return Today().AddDate(0, 0, 1)
}
