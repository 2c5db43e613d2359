// internal/daily/daily.go
//
// Calendar math for the daily puzzle.
// Day 0 is 2021-06-19 (UTC); every UTC midnight advances the ordinal by one,
// so the ordinal doubles as an index into the answers list.

package daily

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lukechampine.com/frand"
)

// Epoch is the date of day 0.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// ErrInvalidDay is returned for day arguments that cannot be resolved.
var ErrInvalidDay = errors.New("daily: invalid day")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Ordinal returns the day number of t. Dates before Epoch are negative.
func Ordinal(t time.Time) int {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return int(midnight.Sub(Epoch) / (24 * time.Hour))
}

// DateOf returns the UTC date of day.
func DateOf(day int) time.Time {
	return Epoch.AddDate(0, 0, day)
}

// Selection is a resolved day argument.
type Selection struct {
	Day int
	All bool // every day in the answers list
}

// ParseDay resolves a day argument: a non-negative integer, "all", "today"
// (relative to now) or "random" (uniform over the n known answers).
func ParseDay(s string, now time.Time, n int) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return Selection{All: true}, nil
	case "today":
		day := Ordinal(now)
		if day < 0 {
			return Selection{}, fmt.Errorf("%w: %s is before %s", ErrInvalidDay, DateKey(now), DateKey(Epoch))
		}
		return Selection{Day: day}, nil
	case "random":
		if n <= 0 {
			return Selection{}, fmt.Errorf("%w: random needs at least one answer", ErrInvalidDay)
		}
		return Selection{Day: frand.Intn(n)}, nil
	}
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	if day < 0 {
		return Selection{}, fmt.Errorf("%w: %d is negative", ErrInvalidDay, day)
	}
	return Selection{Day: day}, nil
}
