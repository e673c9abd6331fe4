package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

var ErrInvalidDate = errors.New("invalid date")

// ParseDate reads a calendar date given as YYYY-MM-DD or as an RFC 3339
// instant. Instants are read in loc. The result is midnight UTC of that day,
// which is how date columns come back from the store.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if d, err := time.Parse(time.DateOnly, value); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, want YYYY-MM-DD", ErrInvalidDate, value)
	}
	return Day(t, loc), nil
}

// Day returns midnight UTC of the calendar day t falls on in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.With(t.In(loc)).BeginningOfDay().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is Day for the current time.
func Today(loc *time.Location) time.Time {
	return Day(time.Now(), loc)
}
