package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"github.com/lshigami/examsched/internal/model"
)

var ErrUnknownPattern = errors.New("unknown class time pattern")

var patternWeekdays = map[model.ClassTimePattern][]time.Weekday{
	model.PatternMonToThu: {time.Monday, time.Tuesday, time.Wednesday, time.Thursday},
	model.PatternMonWed:   {time.Monday, time.Wednesday},
	model.PatternTueThu:   {time.Tuesday, time.Thursday},
	model.PatternSaturday: {time.Saturday},
}

// Weekdays returns the weekdays a class with the given pattern meets on.
func Weekdays(pattern model.ClassTimePattern) ([]time.Weekday, error) {
	days, ok := patternWeekdays[pattern]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
	}
	return append([]time.Weekday(nil), days...), nil
}

// Allows reports whether an exam for the pattern may fall on day.
func Allows(pattern model.ClassTimePattern, day time.Weekday) bool {
	for _, d := range patternWeekdays[pattern] {
		if d == day {
			return true
		}
	}
	return false
}

// RecoveryDate returns the first day strictly after current whose weekday
// belongs to pattern. Time of day is dropped; the result is midnight in
// current's location.
func RecoveryDate(current time.Time, pattern model.ClassTimePattern) (time.Time, error) {
	if _, ok := patternWeekdays[pattern]; !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
	}

	candidate := now.With(current).BeginningOfDay().AddDate(0, 0, 1)
	// every pattern has at least one weekday, so a week always suffices
	for i := 0; i < 7; i++ {
		if Allows(pattern, candidate.Weekday()) {
			return candidate, nil
		}
		candidate = candidate.AddDate(0, 0, 1)
	}
	return time.Time{}, fmt.Errorf("%w: %q has no weekdays", ErrUnknownPattern, pattern)
}
