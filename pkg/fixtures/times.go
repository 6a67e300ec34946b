package fixtures

import (
	"fmt"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

const timeLabelLayout = "15:04"

// Times expands a repeated schedule into its time labels. Labels are free-form unless
// repeat is used, in which case the first one must be HH:MM.
func (a *AddScheduleStep) Times() ([]string, error) {
	if a.Repeat <= 1 {
		return []string{a.Time}, nil
	}

	startTime, err := time.Parse(timeLabelLayout, a.Time)
	if err != nil {
		return nil, fmt.Errorf("repeated schedule time %q must be HH:MM: %w", a.Time, err)
	}

	intervalString := a.Interval
	if intervalString == "" {
		intervalString = "PT1M"
	}

	interval, err := iso8601.ParseISO8601(intervalString)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule interval %q: %w", a.Interval, err)
	}
	if interval.Shift(startTime).Equal(startTime) {
		return nil, fmt.Errorf("schedule interval %q must not be empty", a.Interval)
	}

	times := make([]string, 0, a.Repeat)
	current := startTime

	for i := 0; i < a.Repeat; i++ {
		times = append(times, current.Format(timeLabelLayout))
		current = interval.Shift(current)
	}

	return times, nil
}
