package stats

import (
	"fmt"
	"time"
)

// Period selects the time window a ranking is computed over. It is a closed
// enum: every caller must go through ParsePeriod, and an unknown value is an
// error rather than a silent fall-through to all-time data.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// DefaultPeriod is applied when a request omits the period parameter.
const DefaultPeriod = PeriodDay

// ParsePeriod validates a raw period token.
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(raw), nil
	}
	return "", fmt.Errorf("stats: invalid period %q, must be one of day, week, month", raw)
}

// Window returns the duration covered by the period.
func (p Period) Window() (time.Duration, error) {
	switch p {
	case PeriodDay:
		return 24 * time.Hour, nil
	case PeriodWeek:
		return 7 * 24 * time.Hour, nil
	case PeriodMonth:
		return 30 * 24 * time.Hour, nil
	}
	return 0, fmt.Errorf("stats: invalid period %q", p)
}

// Cutoff returns the start of the window ending at now. The caller evaluates
// now once per request so the whole computation shares a consistent window.
func (p Period) Cutoff(now time.Time) (time.Time, error) {
	window, err := p.Window()
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-window), nil
}
