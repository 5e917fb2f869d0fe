package httpserver

import (
	"net/url"
	"testing"

	"github.com/happyrussia/mood-api/internal/stats"
)

func TestParsePeriodParam(t *testing.T) {
	valid := map[string]stats.Period{
		"":      stats.DefaultPeriod,
		"day":   stats.PeriodDay,
		"week":  stats.PeriodWeek,
		"month": stats.PeriodMonth,
	}
	for raw, want := range valid {
		query := url.Values{}
		if raw != "" {
			query.Set("period", raw)
		}
		got, err := parsePeriodParam(query)
		if err != nil {
			t.Errorf("parsePeriodParam(%q) error = %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("parsePeriodParam(%q) = %q, want %q", raw, got, want)
		}
	}

	// The match is exact: padding and case variants are client errors.
	for _, raw := range []string{"  day  ", " week", "month ", "Day", "year", "all"} {
		query := url.Values{"period": {raw}}
		if _, err := parsePeriodParam(query); err == nil {
			t.Errorf("parsePeriodParam(%q) error = nil, want error", raw)
		}
	}
}

func FuzzParsePeriodParam(f *testing.F) {
	f.Add("day")
	f.Add("week")
	f.Add("month")
	f.Add("")
	f.Add("  day  ")
	f.Add("year")
	f.Add("DAY")
	f.Add("day week")
	f.Add("天")

	f.Fuzz(func(t *testing.T, raw string) {
		query := url.Values{}
		if raw != "" {
			query.Set("period", raw)
		}

		period, err := parsePeriodParam(query)
		if err != nil {
			return
		}
		switch period {
		case stats.PeriodDay, stats.PeriodWeek, stats.PeriodMonth:
		default:
			t.Fatalf("parsePeriodParam(%q) accepted unknown period %q", raw, period)
		}
		if raw != "" && string(period) != raw {
			t.Fatalf("parsePeriodParam(%q) rewrote the value to %q", raw, period)
		}
		if _, err := period.Window(); err != nil {
			t.Fatalf("accepted period %q has no window: %v", period, err)
		}
	})
}
