package domain

import "time"

// RankingEntry is one row of a mood ranking, computed fresh per request and
// never persisted.
type RankingEntry struct {
	ID            string
	Name          string
	RegionID      string // set for city entries only
	AverageMood   float64
	TotalCheckIns int // distinct contributing users, not raw check-ins
	Population    int64
	LastUpdate    time.Time
}
