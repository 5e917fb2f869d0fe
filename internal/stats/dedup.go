package stats

import (
	"time"

	"github.com/happyrussia/mood-api/internal/domain"
)

// voteKey identifies one user's contribution to one entity bucket.
type voteKey struct {
	entity string
	user   string
}

// vote is the single qualifying check-in kept per (entity, user) pair.
type vote struct {
	checkInID string
	mood      int
	date      time.Time
}

// entityMeta carries the display data resolved from the first check-in seen
// for a grouping key.
type entityMeta struct {
	name     string
	regionID string
}

// keyFunc maps a check-in to its grouping key and display metadata. ok=false
// excludes the row (missing level-specific fields).
type keyFunc func(domain.CheckIn) (key string, meta entityMeta, ok bool)

// dedupe collapses check-ins to at most one vote per (entity, user) pair,
// keeping the one with the greatest date. Rows without a user are skipped.
// Exact-timestamp ties break on the larger check-in ID so the result does
// not depend on input order.
func dedupe(checkIns []domain.CheckIn, key keyFunc) (map[voteKey]vote, map[string]entityMeta) {
	votes := make(map[voteKey]vote)
	meta := make(map[string]entityMeta)

	for _, c := range checkIns {
		if c.UserID == "" {
			continue
		}
		entity, m, ok := key(c)
		if !ok {
			continue
		}
		if _, seen := meta[entity]; !seen {
			meta[entity] = m
		}

		k := voteKey{entity: entity, user: c.UserID}
		v := vote{checkInID: c.ID, mood: c.Mood, date: c.Date}
		prev, exists := votes[k]
		if !exists || supersedes(v, prev) {
			votes[k] = v
		}
	}
	return votes, meta
}

func supersedes(candidate, current vote) bool {
	if candidate.date.After(current.date) {
		return true
	}
	if candidate.date.Equal(current.date) {
		return candidate.checkInID > current.checkInID
	}
	return false
}
