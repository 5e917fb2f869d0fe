package stats

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"sort"
	"time"

	"github.com/happyrussia/mood-api/internal/domain"
)

// bucket accumulates the deduplicated votes for one grouping key.
type bucket struct {
	moodSum int
	voters  int
}

// populationFunc resolves the population for a grouping key, returning 0
// when unknown. Lookup failures never abort the batch.
type populationFunc func(key string, meta entityMeta) int64

// idFunc derives the public entity ID from a grouping key.
type idFunc func(key string, meta entityMeta) string

// aggregate turns the deduplicated vote map into one ranking entry per
// grouping key, sorted by average mood descending. Buckets whose display
// name could not be resolved are dropped.
func aggregate(votes map[voteKey]vote, meta map[string]entityMeta, now time.Time, population populationFunc, id idFunc) []domain.RankingEntry {
	buckets := make(map[string]*bucket)
	for k, v := range votes {
		b, ok := buckets[k.entity]
		if !ok {
			b = &bucket{}
			buckets[k.entity] = b
		}
		b.moodSum += v.mood
		b.voters++
	}

	entries := make([]domain.RankingEntry, 0, len(buckets))
	for key, b := range buckets {
		m := meta[key]
		if m.name == "" {
			continue
		}
		entries = append(entries, domain.RankingEntry{
			ID:            id(key, m),
			Name:          m.name,
			RegionID:      m.regionID,
			AverageMood:   roundToTwoDecimals(float64(b.moodSum) / float64(b.voters)),
			TotalCheckIns: b.voters,
			Population:    population(key, m),
			LastUpdate:    now,
		})
	}

	sortRanking(entries)
	return entries
}

// sortRanking orders entries by average mood descending; ties break on
// voter count descending, then name ascending, so output is deterministic.
func sortRanking(entries []domain.RankingEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AverageMood != entries[j].AverageMood {
			return entries[i].AverageMood > entries[j].AverageMood
		}
		if entries[i].TotalCheckIns != entries[j].TotalCheckIns {
			return entries[i].TotalCheckIns > entries[j].TotalCheckIns
		}
		return entries[i].Name < entries[j].Name
	})
}

func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// districtIDWidth is the hex length of a federal-district entity ID.
const districtIDWidth = 16

// DistrictID derives a stable entity ID from a federal district name. The
// same name always yields the same ID, across processes and platforms.
func DistrictID(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])[:districtIDWidth]
}
