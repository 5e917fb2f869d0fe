package stats

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/happyrussia/mood-api/internal/domain"
	"github.com/happyrussia/mood-api/internal/repository"
)

// ErrNoData indicates zero qualifying check-ins for the requested entity and
// window. It is distinct from an entry with zero values.
var ErrNoData = errors.New("stats: no qualifying check-ins")

// CheckInSource supplies the qualifying check-in rows a ranking is computed
// from. *repository.CheckInsRepository satisfies it.
type CheckInSource interface {
	ListQualifying(ctx context.Context, filter repository.CheckInFilter) ([]domain.CheckIn, error)
}

// PopulationLookup resolves population counts for administrative entities,
// returning 0 when unknown. *geo.Lookup satisfies it.
type PopulationLookup interface {
	RegionPopulation(regionID string) int64
	CityPopulation(regionID, cityName string) int64
	FederalDistrictPopulation(name string) int64
}

// Service computes time-windowed, deduplicated-by-user mood rankings at
// region, city, and federal-district level. Every call recomputes from the
// store; nothing is cached between requests.
type Service struct {
	source     CheckInSource
	population PopulationLookup
	logger     *log.Logger
	now        func() time.Time
}

// NewService constructs the ranking service.
func NewService(source CheckInSource, population PopulationLookup, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		source:     source,
		population: population,
		logger:     logger,
		now:        time.Now,
	}
}

// RegionRanking returns one entry per region with at least one qualifying
// vote in the window, sorted by average mood descending.
func (s *Service) RegionRanking(ctx context.Context, period Period) ([]domain.RankingEntry, error) {
	now := s.now().UTC()
	cutoff, err := period.Cutoff(now)
	if err != nil {
		return nil, err
	}

	rows, err := s.source.ListQualifying(ctx, repository.CheckInFilter{Since: &cutoff})
	if err != nil {
		return nil, fmt.Errorf("list check-ins for region ranking: %w", err)
	}

	votes, meta := dedupe(rows, regionKey)
	return aggregate(votes, meta, now,
		func(key string, _ entityMeta) int64 { return s.population.RegionPopulation(key) },
		func(key string, _ entityMeta) string { return key },
	), nil
}

// RegionStats returns the ranking entry for a single region, or ErrNoData
// when the region has no qualifying check-ins in the window.
func (s *Service) RegionStats(ctx context.Context, regionID string, period Period) (domain.RankingEntry, error) {
	now := s.now().UTC()
	cutoff, err := period.Cutoff(now)
	if err != nil {
		return domain.RankingEntry{}, err
	}

	rows, err := s.source.ListQualifying(ctx, repository.CheckInFilter{Since: &cutoff, RegionID: &regionID})
	if err != nil {
		return domain.RankingEntry{}, fmt.Errorf("list check-ins for region stats: %w", err)
	}

	votes, meta := dedupe(rows, regionKey)
	entries := aggregate(votes, meta, now,
		func(key string, _ entityMeta) int64 { return s.population.RegionPopulation(key) },
		func(key string, _ entityMeta) string { return key },
	)
	if len(entries) == 0 {
		return domain.RankingEntry{}, ErrNoData
	}
	return entries[0], nil
}

// CityRanking returns one entry per city with at least one qualifying vote.
// An empty regionID spans all regions; otherwise rows are restricted to that
// region before deduplication.
func (s *Service) CityRanking(ctx context.Context, regionID string, period Period) ([]domain.RankingEntry, error) {
	now := s.now().UTC()
	cutoff, err := period.Cutoff(now)
	if err != nil {
		return nil, err
	}

	filter := repository.CheckInFilter{Since: &cutoff, WithCity: true}
	if regionID != "" {
		filter.RegionID = &regionID
	}
	rows, err := s.source.ListQualifying(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list check-ins for city ranking: %w", err)
	}

	votes, meta := dedupe(rows, cityKey)
	return aggregate(votes, meta, now,
		func(_ string, m entityMeta) int64 { return s.population.CityPopulation(m.regionID, m.name) },
		func(key string, _ entityMeta) string { return key },
	), nil
}

// FederalDistrictRanking returns one entry per federal district with at
// least one qualifying vote in the window.
func (s *Service) FederalDistrictRanking(ctx context.Context, period Period) ([]domain.RankingEntry, error) {
	now := s.now().UTC()
	cutoff, err := period.Cutoff(now)
	if err != nil {
		return nil, err
	}

	rows, err := s.source.ListQualifying(ctx, repository.CheckInFilter{Since: &cutoff, WithFederalDistrict: true})
	if err != nil {
		return nil, fmt.Errorf("list check-ins for federal district ranking: %w", err)
	}

	votes, meta := dedupe(rows, districtKey)
	return aggregate(votes, meta, now,
		func(_ string, m entityMeta) int64 { return s.population.FederalDistrictPopulation(m.name) },
		func(key string, _ entityMeta) string { return DistrictID(key) },
	), nil
}

func regionKey(c domain.CheckIn) (string, entityMeta, bool) {
	if c.RegionID == "" {
		return "", entityMeta{}, false
	}
	return c.RegionID, entityMeta{name: c.RegionName}, true
}

func cityKey(c domain.CheckIn) (string, entityMeta, bool) {
	if c.City() == "" {
		return "", entityMeta{}, false
	}
	return c.CityKey(), entityMeta{name: c.City(), regionID: c.RegionID}, true
}

func districtKey(c domain.CheckIn) (string, entityMeta, bool) {
	name := c.DistrictName()
	if name == "" {
		return "", entityMeta{}, false
	}
	return name, entityMeta{name: name}, true
}
