package geo

import (
	"strings"
)

// Lookup answers population queries for regions, cities, and federal
// districts. It is fully built by NewLookup and never mutated afterwards, so
// concurrent use needs no locking. Unknown entities resolve to 0.
type Lookup struct {
	regionPop   map[string]int64
	cityPop     map[string]map[string]int64 // region id -> lowercased settlement name -> population
	districtPop map[string]int64
}

// NewLookup indexes a dataset. Region and district populations are derived
// by summing their settlements; when a branch carries no settlement data the
// stored aggregate figure is used instead.
func NewLookup(data Dataset) *Lookup {
	l := &Lookup{
		regionPop:   make(map[string]int64),
		cityPop:     make(map[string]map[string]int64),
		districtPop: make(map[string]int64),
	}

	for _, district := range data.FederalDistricts {
		var districtTotal int64
		for _, region := range district.Regions {
			cities := make(map[string]int64)
			var regionTotal int64
			for _, city := range region.Cities {
				cities[strings.ToLower(city.Name)] = city.Population
				regionTotal += city.Population
			}
			for _, ud := range region.UrbanDistricts {
				for _, settlement := range ud.Settlements {
					cities[strings.ToLower(settlement.Name)] = settlement.Population
					regionTotal += settlement.Population
				}
			}
			if regionTotal == 0 {
				regionTotal = region.Population
			}
			l.cityPop[region.ID] = cities
			l.regionPop[region.ID] = regionTotal
			districtTotal += regionTotal
		}
		if districtTotal == 0 {
			districtTotal = district.Population
		}
		l.districtPop[district.Name] = districtTotal
	}
	return l
}

// RegionPopulation returns the population of a region, 0 if unknown.
func (l *Lookup) RegionPopulation(regionID string) int64 {
	return l.regionPop[regionID]
}

// CityPopulation returns the population of a settlement within a region.
// Name matching is case-insensitive; 0 if unknown.
func (l *Lookup) CityPopulation(regionID, cityName string) int64 {
	cities, ok := l.cityPop[regionID]
	if !ok {
		return 0
	}
	return cities[strings.ToLower(cityName)]
}

// FederalDistrictPopulation returns the population of a federal district by
// name, 0 if unknown.
func (l *Lookup) FederalDistrictPopulation(name string) int64 {
	return l.districtPop[name]
}
