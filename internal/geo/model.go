// Package geo holds the static reference data for the Russian administrative
// hierarchy (federal district, region, city/settlement) and exposes an
// immutable population lookup built from it at startup.
package geo

// Settlement is a single populated place inside a region or urban district.
type Settlement struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Population int64  `json:"population"`
}

// UrbanDistrict groups settlements under one municipal okrug.
type UrbanDistrict struct {
	Name        string       `json:"name"`
	Population  int64        `json:"population"`
	Settlements []Settlement `json:"settlements"`
}

// Region is a federal subject, keyed by its two-digit subject code.
type Region struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Population      int64           `json:"population"`
	FederalDistrict string          `json:"federal_district"`
	Cities          []Settlement    `json:"cities"`
	UrbanDistricts  []UrbanDistrict `json:"urban_districts"`
}

// FederalDistrict is the top level of the hierarchy.
type FederalDistrict struct {
	Name       string   `json:"name"`
	Population int64    `json:"population"`
	Regions    []Region `json:"regions"`
}

// Dataset is the full reference structure as stored on disk.
type Dataset struct {
	FederalDistricts []FederalDistrict `json:"federal_districts"`
}
