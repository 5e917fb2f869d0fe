package domain

import "time"

// Mood bounds accepted for a check-in.
const (
	MoodMin = 1
	MoodMax = 5
)

// CheckIn represents a single mood submission tied to a user and an
// administrative entity. Records are written by the mobile client and are
// read-only to the ranking engine.
type CheckIn struct {
	ID              string
	RegionID        string
	RegionName      string
	Mood            int
	Date            time.Time
	UserID          string // empty when the client submitted anonymously
	CityID          *string
	CityName        *string
	FederalDistrict *string
	District        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// City returns the check-in's city name, or "" when none was submitted.
func (c CheckIn) City() string {
	if c.CityName == nil {
		return ""
	}
	return *c.CityName
}

// CityKey returns the identifier used to group this check-in at city level:
// the explicit cityId when present, otherwise a key synthesized from the
// region so that same-named cities in different regions stay distinct.
func (c CheckIn) CityKey() string {
	if c.CityID != nil && *c.CityID != "" {
		return *c.CityID
	}
	return c.RegionID + "_" + c.City()
}

// DistrictName returns the federal district name, or "" when absent.
func (c CheckIn) DistrictName() string {
	if c.FederalDistrict == nil {
		return ""
	}
	return *c.FederalDistrict
}
