package domain

import "time"

// User is a registered mobile-app user. UserID is the phone number the
// client registered with.
type User struct {
	UserID                      string
	Name                        string
	RegistrationCityID          *string
	RegistrationCityName        *string
	RegistrationRegionID        *string
	RegistrationRegionName      *string
	RegistrationFederalDistrict *string
	CreatedAt                   time.Time
}
