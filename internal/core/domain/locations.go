package domain

import "time"

// Governorate is the top level of the location taxonomy. The Arabic name is
// the primary one; the English name is optional.
type Governorate struct {
	ID        int
	NameAr    string
	NameEn    string
	CreatedAt time.Time
}

// Directorate belongs to exactly one governorate.
type Directorate struct {
	ID            int
	GovernorateID int
	NameAr        string
	NameEn        string
	CreatedAt     time.Time
}

// PropertyType is a taxonomy row offered to the admin UI as a suggestion.
// It is deliberately not foreign-keyed from Property.PropertyType, which
// stays a free-text tag.
type PropertyType struct {
	ID        int
	NameAr    string
	NameEn    string
	Active    bool
	CreatedAt time.Time
}
