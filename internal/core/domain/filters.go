package domain

import "strings"

// PropertyFilters carries the optional search criteria. A nil field imposes
// no constraint; present fields are conjoined with AND. Range bounds are
// inclusive on both ends.
type PropertyFilters struct {
	MinPrice      *float64
	MaxPrice      *float64
	MinSize       *int
	MaxSize       *int
	MinBedrooms   *int
	MinBathrooms  *int
	PropertyType  *string
	GovernorateID *int
	DirectorateID *int
	// Location is matched case-insensitively as a substring of the
	// village, basin, neighborhood and address fields.
	Location *string
}

// Matches reports whether the property satisfies every present filter.
// Both storage implementations share these semantics: the in-memory store
// evaluates them directly, the Postgres store compiles them to SQL.
func (f PropertyFilters) Matches(p *Property) bool {
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinSize != nil && p.Size < *f.MinSize {
		return false
	}
	if f.MaxSize != nil && p.Size > *f.MaxSize {
		return false
	}
	if f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.MinBathrooms != nil && p.Bathrooms < *f.MinBathrooms {
		return false
	}
	if f.PropertyType != nil && *f.PropertyType != "" && p.PropertyType != *f.PropertyType {
		return false
	}
	if f.GovernorateID != nil && (p.GovernorateID == nil || *p.GovernorateID != *f.GovernorateID) {
		return false
	}
	if f.DirectorateID != nil && (p.DirectorateID == nil || *p.DirectorateID != *f.DirectorateID) {
		return false
	}
	if f.Location != nil && *f.Location != "" {
		needle := strings.ToLower(*f.Location)
		haystack := strings.ToLower(p.Village + " " + p.Basin + " " + p.Neighborhood + " " + p.Address)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
