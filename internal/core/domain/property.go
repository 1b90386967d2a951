package domain

import (
	"fmt"
	"time"
)

// PlaceholderImage is substituted whenever a property is stored with an
// empty image list, so a listing card always has something to render.
const PlaceholderImage = "/uploads/placeholder.jpg"

// Property is the central listing entity. Location is expressed both as
// references into the governorate/directorate taxonomy and as free-text
// fields (village, basin, neighborhood, plot number) as used on Jordanian
// land records.
type Property struct {
	ID            int
	Title         string
	Description   string
	Price         float64
	Size          int // square meters
	Bedrooms      int
	Bathrooms     int
	PropertyType  string
	GovernorateID *int
	DirectorateID *int
	Village       string
	Basin         string
	Neighborhood  string
	PlotNumber    string
	Address       string
	Images        []string
	Featured      bool
	Available     bool // the published flag; unpublished rows are admin-only
	CreatedAt     time.Time
}

// Normalize enforces the structural invariants that hold for every stored
// property: a non-empty image list.
func (p *Property) Normalize() {
	if len(p.Images) == 0 {
		p.Images = []string{PlaceholderImage}
	}
}

// Validate checks the value invariants before a property is persisted.
func (p *Property) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("property title is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("property price must be non-negative")
	}
	if p.Size < 0 {
		return fmt.Errorf("property size must be non-negative")
	}
	return nil
}
