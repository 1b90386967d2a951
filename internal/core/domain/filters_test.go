package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string    { return &v }

func testProperty() *Property {
	return &Property{
		Title:         "شقة في عبدون",
		Price:         85000,
		Size:          150,
		Bedrooms:      3,
		Bathrooms:     2,
		PropertyType:  "apartment",
		GovernorateID: intPtr(1),
		Village:       "عبدون",
		Available:     true,
	}
}

func TestEmptyFiltersMatchEverything(t *testing.T) {
	assert.True(t, PropertyFilters{}.Matches(testProperty()))
}

func TestRangeBoundsAreInclusive(t *testing.T) {
	p := testProperty()

	assert.True(t, PropertyFilters{MinPrice: floatPtr(85000), MaxPrice: floatPtr(85000)}.Matches(p))
	assert.False(t, PropertyFilters{MinPrice: floatPtr(85000.01)}.Matches(p))
	assert.False(t, PropertyFilters{MaxPrice: floatPtr(84999.99)}.Matches(p))

	assert.True(t, PropertyFilters{MinSize: intPtr(150), MaxSize: intPtr(150)}.Matches(p))
	assert.False(t, PropertyFilters{MinSize: intPtr(151)}.Matches(p))
}

func TestBedroomAndBathroomMinimums(t *testing.T) {
	p := testProperty()

	assert.True(t, PropertyFilters{MinBedrooms: intPtr(3)}.Matches(p))
	assert.False(t, PropertyFilters{MinBedrooms: intPtr(4)}.Matches(p))
	assert.True(t, PropertyFilters{MinBathrooms: intPtr(2)}.Matches(p))
	assert.False(t, PropertyFilters{MinBathrooms: intPtr(3)}.Matches(p))
}

func TestTaxonomyFilters(t *testing.T) {
	p := testProperty()

	assert.True(t, PropertyFilters{PropertyType: strPtr("apartment")}.Matches(p))
	assert.False(t, PropertyFilters{PropertyType: strPtr("villa")}.Matches(p))

	// An empty type imposes no constraint, same as a nil one.
	assert.True(t, PropertyFilters{PropertyType: strPtr("")}.Matches(p))

	assert.True(t, PropertyFilters{GovernorateID: intPtr(1)}.Matches(p))
	assert.False(t, PropertyFilters{GovernorateID: intPtr(2)}.Matches(p))

	// A property without a directorate never matches a directorate filter.
	assert.False(t, PropertyFilters{DirectorateID: intPtr(1)}.Matches(p))
}

func TestLocationIsCaseInsensitiveSubstring(t *testing.T) {
	p := testProperty()
	p.Address = "Abdoun Circle"

	assert.True(t, PropertyFilters{Location: strPtr("abdoun")}.Matches(p))
	assert.True(t, PropertyFilters{Location: strPtr("عبدون")}.Matches(p))
	assert.False(t, PropertyFilters{Location: strPtr("jabal")}.Matches(p))

	// Empty location imposes no constraint.
	assert.True(t, PropertyFilters{Location: strPtr("")}.Matches(p))
}

func TestFiltersAreConjoined(t *testing.T) {
	p := testProperty()

	both := PropertyFilters{MinPrice: floatPtr(80000), PropertyType: strPtr("apartment")}
	assert.True(t, both.Matches(p))

	oneFails := PropertyFilters{MinPrice: floatPtr(80000), PropertyType: strPtr("villa")}
	assert.False(t, oneFails.Matches(p))
}
