package postgres_adapter

import (
	"testing"

	"aqar-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestApplyFiltersEmptyOnlyRestrictsToPublished(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilters{})

	assert.Equal(t, "WHERE available = TRUE", where)
	assert.Empty(t, args)
}

func TestApplyFiltersPriceRange(t *testing.T) {
	min := 10000.0
	max := 50000.0
	where, args := applyFilters(domain.PropertyFilters{MinPrice: &min, MaxPrice: &max})

	assert.Equal(t, "WHERE available = TRUE AND price >= $1 AND price <= $2", where)
	assert.Equal(t, []interface{}{10000.0, 50000.0}, args)
}

func TestApplyFiltersPlaceholdersStayInSync(t *testing.T) {
	minSize := 80
	minBedrooms := 2
	propertyType := "villa"
	governorateID := 3
	where, args := applyFilters(domain.PropertyFilters{
		MinSize:       &minSize,
		MinBedrooms:   &minBedrooms,
		PropertyType:  &propertyType,
		GovernorateID: &governorateID,
	})

	assert.Equal(t,
		"WHERE available = TRUE AND size >= $1 AND bedrooms >= $2 AND property_type = $3 AND governorate_id = $4",
		where)
	assert.Equal(t, []interface{}{80, 2, "villa", 3}, args)
}

func TestApplyFiltersLocationUsesILike(t *testing.T) {
	location := "عبدون"
	where, args := applyFilters(domain.PropertyFilters{Location: &location})

	assert.Contains(t, where, "concat_ws(' ', village, basin, neighborhood, address) ILIKE $1")
	assert.Equal(t, []interface{}{"%عبدون%"}, args)
}

func TestApplyFiltersLocationEscapesWildcards(t *testing.T) {
	location := `50%_plot\`
	_, args := applyFilters(domain.PropertyFilters{Location: &location})

	assert.Equal(t, []interface{}{`%50\%\_plot\\%`}, args)
}

func TestApplyFiltersEmptyStringsAreIgnored(t *testing.T) {
	empty := ""
	where, args := applyFilters(domain.PropertyFilters{PropertyType: &empty, Location: &empty})

	assert.Equal(t, "WHERE available = TRUE", where)
	assert.Empty(t, args)
}
