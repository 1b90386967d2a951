package memory_adapter

import (
	"context"
	"testing"

	"aqar-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProperty(title string, price float64, available bool) *domain.Property {
	return &domain.Property{
		Title:        title,
		Price:        price,
		Size:         100,
		Bedrooms:     3,
		Bathrooms:    2,
		PropertyType: "apartment",
		Available:    available,
	}
}

func TestPublicListingsExcludeUnpublished(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	published, err := s.CreateProperty(ctx, newTestProperty("published", 50000, true))
	require.NoError(t, err)
	_, err = s.CreateProperty(ctx, newTestProperty("hidden", 60000, false))
	require.NoError(t, err)

	listing, err := s.GetProperties(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, published.ID, listing[0].ID)

	all, err := s.GetAllProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	results, err := s.SearchProperties(ctx, domain.PropertyFilters{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, published.ID, results[0].ID)
}

func TestFeaturedPropertiesRequirePublished(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	featured := newTestProperty("featured", 70000, true)
	featured.Featured = true
	stored, err := s.CreateProperty(ctx, featured)
	require.NoError(t, err)

	hiddenFeatured := newTestProperty("hidden featured", 80000, false)
	hiddenFeatured.Featured = true
	_, err = s.CreateProperty(ctx, hiddenFeatured)
	require.NoError(t, err)

	result, err := s.GetFeaturedProperties(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, stored.ID, result[0].ID)
}

func TestSearchPriceBoundsAreInclusive(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	_, err := s.CreateProperty(ctx, newTestProperty("exact", 50000, true))
	require.NoError(t, err)

	min := 50000.0
	max := 50000.0
	results, err := s.SearchProperties(ctx, domain.PropertyFilters{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	above := 50000.01
	results, err = s.SearchProperties(ctx, domain.PropertyFilters{MinPrice: &above})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchLocationSubstring(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	p := newTestProperty("villa", 120000, true)
	p.Village = "Umm Al-Summaq"
	_, err := s.CreateProperty(ctx, p)
	require.NoError(t, err)

	needle := "summaq"
	results, err := s.SearchProperties(ctx, domain.PropertyFilters{Location: &needle})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	miss := "aqaba"
	results, err = s.SearchProperties(ctx, domain.PropertyFilters{Location: &miss})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEmptyPropertyTypeImposesNoConstraint(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	_, err := s.CreateProperty(ctx, newTestProperty("typed", 50000, true))
	require.NoError(t, err)

	empty := ""
	results, err := s.SearchProperties(ctx, domain.PropertyFilters{PropertyType: &empty})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestListingsAreNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	first, err := s.CreateProperty(ctx, newTestProperty("first", 10000, true))
	require.NoError(t, err)
	second, err := s.CreateProperty(ctx, newTestProperty("second", 20000, true))
	require.NoError(t, err)

	listing, err := s.GetProperties(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 2)
	assert.Equal(t, second.ID, listing[0].ID)
	assert.Equal(t, first.ID, listing[1].ID)
}

func TestCreatePropertySubstitutesPlaceholderImage(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	stored, err := s.CreateProperty(ctx, newTestProperty("no images", 30000, true))
	require.NoError(t, err)
	assert.Equal(t, []string{domain.PlaceholderImage}, stored.Images)
}

func TestCreatePropertyRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	_, err := s.CreateProperty(ctx, newTestProperty("", 10000, true))
	assert.Error(t, err)

	_, err = s.CreateProperty(ctx, newTestProperty("negative", -1, true))
	assert.Error(t, err)
}

func TestUpdatePropertyMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	updated, err := s.UpdateProperty(ctx, 42, newTestProperty("ghost", 10000, true))
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeletePropertyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	deleted, err := s.DeleteProperty(ctx, 999)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestNewsletterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	first, err := s.CreateNewsletter(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", first.Email)

	_, err = s.CreateNewsletter(ctx, "reader@example.com")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadySubscribed)

	// After deleting the row, the address can subscribe again.
	_, err = s.DeleteNewsletter(ctx, first.ID)
	require.NoError(t, err)
	_, err = s.CreateNewsletter(ctx, "reader@example.com")
	assert.NoError(t, err)
}

func TestUpsertSettingCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	created, err := s.UpsertSetting(ctx, "phone", "+962 6 000 0000")
	require.NoError(t, err)
	assert.Equal(t, "+962 6 000 0000", created.Value)

	updated, err := s.UpsertSetting(ctx, "phone", "+962 6 111 1111")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "+962 6 111 1111", updated.Value)

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Len(t, settings, 1)
}

func TestDirectoratesByGovernorate(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	amman, err := s.CreateGovernorate(ctx, &domain.Governorate{NameAr: "عمان", NameEn: "Amman"})
	require.NoError(t, err)
	irbid, err := s.CreateGovernorate(ctx, &domain.Governorate{NameAr: "إربد", NameEn: "Irbid"})
	require.NoError(t, err)

	_, err = s.CreateDirectorate(ctx, &domain.Directorate{GovernorateID: amman.ID, NameAr: "قصبة عمان"})
	require.NoError(t, err)
	_, err = s.CreateDirectorate(ctx, &domain.Directorate{GovernorateID: irbid.ID, NameAr: "قصبة إربد"})
	require.NoError(t, err)

	result, err := s.GetDirectoratesByGovernorate(ctx, amman.ID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, amman.ID, result[0].GovernorateID)
}

func TestPropertyTypesActiveFilter(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	_, err := s.CreatePropertyType(ctx, &domain.PropertyType{NameAr: "شقة", Active: true})
	require.NoError(t, err)
	_, err = s.CreatePropertyType(ctx, &domain.PropertyType{NameAr: "مخزن", Active: false})
	require.NoError(t, err)

	active, err := s.GetPropertyTypes(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := s.GetPropertyTypes(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSeededStorageHasCatalogData(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	governorates, err := s.GetGovernorates(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, governorates)

	types, err := s.GetPropertyTypes(ctx, true)
	require.NoError(t, err)
	assert.NotEmpty(t, types)

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, settings)

	properties, err := s.GetProperties(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, properties)

	// No admin account comes from the seed; the composition root owns that.
	count, err := s.CountAdmins(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStoredPropertyIsIsolatedFromCaller(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStorage()

	p := newTestProperty("isolated", 10000, true)
	p.Images = []string{"/uploads/a.jpg"}
	stored, err := s.CreateProperty(ctx, p)
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the store.
	stored.Images[0] = "/uploads/mutated.jpg"

	reloaded, err := s.GetPropertyByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.jpg", reloaded.Images[0])
}
