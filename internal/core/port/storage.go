package port

import (
	"context"

	"aqar-service/internal/core/domain"
)

// PropertyStorage covers the listing entity. GetProperties, SearchProperties
// and GetFeaturedProperties only ever return rows with Available=true; the
// admin-side GetAllProperties is the single path to unpublished rows.
// Lookups return (nil, nil) when no row exists.
type PropertyStorage interface {
	GetProperties(ctx context.Context) ([]domain.Property, error)
	GetAllProperties(ctx context.Context) ([]domain.Property, error)
	GetFeaturedProperties(ctx context.Context) ([]domain.Property, error)
	GetPropertyByID(ctx context.Context, id int) (*domain.Property, error)
	SearchProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
	CreateProperty(ctx context.Context, p *domain.Property) (*domain.Property, error)
	UpdateProperty(ctx context.Context, id int, p *domain.Property) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id int) (bool, error)
}

// LocationStorage covers the governorate/directorate taxonomy.
type LocationStorage interface {
	GetGovernorates(ctx context.Context) ([]domain.Governorate, error)
	GetGovernorateByID(ctx context.Context, id int) (*domain.Governorate, error)
	CreateGovernorate(ctx context.Context, g *domain.Governorate) (*domain.Governorate, error)
	UpdateGovernorate(ctx context.Context, id int, g *domain.Governorate) (*domain.Governorate, error)
	DeleteGovernorate(ctx context.Context, id int) (bool, error)

	GetDirectorates(ctx context.Context) ([]domain.Directorate, error)
	GetDirectoratesByGovernorate(ctx context.Context, governorateID int) ([]domain.Directorate, error)
	CreateDirectorate(ctx context.Context, d *domain.Directorate) (*domain.Directorate, error)
	UpdateDirectorate(ctx context.Context, id int, d *domain.Directorate) (*domain.Directorate, error)
	DeleteDirectorate(ctx context.Context, id int) (bool, error)
}

// TaxonomyStorage covers the property-type dictionary.
type TaxonomyStorage interface {
	GetPropertyTypes(ctx context.Context, activeOnly bool) ([]domain.PropertyType, error)
	CreatePropertyType(ctx context.Context, t *domain.PropertyType) (*domain.PropertyType, error)
	UpdatePropertyType(ctx context.Context, id int, t *domain.PropertyType) (*domain.PropertyType, error)
	DeletePropertyType(ctx context.Context, id int) (bool, error)
}

// LeadStorage covers the append-only lead-capture entities.
// CreateNewsletter returns domain.ErrEmailAlreadySubscribed on a duplicate.
type LeadStorage interface {
	CreateContact(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	GetContacts(ctx context.Context) ([]domain.Contact, error)
	DeleteContact(ctx context.Context, id int) (bool, error)

	CreateNewsletter(ctx context.Context, email string) (*domain.Newsletter, error)
	GetNewsletters(ctx context.Context) ([]domain.Newsletter, error)
	DeleteNewsletter(ctx context.Context, id int) (bool, error)

	CreateEntrustment(ctx context.Context, e *domain.Entrustment) (*domain.Entrustment, error)
	GetEntrustments(ctx context.Context) ([]domain.Entrustment, error)
	DeleteEntrustment(ctx context.Context, id int) (bool, error)

	CreatePropertyRequest(ctx context.Context, pr *domain.PropertyRequest) (*domain.PropertyRequest, error)
	GetPropertyRequests(ctx context.Context) ([]domain.PropertyRequest, error)
	DeletePropertyRequest(ctx context.Context, id int) (bool, error)
}

// AdminStorage covers back-office accounts.
type AdminStorage interface {
	GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
	GetAdminByID(ctx context.Context, id int) (*domain.Admin, error)
	CreateAdmin(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
	CountAdmins(ctx context.Context) (int, error)
}

// SettingsStorage covers the key→value site copy with upsert semantics.
type SettingsStorage interface {
	GetSettings(ctx context.Context) ([]domain.SiteSetting, error)
	GetSettingByKey(ctx context.Context, key string) (*domain.SiteSetting, error)
	UpsertSetting(ctx context.Context, key, value string) (*domain.SiteSetting, error)
}

// Storage is the full persistence contract. Two interchangeable
// implementations exist: the map-backed store (zero-configuration default)
// and the Postgres-backed store.
type Storage interface {
	PropertyStorage
	LocationStorage
	TaxonomyStorage
	LeadStorage
	AdminStorage
	SettingsStorage
}
