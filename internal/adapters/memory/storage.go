package memory_adapter

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"aqar-service/internal/core/domain"
)

// Storage is the map-backed implementation of port.Storage. It keeps one
// map per entity keyed by an auto-incrementing integer id, guarded by a
// single RWMutex. State lives for the process lifetime only; it is the
// zero-configuration default used when DATABASE_URL is not set, and the
// store handler tests run against.
type Storage struct {
	mu sync.RWMutex

	properties       map[int]*domain.Property
	governorates     map[int]*domain.Governorate
	directorates     map[int]*domain.Directorate
	propertyTypes    map[int]*domain.PropertyType
	contacts         map[int]*domain.Contact
	newsletters      map[int]*domain.Newsletter
	entrustments     map[int]*domain.Entrustment
	propertyRequests map[int]*domain.PropertyRequest
	admins           map[int]*domain.Admin
	settings         map[int]*domain.SiteSetting

	nextPropertyID        int
	nextGovernorateID     int
	nextDirectorateID     int
	nextPropertyTypeID    int
	nextContactID         int
	nextNewsletterID      int
	nextEntrustmentID     int
	nextPropertyRequestID int
	nextAdminID           int
	nextSettingID         int
}

// NewStorage creates a store pre-seeded with the default taxonomy, site
// settings and sample listings. Admin accounts are not seeded here; the
// composition root installs the default admin when none exists, the same
// path the Postgres store uses.
func NewStorage() *Storage {
	s := &Storage{
		properties:       make(map[int]*domain.Property),
		governorates:     make(map[int]*domain.Governorate),
		directorates:     make(map[int]*domain.Directorate),
		propertyTypes:    make(map[int]*domain.PropertyType),
		contacts:         make(map[int]*domain.Contact),
		newsletters:      make(map[int]*domain.Newsletter),
		entrustments:     make(map[int]*domain.Entrustment),
		propertyRequests: make(map[int]*domain.PropertyRequest),
		admins:           make(map[int]*domain.Admin),
		settings:         make(map[int]*domain.SiteSetting),
	}
	s.seed()
	return s
}

// NewEmptyStorage creates a store with no seed data, for tests that want
// full control over the fixture set.
func NewEmptyStorage() *Storage {
	s := NewStorage()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = make(map[int]*domain.Property)
	s.governorates = make(map[int]*domain.Governorate)
	s.directorates = make(map[int]*domain.Directorate)
	s.propertyTypes = make(map[int]*domain.PropertyType)
	s.settings = make(map[int]*domain.SiteSetting)
	return s
}

// --- Properties ---

func (s *Storage) GetProperties(ctx context.Context) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectProperties(func(p *domain.Property) bool { return p.Available }), nil
}

func (s *Storage) GetAllProperties(ctx context.Context) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectProperties(func(p *domain.Property) bool { return true }), nil
}

func (s *Storage) GetFeaturedProperties(ctx context.Context) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectProperties(func(p *domain.Property) bool { return p.Available && p.Featured }), nil
}

func (s *Storage) GetPropertyByID(ctx context.Context, id int) (*domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	if !ok {
		return nil, nil
	}
	return cloneProperty(p), nil
}

func (s *Storage) SearchProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectProperties(func(p *domain.Property) bool {
		return p.Available && filters.Matches(p)
	}), nil
}

func (s *Storage) CreateProperty(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid property: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPropertyID++
	stored := cloneProperty(p)
	stored.ID = s.nextPropertyID
	stored.CreatedAt = time.Now().UTC()
	stored.Normalize()
	s.properties[stored.ID] = stored
	return cloneProperty(stored), nil
}

func (s *Storage) UpdateProperty(ctx context.Context, id int, p *domain.Property) (*domain.Property, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid property: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.properties[id]
	if !ok {
		return nil, nil
	}

	updated := cloneProperty(p)
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	updated.Normalize()
	s.properties[id] = updated
	return cloneProperty(updated), nil
}

// DeleteProperty always reports success: deleting an id that does not exist
// leaves the store in the requested state.
func (s *Storage) DeleteProperty(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.properties, id)
	return true, nil
}

// collectProperties returns matching rows newest-first. Callers hold the lock.
func (s *Storage) collectProperties(match func(*domain.Property) bool) []domain.Property {
	result := make([]domain.Property, 0)
	for _, p := range s.properties {
		if match(p) {
			result = append(result, *cloneProperty(p))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result
}

// --- Governorates / Directorates ---

func (s *Storage) GetGovernorates(ctx context.Context) ([]domain.Governorate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Governorate, 0, len(s.governorates))
	for _, g := range s.governorates {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Storage) GetGovernorateByID(ctx context.Context, id int) (*domain.Governorate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.governorates[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (s *Storage) CreateGovernorate(ctx context.Context, g *domain.Governorate) (*domain.Governorate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextGovernorateID++
	stored := *g
	stored.ID = s.nextGovernorateID
	stored.CreatedAt = time.Now().UTC()
	s.governorates[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *Storage) UpdateGovernorate(ctx context.Context, id int, g *domain.Governorate) (*domain.Governorate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.governorates[id]
	if !ok {
		return nil, nil
	}
	updated := *g
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	s.governorates[id] = &updated
	copied := updated
	return &copied, nil
}

func (s *Storage) DeleteGovernorate(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.governorates, id)
	return true, nil
}

func (s *Storage) GetDirectorates(ctx context.Context) ([]domain.Directorate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectDirectorates(func(d *domain.Directorate) bool { return true }), nil
}

func (s *Storage) GetDirectoratesByGovernorate(ctx context.Context, governorateID int) ([]domain.Directorate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectDirectorates(func(d *domain.Directorate) bool { return d.GovernorateID == governorateID }), nil
}

func (s *Storage) CreateDirectorate(ctx context.Context, d *domain.Directorate) (*domain.Directorate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextDirectorateID++
	stored := *d
	stored.ID = s.nextDirectorateID
	stored.CreatedAt = time.Now().UTC()
	s.directorates[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *Storage) UpdateDirectorate(ctx context.Context, id int, d *domain.Directorate) (*domain.Directorate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.directorates[id]
	if !ok {
		return nil, nil
	}
	updated := *d
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	s.directorates[id] = &updated
	copied := updated
	return &copied, nil
}

func (s *Storage) DeleteDirectorate(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.directorates, id)
	return true, nil
}

func (s *Storage) collectDirectorates(match func(*domain.Directorate) bool) []domain.Directorate {
	result := make([]domain.Directorate, 0)
	for _, d := range s.directorates {
		if match(d) {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// --- Property types ---

func (s *Storage) GetPropertyTypes(ctx context.Context, activeOnly bool) ([]domain.PropertyType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.PropertyType, 0, len(s.propertyTypes))
	for _, t := range s.propertyTypes {
		if activeOnly && !t.Active {
			continue
		}
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Storage) CreatePropertyType(ctx context.Context, t *domain.PropertyType) (*domain.PropertyType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPropertyTypeID++
	stored := *t
	stored.ID = s.nextPropertyTypeID
	stored.CreatedAt = time.Now().UTC()
	s.propertyTypes[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *Storage) UpdatePropertyType(ctx context.Context, id int, t *domain.PropertyType) (*domain.PropertyType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.propertyTypes[id]
	if !ok {
		return nil, nil
	}
	updated := *t
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	s.propertyTypes[id] = &updated
	copied := updated
	return &copied, nil
}

func (s *Storage) DeletePropertyType(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.propertyTypes, id)
	return true, nil
}

// --- Leads ---

func (s *Storage) CreateContact(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextContactID++
	stored := *c
	stored.ID = s.nextContactID
	stored.CreatedAt = time.Now().UTC()
	s.contacts[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *Storage) GetContacts(ctx context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (s *Storage) DeleteContact(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contacts, id)
	return true, nil
}

// CreateNewsletter enforces email uniqueness; the duplicate check and the
// insert happen under one lock so no race window exists here.
func (s *Storage) CreateNewsletter(ctx context.Context, email string) (*domain.Newsletter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.newsletters {
		if n.Email == email {
			return nil, domain.ErrEmailAlreadySubscribed
		}
	}

	s.nextNewsletterID++
	stored := &domain.Newsletter{
		ID:        s.nextNewsletterID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	s.newsletters[stored.ID] = stored
	copied := *stored
	return &copied, nil
}

func (s *Storage) GetNewsletters(ctx context.Context) ([]domain.Newsletter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Newsletter, 0, len(s.newsletters))
	for _, n := range s.newsletters {
		result = append(result, *n)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (s *Storage) DeleteNewsletter(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.newsletters, id)
	return true, nil
}

func (s *Storage) CreateEntrustment(ctx context.Context, e *domain.Entrustment) (*domain.Entrustment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEntrustmentID++
	stored := *e
	stored.ID = s.nextEntrustmentID
	stored.CreatedAt = time.Now().UTC()
	s.entrustments[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *Storage) GetEntrustments(ctx context.Context) ([]domain.Entrustment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Entrustment, 0, len(s.entrustments))
	for _, e := range s.entrustments {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (s *Storage) DeleteEntrustment(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entrustments, id)
	return true, nil
}

func (s *Storage) CreatePropertyRequest(ctx context.Context, pr *domain.PropertyRequest) (*domain.PropertyRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPropertyRequestID++
	stored := *pr
	stored.ID = s.nextPropertyRequestID
	stored.CreatedAt = time.Now().UTC()
	s.propertyRequests[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *Storage) GetPropertyRequests(ctx context.Context) ([]domain.PropertyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.PropertyRequest, 0, len(s.propertyRequests))
	for _, pr := range s.propertyRequests {
		result = append(result, *pr)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (s *Storage) DeletePropertyRequest(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.propertyRequests, id)
	return true, nil
}

// --- Admins ---

func (s *Storage) GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.admins {
		if a.Username == username {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *Storage) GetAdminByID(ctx context.Context, id int) (*domain.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (s *Storage) CreateAdmin(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAdminID++
	stored := *a
	stored.ID = s.nextAdminID
	s.admins[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *Storage) CountAdmins(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.admins), nil
}

// --- Site settings ---

func (s *Storage) GetSettings(ctx context.Context) ([]domain.SiteSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.SiteSetting, 0, len(s.settings))
	for _, st := range s.settings {
		result = append(result, *st)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Storage) GetSettingByKey(ctx context.Context, key string) (*domain.SiteSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.settings {
		if st.Key == key {
			copied := *st
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *Storage) UpsertSetting(ctx context.Context, key, value string) (*domain.SiteSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for _, st := range s.settings {
		if st.Key == key {
			st.Value = value
			st.UpdatedAt = now
			copied := *st
			return &copied, nil
		}
	}

	s.nextSettingID++
	stored := &domain.SiteSetting{
		ID:        s.nextSettingID,
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.settings[stored.ID] = stored
	copied := *stored
	return &copied, nil
}

func cloneProperty(p *domain.Property) *domain.Property {
	copied := *p
	copied.Images = append([]string(nil), p.Images...)
	if p.GovernorateID != nil {
		v := *p.GovernorateID
		copied.GovernorateID = &v
	}
	if p.DirectorateID != nil {
		v := *p.DirectorateID
		copied.DirectorateID = &v
	}
	return &copied
}
