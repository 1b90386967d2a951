package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	logger_adapter "aqar-service/internal/adapters/logger"
	memory_adapter "aqar-service/internal/adapters/memory"
	session_adapter "aqar-service/internal/adapters/session"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router  http.Handler
	storage *memory_adapter.Storage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	storage := memory_adapter.NewEmptyStorage()

	admin, err := domain.NewAdmin("admin", "admin@example.com", "secret123")
	require.NoError(t, err)
	_, err = storage.CreateAdmin(context.Background(), admin)
	require.NoError(t, err)

	sessions := session_adapter.NewMemoryStore(time.Hour)
	processor := &fakeImageProcessor{}

	handlers := &Handlers{
		Catalog: NewCatalogHandler(storage, usecase.NewFindPropertiesUseCase(storage)),
		Leads:   NewLeadsHandler(storage, usecase.NewSubscribeNewsletterUseCase(storage)),
		Auth: NewAuthHandler(storage, usecase.NewLoginAdminUseCase(storage, sessions),
			usecase.NewLogoutAdminUseCase(sessions), time.Hour),
		Admin:  NewAdminHandler(storage, usecase.NewUpsertSettingUseCase(storage)),
		Upload: NewUploadHandler(usecase.NewProcessUploadUseCase(processor), processor),
	}

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
	server := NewServer("0", handlers, sessions, t.TempDir(), logger)

	return &testEnv{router: server.Router(), storage: storage}
}

type fakeImageProcessor struct{}

func (f *fakeImageProcessor) Process(ctx context.Context, originalName string, data []byte) (*domain.UploadedImage, error) {
	return &domain.UploadedImage{URL: "/uploads/fake.jpg", OriginalName: originalName, Size: int64(len(data))}, nil
}

func (f *fakeImageProcessor) Cleanup(baseURL string) error { return nil }

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/v1/admin/login",
		map[string]string{"username": "admin", "password": "secret123"})
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			require.NotEmpty(t, c.Value)
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func (e *testEnv) seedProperty(t *testing.T, title string, available bool) *domain.Property {
	t.Helper()
	p, err := e.storage.CreateProperty(context.Background(), &domain.Property{
		Title:        title,
		Price:        50000,
		Size:         120,
		PropertyType: "apartment",
		Available:    available,
	})
	require.NoError(t, err)
	return p
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []PropertyResponse {
	t.Helper()
	var list []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}

func TestPublicListingExcludesUnpublished(t *testing.T) {
	env := newTestEnv(t)
	published := env.seedProperty(t, "visible", true)
	env.seedProperty(t, "hidden", false)

	rec := env.do(t, http.MethodGet, "/api/v1/properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, published.ID, list[0].ID)
}

func TestPublicDetailHidesUnpublished(t *testing.T) {
	env := newTestEnv(t)
	hidden := env.seedProperty(t, "hidden", false)

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/properties/%d", hidden.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The admin detail still sees it.
	cookie := env.login(t)
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/properties/%d", hidden.ID), nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPropertyDetailBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/properties/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmptySearchEqualsListing(t *testing.T) {
	env := newTestEnv(t)
	env.seedProperty(t, "one", true)
	env.seedProperty(t, "two", true)
	env.seedProperty(t, "hidden", false)

	listing := decodeList(t, env.do(t, http.MethodGet, "/api/v1/properties", nil))

	rec := env.do(t, http.MethodPost, "/api/v1/properties/search", map[string]interface{}{})
	require.Equal(t, http.StatusOK, rec.Code)
	results := decodeList(t, rec)

	assert.Equal(t, listing, results)
}

func TestSearchRejectsInvalidFilters(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/properties/search",
		map[string]interface{}{"min_price": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchByPriceRange(t *testing.T) {
	env := newTestEnv(t)
	cheap, err := env.storage.CreateProperty(context.Background(), &domain.Property{
		Title: "cheap", Price: 30000, Size: 80, PropertyType: "apartment", Available: true,
	})
	require.NoError(t, err)
	_, err = env.storage.CreateProperty(context.Background(), &domain.Property{
		Title: "expensive", Price: 300000, Size: 400, PropertyType: "villa", Available: true,
	})
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/api/v1/properties/search",
		map[string]interface{}{"max_price": 50000})
	require.Equal(t, http.StatusOK, rec.Code)

	results := decodeList(t, rec)
	require.Len(t, results, 1)
	assert.Equal(t, cheap.ID, results[0].ID)
}

func TestNewsletterSubscribeThenConflict(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{"email": "reader@example.com"}
	rec := env.do(t, http.MethodPost, "/api/v1/newsletter", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/newsletter", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestNewsletterRejectsBadEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/newsletter", map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactFormValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/contacts", map[string]string{
		"name": "أحمد", "phone": "0790000000", "message": "أرغب بالاستفسار",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Missing required fields produce a detailed 400.
	rec = env.do(t, http.MethodPost, "/api/v1/contacts", map[string]string{"name": "أحمد"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["details"])
}

func TestAdminRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/admin/properties", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/properties", nil,
		&http.Cookie{Name: SessionCookieName, Value: "forged-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginLogoutFlow(t *testing.T) {
	env := newTestEnv(t)

	// Wrong password.
	rec := env.do(t, http.MethodPost, "/api/v1/admin/login",
		map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := env.login(t)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var me AdminResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "admin", me.Username)

	// Logout kills the session immediately.
	rec = env.do(t, http.MethodPost, "/api/v1/admin/logout", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminPropertyCRUD(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	payload := map[string]interface{}{
		"title": "شقة جديدة", "price": 95000, "size": 160, "property_type": "apartment",
	}
	rec := env.do(t, http.MethodPost, "/api/v1/admin/properties", payload, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Available, "omitted available defaults to published")
	assert.Equal(t, []string{domain.PlaceholderImage}, created.Images)

	// Update replaces the row.
	payload["title"] = "شقة محدثة"
	payload["available"] = false
	rec = env.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/properties/%d", created.ID), payload, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "شقة محدثة", updated.Title)
	assert.False(t, updated.Available)

	// Unpublished now, so the public listing is empty.
	assert.Empty(t, decodeList(t, env.do(t, http.MethodGet, "/api/v1/properties", nil)))

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/properties/%d", created.ID), nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminUpdateMissingProperty(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	payload := map[string]interface{}{
		"title": "ghost", "price": 1000, "size": 50, "property_type": "apartment",
	}
	rec := env.do(t, http.MethodPut, "/api/v1/admin/properties/9999", payload, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminPropertyRejectsInvalidPayload(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/v1/admin/properties",
		map[string]interface{}{"title": "", "price": 1000, "size": 50, "property_type": "apartment"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectorateRequiresExistingGovernorate(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/v1/admin/directorates",
		map[string]interface{}{"governorate_id": 999, "name_ar": "لواء"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Create the parent, then retry.
	rec = env.do(t, http.MethodPost, "/api/v1/admin/governorates",
		map[string]string{"name_ar": "عمان", "name_en": "Amman"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var gov GovernorateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gov))

	rec = env.do(t, http.MethodPost, "/api/v1/admin/directorates",
		map[string]interface{}{"governorate_id": gov.ID, "name_ar": "قصبة عمان"}, cookie)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Public lookup lists it under its governorate.
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/governorates/%d/directorates", gov.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dirs []DirectorateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dirs))
	assert.Len(t, dirs, 1)
}

func TestPublicDirectoratesUnknownGovernorate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/governorates/999/directorates", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicPropertyTypesHideInactive(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	active := false
	_, err := env.storage.CreatePropertyType(context.Background(), &domain.PropertyType{NameAr: "مخزن", Active: active})
	require.NoError(t, err)
	_, err = env.storage.CreatePropertyType(context.Background(), &domain.PropertyType{NameAr: "شقة", Active: true})
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/v1/property-types", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var publicTypes []PropertyTypeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &publicTypes))
	assert.Len(t, publicTypes, 1)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/property-types", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var adminTypes []PropertyTypeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &adminTypes))
	assert.Len(t, adminTypes, 2)
}

func TestSettingsUpsertVisibleOnPublicSite(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodPut, "/api/v1/admin/settings/office_phone",
		map[string]string{"value": "+962 6 555 0000"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings []SettingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	require.Len(t, settings, 1)
	assert.Equal(t, "office_phone", settings[0].Key)
	assert.Equal(t, "+962 6 555 0000", settings[0].Value)
}

func TestLeadListingAndDeletion(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/v1/entrustments", map[string]interface{}{
		"owner_name": "سمير", "phone": "0795555555", "property_type": "land",
		"details": "قطعة أرض في ناعور",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/entrustments", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var leads []EntrustmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/entrustments/%d", leads[0].ID), nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/entrustments", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	assert.Empty(t, leads)
}

func TestUploadDeleteRefusesPlaceholder(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(t, http.MethodDelete, "/api/v1/admin/upload",
		map[string]string{"url": domain.PlaceholderImage}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
