package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/contracts"
	"aqar-service/internal/core/port"
	"aqar-service/internal/core/port/usecases_port"
)

// CatalogHandler serves the public read-only side of the site: published
// listings, search, taxonomy and site copy.
type CatalogHandler struct {
	storage port.Storage
	findUC  usecases_port.FindPropertiesUseCasePort
}

func NewCatalogHandler(storage port.Storage, findUC usecases_port.FindPropertiesUseCasePort) *CatalogHandler {
	return &CatalogHandler{storage: storage, findUC: findUC}
}

// GetProperties handles GET /api/v1/properties (published only).
func (h *CatalogHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperties"})

	properties, err := h.storage.GetProperties(r.Context())
	if err != nil {
		logger.Error("Failed to list properties", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPropertyListResponse(properties))
}

// GetFeaturedProperties handles GET /api/v1/properties/featured.
func (h *CatalogHandler) GetFeaturedProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFeaturedProperties"})

	properties, err := h.storage.GetFeaturedProperties(r.Context())
	if err != nil {
		logger.Error("Failed to list featured properties", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list featured properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPropertyListResponse(properties))
}

// GetPropertyByID handles GET /api/v1/properties/{propertyID}. Unpublished
// listings are indistinguishable from missing ones here.
func (h *CatalogHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyByID"})

	id, err := parseIDParam(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.storage.GetPropertyByID(r.Context(), id)
	if err != nil {
		logger.Error("Failed to find property", err, port.Fields{"property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to find property")
		return
	}
	if property == nil || !property.Available {
		WriteJSONError(w, http.StatusNotFound, "property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPropertyResponse(property))
}

// SearchProperties handles POST /api/v1/properties/search. An empty filter
// object returns the same result as the plain listing.
func (h *CatalogHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchProperties"})

	body, err := readValidatedBody(r, "SearchFilters")
	if err != nil {
		var ve *contracts.ValidationError
		if errors.As(err, &ve) {
			WriteJSONValidationError(w, ve)
			return
		}
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var filters SearchFiltersRequest
	if err := json.Unmarshal(body, &filters); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	properties, err := h.findUC.Execute(r.Context(), filters.ToDomain())
	if err != nil {
		logger.Error("Property search failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "property search failed")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPropertyListResponse(properties))
}

// GetGovernorates handles GET /api/v1/governorates.
func (h *CatalogHandler) GetGovernorates(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetGovernorates"})

	governorates, err := h.storage.GetGovernorates(r.Context())
	if err != nil {
		logger.Error("Failed to list governorates", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list governorates")
		return
	}

	response := make([]GovernorateResponse, len(governorates))
	for i := range governorates {
		response[i] = NewGovernorateResponse(&governorates[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetDirectoratesByGovernorate handles
// GET /api/v1/governorates/{governorateID}/directorates.
func (h *CatalogHandler) GetDirectoratesByGovernorate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDirectoratesByGovernorate"})

	id, err := parseIDParam(r, "governorateID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid governorate id")
		return
	}

	governorate, err := h.storage.GetGovernorateByID(r.Context(), id)
	if err != nil {
		logger.Error("Failed to find governorate", err, port.Fields{"governorate_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to find governorate")
		return
	}
	if governorate == nil {
		WriteJSONError(w, http.StatusNotFound, "governorate not found")
		return
	}

	directorates, err := h.storage.GetDirectoratesByGovernorate(r.Context(), id)
	if err != nil {
		logger.Error("Failed to list directorates", err, port.Fields{"governorate_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to list directorates")
		return
	}

	response := make([]DirectorateResponse, len(directorates))
	for i := range directorates {
		response[i] = NewDirectorateResponse(&directorates[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetPropertyTypes handles GET /api/v1/property-types (active only).
func (h *CatalogHandler) GetPropertyTypes(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyTypes"})

	types, err := h.storage.GetPropertyTypes(r.Context(), true)
	if err != nil {
		logger.Error("Failed to list property types", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list property types")
		return
	}

	response := make([]PropertyTypeResponse, len(types))
	for i := range types {
		response[i] = NewPropertyTypeResponse(&types[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetSettings handles GET /api/v1/settings.
func (h *CatalogHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetSettings"})

	settings, err := h.storage.GetSettings(r.Context())
	if err != nil {
		logger.Error("Failed to list settings", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list settings")
		return
	}

	response := make([]SettingResponse, len(settings))
	for i := range settings {
		response[i] = NewSettingResponse(&settings[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}
