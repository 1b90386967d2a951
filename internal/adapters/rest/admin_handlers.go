package rest

import (
	"encoding/json"
	"net/http"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
	"aqar-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// AdminHandler covers the back-office CRUD: properties (including
// unpublished), taxonomy and site settings.
type AdminHandler struct {
	storage         port.Storage
	upsertSettingUC usecases_port.UpsertSettingUseCasePort
}

func NewAdminHandler(storage port.Storage, upsertSettingUC usecases_port.UpsertSettingUseCasePort) *AdminHandler {
	return &AdminHandler{storage: storage, upsertSettingUC: upsertSettingUC}
}

// GetAllProperties handles GET /api/v1/admin/properties — the only listing
// that includes unpublished rows.
func (h *AdminHandler) GetAllProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetAllProperties"})

	properties, err := h.storage.GetAllProperties(r.Context())
	if err != nil {
		logger.Error("Failed to list properties", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPropertyListResponse(properties))
}

// GetProperty handles GET /api/v1/admin/properties/{propertyID}; unlike the
// public detail it also returns unpublished rows.
func (h *AdminHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})

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
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPropertyResponse(property))
}

// CreateProperty handles POST /api/v1/admin/properties.
func (h *AdminHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	payload, ok := h.decodePropertyPayload(w, r)
	if !ok {
		return
	}

	property, err := h.storage.CreateProperty(r.Context(), payload.ToDomain())
	if err != nil {
		logger.Error("Failed to create property", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to create property")
		return
	}

	logger.Info("Property created.", port.Fields{"property_id": property.ID})
	RespondWithJSON(w, http.StatusCreated, NewPropertyResponse(property))
}

// UpdateProperty handles PUT /api/v1/admin/properties/{propertyID}. The
// payload replaces the row wholesale.
func (h *AdminHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	id, err := parseIDParam(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	payload, ok := h.decodePropertyPayload(w, r)
	if !ok {
		return
	}

	property, err := h.storage.UpdateProperty(r.Context(), id, payload.ToDomain())
	if err != nil {
		logger.Error("Failed to update property", err, port.Fields{"property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to update property")
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPropertyResponse(property))
}

// DeleteProperty handles DELETE /api/v1/admin/properties/{propertyID}.
func (h *AdminHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	id, err := parseIDParam(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	deleted, err := h.storage.DeleteProperty(r.Context(), id)
	if err != nil {
		logger.Error("Failed to delete property", err, port.Fields{"property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to delete property")
		return
	}
	if !deleted {
		WriteJSONError(w, http.StatusNotFound, "property not found")
		return
	}

	logger.Info("Property deleted.", port.Fields{"property_id": id})
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) decodePropertyPayload(w http.ResponseWriter, r *http.Request) (*PropertyPayload, bool) {
	body, err := readValidatedBody(r, "Property")
	if err != nil {
		respondBodyError(w, err)
		return nil, false
	}

	var payload PropertyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &payload, true
}

// Governorate CRUD.

func (h *AdminHandler) CreateGovernorate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateGovernorate"})

	body, err := readValidatedBody(r, "Governorate")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var payload GovernoratePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	governorate, err := h.storage.CreateGovernorate(r.Context(), &domain.Governorate{
		NameAr: payload.NameAr,
		NameEn: payload.NameEn,
	})
	if err != nil {
		logger.Error("Failed to create governorate", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to create governorate")
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewGovernorateResponse(governorate))
}

func (h *AdminHandler) UpdateGovernorate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateGovernorate"})

	id, err := parseIDParam(r, "governorateID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid governorate id")
		return
	}

	body, err := readValidatedBody(r, "Governorate")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var payload GovernoratePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	governorate, err := h.storage.UpdateGovernorate(r.Context(), id, &domain.Governorate{
		NameAr: payload.NameAr,
		NameEn: payload.NameEn,
	})
	if err != nil {
		logger.Error("Failed to update governorate", err, port.Fields{"governorate_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to update governorate")
		return
	}
	if governorate == nil {
		WriteJSONError(w, http.StatusNotFound, "governorate not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewGovernorateResponse(governorate))
}

func (h *AdminHandler) DeleteGovernorate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteGovernorate"})

	id, err := parseIDParam(r, "governorateID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid governorate id")
		return
	}

	deleted, err := h.storage.DeleteGovernorate(r.Context(), id)
	if err != nil {
		logger.Error("Failed to delete governorate", err, port.Fields{"governorate_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to delete governorate")
		return
	}
	if !deleted {
		WriteJSONError(w, http.StatusNotFound, "governorate not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Directorate CRUD.

func (h *AdminHandler) GetDirectorates(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDirectorates"})

	directorates, err := h.storage.GetDirectorates(r.Context())
	if err != nil {
		logger.Error("Failed to list directorates", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list directorates")
		return
	}

	response := make([]DirectorateResponse, len(directorates))
	for i := range directorates {
		response[i] = NewDirectorateResponse(&directorates[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func (h *AdminHandler) CreateDirectorate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateDirectorate"})

	body, err := readValidatedBody(r, "Directorate")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var payload DirectoratePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The parent must exist; a dangling reference would break the public
	// governorate → directorates listing.
	parent, err := h.storage.GetGovernorateByID(r.Context(), payload.GovernorateID)
	if err != nil {
		logger.Error("Failed to check governorate", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to create directorate")
		return
	}
	if parent == nil {
		WriteJSONError(w, http.StatusBadRequest, "governorate does not exist")
		return
	}

	directorate, err := h.storage.CreateDirectorate(r.Context(), &domain.Directorate{
		GovernorateID: payload.GovernorateID,
		NameAr:        payload.NameAr,
		NameEn:        payload.NameEn,
	})
	if err != nil {
		logger.Error("Failed to create directorate", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to create directorate")
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewDirectorateResponse(directorate))
}

func (h *AdminHandler) UpdateDirectorate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateDirectorate"})

	id, err := parseIDParam(r, "directorateID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid directorate id")
		return
	}

	body, err := readValidatedBody(r, "Directorate")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var payload DirectoratePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	directorate, err := h.storage.UpdateDirectorate(r.Context(), id, &domain.Directorate{
		GovernorateID: payload.GovernorateID,
		NameAr:        payload.NameAr,
		NameEn:        payload.NameEn,
	})
	if err != nil {
		logger.Error("Failed to update directorate", err, port.Fields{"directorate_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to update directorate")
		return
	}
	if directorate == nil {
		WriteJSONError(w, http.StatusNotFound, "directorate not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewDirectorateResponse(directorate))
}

func (h *AdminHandler) DeleteDirectorate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteDirectorate"})

	id, err := parseIDParam(r, "directorateID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid directorate id")
		return
	}

	deleted, err := h.storage.DeleteDirectorate(r.Context(), id)
	if err != nil {
		logger.Error("Failed to delete directorate", err, port.Fields{"directorate_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to delete directorate")
		return
	}
	if !deleted {
		WriteJSONError(w, http.StatusNotFound, "directorate not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Property type CRUD.

func (h *AdminHandler) GetPropertyTypes(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyTypes"})

	// Admin sees inactive types too.
	types, err := h.storage.GetPropertyTypes(r.Context(), false)
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

func (h *AdminHandler) CreatePropertyType(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePropertyType"})

	payload, ok := h.decodePropertyTypePayload(w, r)
	if !ok {
		return
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	propertyType, err := h.storage.CreatePropertyType(r.Context(), &domain.PropertyType{
		NameAr: payload.NameAr,
		NameEn: payload.NameEn,
		Active: active,
	})
	if err != nil {
		logger.Error("Failed to create property type", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to create property type")
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewPropertyTypeResponse(propertyType))
}

func (h *AdminHandler) UpdatePropertyType(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdatePropertyType"})

	id, err := parseIDParam(r, "propertyTypeID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property type id")
		return
	}

	payload, ok := h.decodePropertyTypePayload(w, r)
	if !ok {
		return
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	propertyType, err := h.storage.UpdatePropertyType(r.Context(), id, &domain.PropertyType{
		NameAr: payload.NameAr,
		NameEn: payload.NameEn,
		Active: active,
	})
	if err != nil {
		logger.Error("Failed to update property type", err, port.Fields{"property_type_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to update property type")
		return
	}
	if propertyType == nil {
		WriteJSONError(w, http.StatusNotFound, "property type not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPropertyTypeResponse(propertyType))
}

func (h *AdminHandler) DeletePropertyType(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeletePropertyType"})

	id, err := parseIDParam(r, "propertyTypeID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property type id")
		return
	}

	deleted, err := h.storage.DeletePropertyType(r.Context(), id)
	if err != nil {
		logger.Error("Failed to delete property type", err, port.Fields{"property_type_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to delete property type")
		return
	}
	if !deleted {
		WriteJSONError(w, http.StatusNotFound, "property type not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) decodePropertyTypePayload(w http.ResponseWriter, r *http.Request) (*PropertyTypePayload, bool) {
	body, err := readValidatedBody(r, "PropertyType")
	if err != nil {
		respondBodyError(w, err)
		return nil, false
	}

	var payload PropertyTypePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &payload, true
}

// UpsertSetting handles PUT /api/v1/admin/settings/{key}.
func (h *AdminHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpsertSetting"})

	key := chi.URLParam(r, "key")
	if key == "" {
		WriteJSONError(w, http.StatusBadRequest, "setting key is required")
		return
	}

	body, err := readValidatedBody(r, "SiteSetting")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var payload SettingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	setting, err := h.upsertSettingUC.Execute(r.Context(), key, payload.Value)
	if err != nil {
		logger.Error("Failed to upsert setting", err, port.Fields{"key": key})
		WriteJSONError(w, http.StatusInternalServerError, "failed to update setting")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewSettingResponse(setting))
}
