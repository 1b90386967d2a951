package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/contracts"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
	"aqar-service/internal/core/port/usecases_port"
)

// LeadsHandler covers the public lead-capture forms and the admin-side lead
// listing and deletion.
type LeadsHandler struct {
	storage     port.LeadStorage
	subscribeUC usecases_port.SubscribeNewsletterUseCasePort
}

func NewLeadsHandler(storage port.LeadStorage, subscribeUC usecases_port.SubscribeNewsletterUseCasePort) *LeadsHandler {
	return &LeadsHandler{storage: storage, subscribeUC: subscribeUC}
}

// CreateContact handles POST /api/v1/contacts.
func (h *LeadsHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateContact"})

	body, err := readValidatedBody(r, "Contact")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var req ContactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.storage.CreateContact(r.Context(), &domain.Contact{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		logger.Error("Failed to create contact", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to submit contact message")
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewContactResponse(contact))
}

// SubscribeNewsletter handles POST /api/v1/newsletter. A duplicate email is
// a 409.
func (h *LeadsHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubscribeNewsletter"})

	body, err := readValidatedBody(r, "Newsletter")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var req NewsletterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subscription, err := h.subscribeUC.Execute(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadySubscribed) {
			WriteJSONError(w, http.StatusConflict, "email is already subscribed")
			return
		}
		logger.Error("Newsletter subscription failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to subscribe")
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewNewsletterResponse(subscription))
}

// CreateEntrustment handles POST /api/v1/entrustments.
func (h *LeadsHandler) CreateEntrustment(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateEntrustment"})

	body, err := readValidatedBody(r, "Entrustment")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var req EntrustmentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entrustment, err := h.storage.CreateEntrustment(r.Context(), &domain.Entrustment{
		OwnerName:     req.OwnerName,
		Phone:         req.Phone,
		Email:         req.Email,
		PropertyType:  req.PropertyType,
		GovernorateID: req.GovernorateID,
		Details:       req.Details,
	})
	if err != nil {
		logger.Error("Failed to create entrustment", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to submit entrustment")
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewEntrustmentResponse(entrustment))
}

// CreatePropertyRequest handles POST /api/v1/property-requests.
func (h *LeadsHandler) CreatePropertyRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePropertyRequest"})

	body, err := readValidatedBody(r, "PropertyRequest")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var req PropertyRequestRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.storage.CreatePropertyRequest(r.Context(), &domain.PropertyRequest{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		PropertyType:  req.PropertyType,
		GovernorateID: req.GovernorateID,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		Details:       req.Details,
	})
	if err != nil {
		logger.Error("Failed to create property request", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to submit property request")
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewPropertyRequestResponse(request))
}

// Admin side: list and delete each lead type.

func (h *LeadsHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetContacts"})

	contacts, err := h.storage.GetContacts(r.Context())
	if err != nil {
		logger.Error("Failed to list contacts", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}

	response := make([]ContactResponse, len(contacts))
	for i := range contacts {
		response[i] = NewContactResponse(&contacts[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func (h *LeadsHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	h.deleteLead(w, r, "contact", h.storage.DeleteContact)
}

func (h *LeadsHandler) GetNewsletters(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetNewsletters"})

	newsletters, err := h.storage.GetNewsletters(r.Context())
	if err != nil {
		logger.Error("Failed to list newsletter subscriptions", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list newsletter subscriptions")
		return
	}

	response := make([]NewsletterResponse, len(newsletters))
	for i := range newsletters {
		response[i] = NewNewsletterResponse(&newsletters[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func (h *LeadsHandler) DeleteNewsletter(w http.ResponseWriter, r *http.Request) {
	h.deleteLead(w, r, "newsletter subscription", h.storage.DeleteNewsletter)
}

func (h *LeadsHandler) GetEntrustments(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetEntrustments"})

	entrustments, err := h.storage.GetEntrustments(r.Context())
	if err != nil {
		logger.Error("Failed to list entrustments", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list entrustments")
		return
	}

	response := make([]EntrustmentResponse, len(entrustments))
	for i := range entrustments {
		response[i] = NewEntrustmentResponse(&entrustments[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func (h *LeadsHandler) DeleteEntrustment(w http.ResponseWriter, r *http.Request) {
	h.deleteLead(w, r, "entrustment", h.storage.DeleteEntrustment)
}

func (h *LeadsHandler) GetPropertyRequests(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyRequests"})

	requests, err := h.storage.GetPropertyRequests(r.Context())
	if err != nil {
		logger.Error("Failed to list property requests", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to list property requests")
		return
	}

	response := make([]PropertyRequestResponse, len(requests))
	for i := range requests {
		response[i] = NewPropertyRequestResponse(&requests[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func (h *LeadsHandler) DeletePropertyRequest(w http.ResponseWriter, r *http.Request) {
	h.deleteLead(w, r, "property request", h.storage.DeletePropertyRequest)
}

type deleteFunc func(ctx context.Context, id int) (bool, error)

func (h *LeadsHandler) deleteLead(w http.ResponseWriter, r *http.Request, entity string, del deleteFunc) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteLead", "entity": entity})

	id, err := parseIDParam(r, "leadID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := del(r.Context(), id)
	if err != nil {
		logger.Error("Failed to delete lead", err, port.Fields{"id": id})
		WriteJSONError(w, http.StatusInternalServerError, "failed to delete "+entity)
		return
	}
	if !deleted {
		WriteJSONError(w, http.StatusNotFound, entity+" not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondBodyError maps a body read/validation failure onto the right 400
// shape.
func respondBodyError(w http.ResponseWriter, err error) {
	var ve *contracts.ValidationError
	if errors.As(err, &ve) {
		WriteJSONValidationError(w, ve)
		return
	}
	WriteJSONError(w, http.StatusBadRequest, "invalid request body")
}
