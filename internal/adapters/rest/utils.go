package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"aqar-service/internal/contracts"

	"github.com/go-chi/chi/v5"
)

// Request bodies on the JSON endpoints are small; anything larger than this
// is rejected before parsing.
const maxJSONBodySize = 1 << 20 // 1 MiB

// WriteJSONError sends a JSON response with an "error" field and the given
// status code.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// WriteJSONValidationError sends a 400 with the per-field details from the
// schema validator.
func WriteJSONValidationError(w http.ResponseWriter, ve *contracts.ValidationError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   "validation failed",
		"details": ve.Details,
	})
}

// RespondWithJSON marshals the payload and writes it with the given status.
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// readValidatedBody reads the request body and checks it against the named
// schema. The returned bytes are safe to unmarshal into the request DTO.
func readValidatedBody(r *http.Request, requestType string) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if err := contracts.ValidateRequest(requestType, body); err != nil {
		return nil, err
	}
	return body, nil
}

// parseIDParam extracts a positive integer URL parameter.
func parseIDParam(r *http.Request, name string) (int, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s %q", name, idStr)
	}
	return id, nil
}
