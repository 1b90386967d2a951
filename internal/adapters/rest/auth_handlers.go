package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
	"aqar-service/internal/core/port/usecases_port"
)

// AuthHandler covers admin login, logout and the current-admin lookup.
type AuthHandler struct {
	storage    port.AdminStorage
	loginUC    usecases_port.LoginAdminUseCasePort
	logoutUC   usecases_port.LogoutAdminUseCasePort
	sessionTTL time.Duration
}

func NewAuthHandler(storage port.AdminStorage, loginUC usecases_port.LoginAdminUseCasePort,
	logoutUC usecases_port.LogoutAdminUseCasePort, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		storage:    storage,
		loginUC:    loginUC,
		logoutUC:   logoutUC,
		sessionTTL: sessionTTL,
	}
}

// Login handles POST /api/v1/admin/login. On success the session token goes
// into an HttpOnly cookie; it is never part of the response body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	body, err := readValidatedBody(r, "Login")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, token, err := h.loginUC.Execute(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			WriteJSONError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		logger.Error("Login failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	RespondWithJSON(w, http.StatusOK, NewAdminResponse(admin))
}

// Logout handles POST /api/v1/admin/logout. The session dies server-side
// first, then the cookie is cleared.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Logout"})

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.logoutUC.Execute(r.Context(), cookie.Value); err != nil {
			logger.Error("Logout failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "logout failed")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/v1/admin/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Me"})

	adminID, ok := adminIDFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	admin, err := h.storage.GetAdminByID(r.Context(), adminID)
	if err != nil {
		logger.Error("Failed to load admin", err, port.Fields{"admin_id": adminID})
		WriteJSONError(w, http.StatusInternalServerError, "failed to load admin")
		return
	}
	if admin == nil {
		// The account disappeared while the session was live.
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewAdminResponse(admin))
}
