package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"jobdesk/metrics"
	"jobdesk/web"
)

// Handler exposes the login/session endpoints.
type Handler struct {
	svc           *Service
	secureCookies bool
	log           *zap.SugaredLogger
}

// NewHandler creates the auth HTTP handler.  secureCookies should be true
// in production-like environments.
func NewHandler(svc *Service, secureCookies bool, log *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, secureCookies: secureCookies, log: log}
}

// Routes returns the router mounted at /api/auth.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
	r.Get("/me", h.handleMe)
	return r
}

// handleLogin validates credentials and binds the session cookie.  Unknown
// email and wrong password return identical responses.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			web.Error(w, http.StatusBadRequest, "Invalid request body")
		case errors.Is(err, ErrInvalidCredentials):
			metrics.LoginFailureTotal.Inc()
			web.Error(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			h.log.Errorw("login failed", "error", err)
			web.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	metrics.LoginSuccessTotal.Inc()
	SetSessionCookie(w, result.Token, h.secureCookies)
	web.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    result.Claims,
	})
}

// handleLogout clears the session cookie.  The token itself is not revoked.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ClearSessionCookie(w)
	web.Respond(w, http.StatusOK, map[string]any{"success": true})
}

// handleMe reports the decoded identity for the presented cookie, letting
// client-side UI determine logged-in state without trusting local storage.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := h.svc.SessionFromRequest(r)
	if claims == nil {
		web.Respond(w, http.StatusUnauthorized, map[string]any{"user": nil})
		return
	}
	web.Respond(w, http.StatusOK, map[string]any{"user": claims})
}
