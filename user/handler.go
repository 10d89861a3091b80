package user

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"jobdesk/web"
)

// Handler exposes the account CRUD endpoints under /api/users.
type Handler struct {
	svc *Service
	log *zap.SugaredLogger
}

// NewHandler creates the user HTTP handler.
func NewHandler(svc *Service, log *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes returns the router mounted at /api/users.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Put("/", h.handleUpdate)
	r.Delete("/", h.handleDelete)
	return r
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Errorw("list users", "error", err)
		web.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	web.Respond(w, http.StatusOK, users)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			web.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrDuplicateEmail):
			web.Error(w, http.StatusConflict, "Email already exists")
		default:
			h.log.Errorw("create user", "error", err)
			web.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	web.Respond(w, http.StatusOK, map[string]any{"message": "success", "product": created})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID int64 `json:"id"`
	}
	fields := map[string]any{}
	if err := web.DecodeFields(r, &body, fields); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok, err := h.svc.Update(r.Context(), UpdateRequest{ID: body.ID, Fields: fields})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			web.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrDuplicateEmail):
			web.Error(w, http.StatusConflict, "Email already exists")
		default:
			h.log.Errorw("update user", "error", err)
			web.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	web.Respond(w, http.StatusOK, map[string]any{"message": statusMessage(ok), "product": map[string]any{"id": body.ID}})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID int64 `json:"id"`
	}
	if err := web.Decode(r, &body); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok, err := h.svc.Delete(r.Context(), body.ID)
	if err != nil {
		h.log.Errorw("delete user", "error", err)
		web.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	web.Respond(w, http.StatusOK, map[string]any{"message": statusMessage(ok), "product": map[string]any{"id": body.ID}})
}

func statusMessage(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
