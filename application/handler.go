package application

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"jobdesk/web"
)

// Handler exposes the application CRUD endpoints under /api/apply.
type Handler struct {
	svc *Service
	log *zap.SugaredLogger
}

// NewHandler creates the application HTTP handler.
func NewHandler(svc *Service, log *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes returns the router mounted at /api/apply.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Put("/", h.handleUpdate)
	r.Delete("/", h.handleDelete)
	return r
}

// handleList returns all applications, or the subset for one posting when
// ?ad_id= is present.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var (
		apps []Application
		err  error
	)
	if raw := r.URL.Query().Get("ad_id"); raw != "" {
		adID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			web.Error(w, http.StatusBadRequest, "Invalid ad_id")
			return
		}
		apps, err = h.svc.ListByAd(r.Context(), adID)
	} else {
		apps, err = h.svc.List(r.Context())
	}
	if err != nil {
		h.log.Errorw("list applications", "error", err)
		web.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	web.Respond(w, http.StatusOK, apps)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			web.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Errorw("create application", "error", err)
		web.Error(w, http.StatusInternalServerError, "Internal server error")
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
		if errors.Is(err, ErrInvalidRequest) {
			web.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Errorw("update application", "error", err, "id", body.ID)
		web.Error(w, http.StatusInternalServerError, "Internal server error")
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
		h.log.Errorw("delete application", "error", err, "id", body.ID)
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
