package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sundayezeilo/repocatalog/internal/errx"
	"github.com/sundayezeilo/repocatalog/internal/httpx"
)

// HTTPRepositoryRequest is the JSON body of create and update requests.
// ID and Likes are accepted so a client can send back a record it fetched,
// but neither is ever applied.
type HTTPRepositoryRequest struct {
	ID    *string  `json:"id,omitempty"`
	Title string   `json:"title"`
	URL   string   `json:"url"`
	Techs []string `json:"techs"`
	Likes *int     `json:"likes,omitempty"`
}

// LikeResponse is the body returned by the like endpoint.
type LikeResponse struct {
	Likes int `json:"likes"`
}

// Handler serves the catalog over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// HandlerConfig holds configuration for the handler.
type HandlerConfig struct {
	Service Service
	Logger  *slog.Logger
}

// NewHandler creates a new Handler instance.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		service: cfg.Service,
		logger:  logger,
	}
}

// ListRepositories handles GET /repositories.
func (h *Handler) ListRepositories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	repos, err := h.service.List(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, repos)
}

// CreateRepository handles POST /repositories.
func (h *Handler) CreateRepository(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.requestLogger(r)

	req, ok := h.decodeBody(w, r, logger)
	if !ok {
		return
	}
	h.logIgnoredFields(ctx, logger, req)

	repo, err := h.service.Create(ctx, CreateRepositoryRequest{
		Title: req.Title,
		URL:   req.URL,
		Techs: req.Techs,
	})
	if err != nil {
		h.writeServiceError(ctx, w, r, err)
		return
	}

	logger.InfoContext(ctx, "repository created",
		"repository_id", repo.ID.String(),
		"title", repo.Title,
	)

	httpx.WriteJSON(w, http.StatusOK, repo)
}

// UpdateRepository handles PUT /repositories/{id}.
func (h *Handler) UpdateRepository(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.requestLogger(r)
	id := r.PathValue("id")

	req, ok := h.decodeBody(w, r, logger)
	if !ok {
		return
	}
	h.logIgnoredFields(ctx, logger, req)

	repo, err := h.service.Update(ctx, id, UpdateRepositoryRequest{
		Title: req.Title,
		URL:   req.URL,
		Techs: req.Techs,
	})
	if err != nil {
		h.writeServiceError(ctx, w, r, err)
		return
	}

	logger.InfoContext(ctx, "repository updated", "repository_id", id)

	httpx.WriteJSON(w, http.StatusOK, repo)
}

// DeleteRepository handles DELETE /repositories/{id}.
func (h *Handler) DeleteRepository(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.service.Delete(ctx, id); err != nil {
		h.writeServiceError(ctx, w, r, err)
		return
	}

	h.requestLogger(r).InfoContext(ctx, "repository deleted", "repository_id", id)

	httpx.WriteNoContent(w)
}

// LikeRepository handles POST /repositories/{id}/like.
func (h *Handler) LikeRepository(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	likes, err := h.service.Like(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, r, err)
		return
	}

	h.requestLogger(r).DebugContext(ctx, "repository liked",
		"repository_id", id,
		"likes", likes,
	)

	httpx.WriteJSON(w, http.StatusOK, LikeResponse{Likes: likes})
}

// decodeBody reads an HTTPRepositoryRequest. A missing body counts as {}.
// On failure it writes the 400 response and reports false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (HTTPRepositoryRequest, bool) {
	req, err := httpx.DecodeJSON[HTTPRepositoryRequest](r)
	if err == nil || errors.Is(err, httpx.ErrEmptyBody) {
		return req, true
	}

	logger.WarnContext(r.Context(), "failed to decode request", "error", err.Error())
	httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	return HTTPRepositoryRequest{}, false
}

func (h *Handler) logIgnoredFields(ctx context.Context, logger *slog.Logger, req HTTPRepositoryRequest) {
	if req.Likes != nil {
		logger.DebugContext(ctx, "ignoring client-supplied likes", "likes", *req.Likes)
	}
	if req.ID != nil {
		logger.DebugContext(ctx, "ignoring client-supplied id", "id", *req.ID)
	}
}

// writeServiceError translates a service error into a response. The catalog
// API reports both a bad identifier and an unknown one as 400.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	kind := errx.KindOf(err)
	logger := h.requestLogger(r)

	logAttrs := []any{
		"error", err.Error(),
		"error_kind", kind,
		"operation", errx.OpOf(err),
	}
	if id := r.PathValue("id"); id != "" {
		logAttrs = append(logAttrs, "repository_id", id)
	}

	switch kind {
	case errx.Invalid:
		logger.WarnContext(ctx, "invalid repository identifier", logAttrs...)
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorKindToCode(kind), "invalid identifier")

	case errx.NotFound:
		logger.WarnContext(ctx, "repository not found", logAttrs...)
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorKindToCode(kind), "repository not found")

	case errx.Unavailable:
		logger.ErrorContext(ctx, "catalog unavailable", logAttrs...)
		httpx.WriteError(w, httpx.ErrorKindToStatus(kind), httpx.ErrorKindToCode(kind),
			"unable to process the request at this time, please try again")

	default:
		logger.ErrorContext(ctx, "unexpected catalog error", logAttrs...)
		httpx.WriteError(w, httpx.ErrorKindToStatus(kind), httpx.ErrorKindToCode(kind),
			"an unexpected error occurred")
	}
}

func (h *Handler) requestLogger(r *http.Request) *slog.Logger {
	return h.logger.With(
		"request_id", httpx.GetRequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
	)
}
