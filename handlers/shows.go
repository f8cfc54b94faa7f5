package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"podwave/models"
	"podwave/services/catalog"
	"podwave/services/detail"
)

// directoryService is the subset of the catalog service the handler needs.
type directoryService interface {
	List(q catalog.ListQuery) ([]models.ShowPreview, int)
	Refresh(ctx context.Context) error
}

var _ directoryService = (*catalog.Service)(nil)

// showResolver resolves one show's detail bundle.
type showResolver interface {
	Resolve(ctx context.Context, id string) (*detail.Bundle, error)
}

var _ showResolver = (*detail.Resolver)(nil)

type ShowsHandler struct {
	Directory directoryService
	Resolver  showResolver
}

func NewShowsHandler(directory directoryService, resolver showResolver) *ShowsHandler {
	return &ShowsHandler{Directory: directory, Resolver: resolver}
}

// ListResponse wraps a directory page with its pre-pagination total.
type ListResponse struct {
	Items []models.ShowPreview `json:"items"`
	Total int                  `json:"total"`
}

// ListShows handles GET /api/shows with optional search, genre, sort,
// limit, and offset query parameters. Malformed numeric parameters are
// ignored rather than rejected.
func (h *ShowsHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := catalog.ListQuery{
		Search: strings.TrimSpace(query.Get("search")),
		Sort:   strings.ToLower(strings.TrimSpace(query.Get("sort"))),
	}
	if genreStr := query.Get("genre"); genreStr != "" {
		if parsed, err := strconv.Atoi(genreStr); err == nil && parsed > 0 {
			q.GenreID = parsed
		}
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			q.Limit = parsed
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			q.Offset = parsed
		}
	}

	items, total := h.Directory.List(q)
	writeJSON(w, http.StatusOK, ListResponse{Items: items, Total: total})
}

// GetShow handles GET /api/shows/{id} and returns the detail bundle for
// one show. Upstream failures map to the display messages the frontend
// renders inline.
func (h *ShowsHandler) GetShow(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "show id is required")
		return
	}

	bundle, err := h.Resolver.Resolve(r.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		var notFound *catalog.NotFoundError
		if errors.As(err, &notFound) {
			status = http.StatusNotFound
		}
		log.Printf("[shows] detail fetch for %q failed: %v", id, err)
		writeJSONError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

// RefreshShows handles POST /api/shows/refresh. It refetches the catalog
// and replaces the directory wholesale; on failure the previous contents
// stay in place.
func (h *ShowsHandler) RefreshShows(w http.ResponseWriter, r *http.Request) {
	if err := h.Directory.Refresh(r.Context()); err != nil {
		log.Printf("[shows] catalog refresh failed: %v", err)
		writeJSONError(w, http.StatusBadGateway, err.Error())
		return
	}
	_, total := h.Directory.List(catalog.ListQuery{})
	writeJSON(w, http.StatusOK, map[string]int{"total": total})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[handlers] encode response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
