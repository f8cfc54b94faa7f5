package handlers

import (
	"net/http"

	"podwave/models"
)

// genreLister returns the static genre reference list.
type genreLister interface {
	List() []models.Genre
}

type GenresHandler struct {
	Genres genreLister
}

func NewGenresHandler(genres genreLister) *GenresHandler {
	return &GenresHandler{Genres: genres}
}

// ListGenres handles GET /api/genres.
func (h *GenresHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Genres.List())
}
