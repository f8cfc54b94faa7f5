package handlers

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed static/*
var staticAssets embed.FS

// StaticHandler serves the embedded directory frontend.
type StaticHandler struct {
	fileServer http.Handler
}

// NewStaticHandler creates a handler for the embedded frontend assets.
func NewStaticHandler() *StaticHandler {
	staticFS, err := fs.Sub(staticAssets, "static")
	if err != nil {
		panic("failed to get static subdirectory: " + err.Error())
	}

	return &StaticHandler{
		fileServer: http.FileServer(http.FS(staticFS)),
	}
}

// ServeHTTP serves static files. The index page is always revalidated so a
// new build shows up on reload; other assets get a short cache.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path == "/" || strings.HasSuffix(path, "index.html") {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}

	h.fileServer.ServeHTTP(w, r)
}
