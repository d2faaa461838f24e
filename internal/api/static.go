package api

import (
	"embed"
	"net/http"
)

//go:embed static/index.html
var staticFiles embed.FS

// handleIndex serves the browser visualiser. It edits grids locally and
// talks to /api/demo, /api/random, /api/path and /ws/steps.
func (h *handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, staticFiles, "static/index.html")
}
