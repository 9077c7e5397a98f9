package web

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"inventory-tracker/internal/app"
	webui "inventory-tracker/web"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and serves the JSON API plus the
// embedded frontend.
type Handler struct {
	svc        app.ApplicationService
	fileServer http.Handler
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	staticFS, err := fs.Sub(webui.Static, "static")
	if err != nil {
		panic("web/static embed sub-FS failed: " + err.Error())
	}

	h := &Handler{
		svc:        svc,
		fileServer: http.FileServer(http.FS(staticFS)),
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Frontend (embedded static page) ──────────────────────────────────────
	r.Get("/", h.index)
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		http.StripPrefix("/static", h.fileServer).ServeHTTP(w, req)
	})

	// ── JSON API ──────────────────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		r.Get("/api/health", h.health)

		r.Get("/api/items", h.listItems)
		r.Post("/api/items", h.createItem)
		r.Put("/api/items/{id}", h.updateItem)
		r.Delete("/api/items/{id}", h.deleteItem)
	})

	return r
}

// index serves the single-page frontend.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	r.URL.Path = "/index.html"
	h.fileServer.ServeHTTP(w, r)
}

// health returns service status and the current item count.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListItems(r.Context())
	count := 0
	if err == nil {
		count = len(result.Items)
	}

	type response struct {
		Status string `json:"status"`
		Items  int    `json:"items"`
	}

	writeJSON(w, http.StatusOK, response{Status: "ok", Items: count})
}

// decodeJSON decodes the request body into v and returns false + writes an
// appropriate error response on failure. Returns HTTP 413 when the body
// exceeds the RequestBodyLimit; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
