// Package fixture routes inbound requests either to the debug-aware page
// renderer or to the static fallback.
package fixture

import (
	"net/http"
	"strconv"

	"debugfixture/internal/classify"
	"debugfixture/internal/logging"
	"debugfixture/internal/render"
)

// Classifier decides which triggers a request carries.
type Classifier interface {
	Classify(req classify.Request) classify.Result
}

// Renderer turns a classification into a page.
type Renderer interface {
	Render(res classify.Result) render.Page
}

// Config wires the collaborators of a Handler.
type Config struct {
	Classifier Classifier
	Renderer   Renderer
	Static     http.Handler
	Logger     *logging.Logger
}

// Handler serves the dynamic index and delegates everything else.
type Handler struct {
	classifier Classifier
	renderer   Renderer
	static     http.Handler
	log        *logging.Logger
}

// New creates a Handler. Missing collaborators fall back to the built-in
// catalog, the stock renderer and a handler that answers 404.
func New(cfg Config) *Handler {
	h := &Handler{
		classifier: cfg.Classifier,
		renderer:   cfg.Renderer,
		static:     cfg.Static,
		log:        cfg.Logger,
	}
	if h.classifier == nil {
		h.classifier = classify.New(nil)
	}
	if h.renderer == nil {
		h.renderer = render.New()
	}
	if h.static == nil {
		h.static = http.NotFoundHandler()
	}
	if h.log == nil {
		h.log = logging.NewNop()
	}
	return h
}

// IsDynamicPath reports whether path is rendered by the fixture rather than
// served from the static tree.
func IsDynamicPath(path string) bool {
	return path == "/" || path == "/index.html"
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if !IsDynamicPath(r.URL.Path) {
		h.static.ServeHTTP(w, r)
		return
	}

	res := h.classifier.Classify(classify.FromHTTP(r))
	page := h.renderer.Render(res)

	h.log.Debug("Classified request", map[string]interface{}{
		"path":    r.URL.Path,
		"debug":   res.IsDebug(),
		"params":  res.Params,
		"headers": res.Headers,
	})

	writePage(w, r, page)
}

// writePage sends identical headers for GET and HEAD; only GET gets a body.
func writePage(w http.ResponseWriter, r *http.Request, page render.Page) {
	w.Header().Set("Content-Type", page.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(page.Body)))
	w.WriteHeader(page.Status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(page.Body)
}
