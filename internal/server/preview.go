package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/goliatone/go-formfield/pkg/node"
	"github.com/goliatone/go-formfield/pkg/render/page"
)

// Source produces the document to preview. It runs on every request so edits
// to the underlying files show up on reload.
type Source func(ctx context.Context) (page.Document, error)

// PreviewHandler renders the document from source on each GET.
type PreviewHandler struct {
	source   Source
	renderer *page.Renderer
	metrics  *Metrics
	logger   *slog.Logger
}

func NewPreviewHandler(source Source, renderer *page.Renderer, metrics *Metrics, logger *slog.Logger) *PreviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreviewHandler{source: source, renderer: renderer, metrics: metrics, logger: logger}
}

// ServeHTTP implements http.Handler.
func (h *PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	started := time.Now()

	out, err := h.render(ctx)
	h.metrics.Observe(started, err)
	if err != nil {
		h.logger.ErrorContext(ctx, "could not render preview", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	templ.Handler(node.ToComponent(node.HTML(out)),
		templ.WithContentType(page.ContentType),
	).ServeHTTP(w, r)
}

func (h *PreviewHandler) render(ctx context.Context) ([]byte, error) {
	doc, err := h.source(ctx)
	if err != nil {
		return nil, err
	}
	return h.renderer.Render(ctx, doc)
}

var _ http.Handler = &PreviewHandler{}
