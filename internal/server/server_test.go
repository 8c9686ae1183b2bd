package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-formfield/pkg/controls"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/node"
	"github.com/goliatone/go-formfield/pkg/render/page"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, source Source) (*Server, *Metrics) {
	t.Helper()
	renderer, err := page.New()
	if err != nil {
		t.Fatalf("page renderer: %v", err)
	}
	metrics := NewMetrics()
	logger := discardLogger()
	srv := NewServer(
		WithLogger(logger),
		WithMount("/", NewPreviewHandler(source, renderer, metrics, logger)),
		WithMount("/metrics", metrics.Handler()),
	)
	return srv, metrics
}

func staticSource(doc page.Document) Source {
	return func(context.Context) (page.Document, error) {
		return doc, nil
	}
}

func TestPreviewServesDocument(t *testing.T) {
	srv, _ := newTestServer(t, staticSource(page.Document{
		Title: "Preview",
		Fields: []field.Props{{
			Label: node.Text("Name"),
			Child: controls.Input(controls.WithID("name")),
		}},
	}))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != page.ContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Preview</title>") || !strings.Contains(body, `for="name"`) {
		t.Fatalf("unexpected body:\n%s", body)
	}
}

func TestPreviewRejectsPost(t *testing.T) {
	srv, _ := newTestServer(t, staticSource(page.Document{}))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestPreviewSourceErrorIsCounted(t *testing.T) {
	srv, _ := newTestServer(t, func(context.Context) (page.Document, error) {
		return page.Document{}, errors.New("broken spec file")
	})
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "broken spec file") {
		t.Fatalf("internal errors must not leak to the client")
	}

	metrics := httptest.NewRecorder()
	handler.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(metrics.Body.String(), `fieldgen_renders_total{outcome="error"} 1`) {
		t.Fatalf("expected error render to be counted:\n%s", metrics.Body.String())
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, staticSource(page.Document{}))
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	res, err := http.Get("http://" + listener.Addr().String() + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", res.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

func TestServeFailureReleasesShutdownWatcher(t *testing.T) {
	srv, _ := newTestServer(t, staticSource(page.Document{}))
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	listener.Close()

	baseline := runtime.NumGoroutine()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Serve(ctx, listener); err == nil {
		t.Fatalf("expected serve error on a closed listener")
	}

	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > baseline {
		if time.Now().After(deadline) {
			t.Fatalf("shutdown watcher still running: %d goroutines, baseline %d", runtime.NumGoroutine(), baseline)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions(WithAddress(":9999"), WithShutdownTimeout(0))
	if opts.Address != ":9999" || opts.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected options %#v", opts)
	}
}
