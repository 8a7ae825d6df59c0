package httpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/vtnds/internal/platform/errors"
	"github.com/louisbranch/vtnds/internal/platform/requestctx"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw := func(mark string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called += mark
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw("1"), nil, mw("2"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestRequireMethod(t *testing.T) {
	t.Parallel()

	h := RequireMethod(http.MethodGet)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	for method, want := range map[string]int{
		http.MethodGet:  http.StatusNoContent,
		http.MethodHead: http.StatusNoContent,
		http.MethodPost: http.StatusMethodNotAllowed,
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(method, "/", nil))
		if rr.Code != want {
			t.Fatalf("%s status = %d, want %d", method, rr.Code, want)
		}
		if want == http.StatusMethodNotAllowed && rr.Header().Get("Allow") != http.MethodGet {
			t.Fatalf("Allow = %q", rr.Header().Get("Allow"))
		}
	}
}

func TestRequestIDAddsHeaderWhenMissing(t *testing.T) {
	t.Parallel()

	h := RequestID("sb")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("X-Request-ID"), "sb-") {
			t.Errorf("request id = %q, want sb- prefix", r.Header.Get("X-Request-ID"))
		}
		if got := requestctx.RequestIDFromContext(r.Context()); got != r.Header.Get("X-Request-ID") {
			t.Errorf("context request id = %q, want header value", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected response to include request id")
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	t.Parallel()

	h := RequestID("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("request id = %q, want req-123", got)
	}
}

func TestRecoverPanicLogsRequestContext(t *testing.T) {
	prevWriter := log.Writer()
	defer log.SetOutput(prevWriter)
	var buffer bytes.Buffer
	log.SetOutput(&buffer)

	h := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stories/button/primary", nil)
	req.Header.Set("X-Request-ID", "req-123")
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	logLine := buffer.String()
	for _, marker := range []string{"panic recovered", "path=/stories/button/primary", "request_id=req-123"} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("panic log missing marker %q: %q", marker, logLine)
		}
	}
}

func TestWithStaticMime(t *testing.T) {
	t.Parallel()

	h := WithStaticMime(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	for path, want := range map[string]string{
		"/static/theme.css": "text/css; charset=utf-8",
		"/static/app.JS":    "application/javascript",
		"/static/icon.svg":  "image/svg+xml",
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if got := rr.Header().Get("Content-Type"); got != want {
			t.Fatalf("%s content-type = %q, want %q", path, got, want)
		}
	}
}

func TestWriteErrorUsesTypedStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteError(rr, apperrors.E(apperrors.KindNotFound, "no such story"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}

	rr = httptest.NewRecorder()
	WriteError(rr, errors.New("boom"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}

	WriteError(nil, errors.New("ignored"))
}

func TestHTMXHelpers(t *testing.T) {
	t.Parallel()

	if IsHTMXRequest(nil) || HTMXTarget(nil) != "" {
		t.Fatalf("nil request should be non-HTMX")
	}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatalf("expected non-htmx request")
	}
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "#story-canvas")
	if !IsHTMXRequest(req) {
		t.Fatalf("expected htmx request")
	}
	if got := HTMXTarget(req); got != "story-canvas" {
		t.Fatalf("HTMXTarget = %q", got)
	}
}

func TestAcceptsHTML(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"":                                true,
		"text/html,application/xhtml+xml": true,
		"*/*":                             true,
		"application/json":                false,
		"text/plain; charset=utf-8":       false,
	}
	for accept, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		if got := AcceptsHTML(req); got != want {
			t.Errorf("AcceptsHTML(%q) = %v, want %v", accept, got, want)
		}
	}
	if !AcceptsHTML(nil) {
		t.Fatal("nil request should accept HTML")
	}
}

func TestWriteComponent(t *testing.T) {
	t.Parallel()

	ok := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>ok</p>")
		return err
	})
	rr := httptest.NewRecorder()
	if err := WriteComponent(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusCreated, ok); err != nil {
		t.Fatalf("WriteComponent() error = %v", err)
	}
	if rr.Code != http.StatusCreated || rr.Body.String() != "<p>ok</p>" {
		t.Fatalf("response = %d %q", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}

	failing := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<p>partial")
		return errors.New("broken")
	})
	rr = httptest.NewRecorder()
	if err := WriteComponent(rr, nil, http.StatusOK, failing); err == nil {
		t.Fatalf("expected render error")
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("partial output leaked: %q", rr.Body.String())
	}
}

func TestWriteHTMLRequiresWriter(t *testing.T) {
	t.Parallel()

	if err := WriteHTML(nil, http.StatusOK, "ok"); err == nil {
		t.Fatalf("expected WriteHTML(nil) error")
	}
}
