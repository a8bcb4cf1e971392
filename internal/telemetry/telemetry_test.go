package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), "portfolio", "")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestHandlerPassesThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()
	Handler(inner, "test").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

type recordingExporter struct {
	shutdowns int
}

func (e *recordingExporter) ExportSpans(context.Context, []sdktrace.ReadOnlySpan) error { return nil }

func (e *recordingExporter) Shutdown(context.Context) error {
	e.shutdowns++
	return nil
}

func TestSetupReleasesExporterWhenResourceFails(t *testing.T) {
	exporter := &recordingExporter{}
	restoreExporter, restoreResource := newExporter, newResource
	t.Cleanup(func() { newExporter, newResource = restoreExporter, restoreResource })
	newExporter = func(context.Context, string) (sdktrace.SpanExporter, error) { return exporter, nil }
	newResource = func(context.Context, string) (*resource.Resource, error) {
		return nil, errors.New("bad attributes")
	}

	shutdown, err := Setup(context.Background(), "portfolio", "http://127.0.0.1:4318")
	if err == nil {
		t.Fatal("expected resource error")
	}
	if exporter.shutdowns != 1 {
		t.Fatalf("exporter shut down %d times, want 1", exporter.shutdowns)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
