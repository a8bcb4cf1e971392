package handlers

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// annotateResolution records a slug lookup on the request's server span.
func annotateResolution(r *http.Request, kind, slug string, found bool) {
	span := trace.SpanFromContext(r.Context())
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("portfolio.kind", kind),
		attribute.String("portfolio.slug", slug),
		attribute.Bool("portfolio.found", found),
	)
}
