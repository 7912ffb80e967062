package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// restoreProvider puts back the global tracer provider after the test.
func restoreProvider(t *testing.T) {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	restoreProvider(t)
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	_, span := Tracer("session").Start(context.Background(), "session.start")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("Expected 1 ended span, got %d", len(ended))
	}
	if got := ended[0].InstrumentationScope().Name; got != "guessanumber/session" {
		t.Errorf("Tracer scope = %q, want %q", got, "guessanumber/session")
	}
}

func TestHeaders(t *testing.T) {
	tests := []struct {
		opts    Options
		team    string
		dataset string
	}{
		{Options{}, "", ""},
		{Options{APIKey: "key"}, "key", ""},
		{Options{APIKey: "key", Dataset: "games"}, "key", "games"},
		{Options{Dataset: "games"}, "", ""},
	}

	for _, tt := range tests {
		h := tt.opts.headers()
		if h["x-honeycomb-team"] != tt.team {
			t.Errorf("headers(%+v) team = %q, want %q", tt.opts, h["x-honeycomb-team"], tt.team)
		}
		if h["x-honeycomb-dataset"] != tt.dataset {
			t.Errorf("headers(%+v) dataset = %q, want %q", tt.opts, h["x-honeycomb-dataset"], tt.dataset)
		}
	}
}

func TestSetupRequiresEndpoint(t *testing.T) {
	if _, err := Setup(context.Background(), Options{}); !errors.Is(err, ErrNoEndpoint) {
		t.Errorf("Setup() error = %v, want ErrNoEndpoint", err)
	}
}

func TestSetupExportsWithHeaders(t *testing.T) {
	restoreProvider(t)

	var (
		mu      sync.Mutex
		team    string
		dataset string
		path    string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		team = r.Header.Get("x-honeycomb-team")
		dataset = r.Header.Get("x-honeycomb-dataset")
		path = r.URL.Path
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx := context.Background()
	shutdown, err := Setup(ctx, Options{
		EndpointURL: srv.URL + "/v1/traces",
		APIKey:      "secret-key",
		Dataset:     "guesses",
		Policy:      "bisect",
	})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	_, span := Tracer("test").Start(ctx, "test.span")
	span.End()

	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if path != "/v1/traces" {
		t.Errorf("export path = %q, want /v1/traces", path)
	}
	if team != "secret-key" || dataset != "guesses" {
		t.Errorf("export headers = (%q, %q), want (secret-key, guesses)", team, dataset)
	}
}
