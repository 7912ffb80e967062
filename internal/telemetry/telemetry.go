// Package telemetry exports game spans over OTLP/HTTP, Honeycomb by default.
package telemetry

import (
	"context"
	"errors"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "guessanumber"
	serviceVersion = "0.1.0"
)

// ErrNoEndpoint is returned by Setup when Options.EndpointURL is empty.
var ErrNoEndpoint = errors.New("telemetry endpoint not set")

// Options describes where spans are sent.
type Options struct {
	// EndpointURL is the full OTLP traces URL, e.g.
	// https://api.honeycomb.io/v1/traces.
	EndpointURL string
	APIKey      string
	Dataset     string

	// Policy is recorded on the resource so traces can be split by it.
	Policy string
}

// headers returns the Honeycomb auth headers, or nil without a key.
func (o Options) headers() map[string]string {
	if o.APIKey == "" {
		return nil
	}
	h := map[string]string{"x-honeycomb-team": o.APIKey}
	if o.Dataset != "" {
		h["x-honeycomb-dataset"] = o.Dataset
	}
	return h
}

// Setup installs a global tracer provider exporting to opts.EndpointURL and
// returns its shutdown function, which flushes pending spans.
// Until Setup runs, Tracer hands out no-op tracers.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	if opts.EndpointURL == "" {
		return nil, ErrNoEndpoint
	}

	exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(opts.EndpointURL)}
	if h := opts.headers(); h != nil {
		exporterOpts = append(exporterOpts, otlptracehttp.WithHeaders(h))
	}
	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
			attribute.String("game.policy", opts.Policy),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the tracer for one game component, e.g. "session".
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + component)
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
