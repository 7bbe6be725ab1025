// Package telemetry sets up optional trace export and metrics output for a
// tgmcp process.
//
// Tracing uses the OpenTelemetry SDK with an OTLP/HTTP exporter when an
// endpoint is configured and a no-op provider otherwise. Metrics are
// collected in a private Prometheus registry and written in text format to a
// file on shutdown, since a CLI run is too short-lived to be scraped.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ServiceName is reported as the service.name resource attribute.
const ServiceName = "tgmcp"

// Options configures Setup.
type Options struct {
	// OTLPEndpoint is host:port or a full http(s) URL. Empty disables export.
	OTLPEndpoint string

	// MetricsTextfile receives the registry contents on Shutdown. Empty
	// disables it.
	MetricsTextfile string

	// Version is reported as service.version.
	Version string
}

// Telemetry holds the process-wide tracer provider and metrics registry.
type Telemetry struct {
	TracerProvider trace.TracerProvider
	Registry       *prometheus.Registry

	sdk      *sdktrace.TracerProvider
	textfile string
}

// Setup builds the tracer provider and metrics registry described by opts.
// Call Shutdown before exiting to flush spans and write metrics.
func Setup(ctx context.Context, opts Options) (*Telemetry, error) {
	t := &Telemetry{
		TracerProvider: noop.NewTracerProvider(),
		Registry:       prometheus.NewRegistry(),
		textfile:       opts.MetricsTextfile,
	}

	if opts.OTLPEndpoint == "" {
		return t, nil
	}

	exporter, err := otlptracehttp.New(ctx, endpointOptions(opts.OTLPEndpoint)...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating OTLP exporter: %w", err)
	}

	t.sdk = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", ServiceName),
			attribute.String("service.version", opts.Version),
		)),
	)
	t.TracerProvider = t.sdk
	return t, nil
}

// Tracing reports whether spans are exported.
func (t *Telemetry) Tracing() bool {
	return t.sdk != nil
}

// Shutdown flushes pending spans and writes the metrics textfile.
// Both steps run; their errors are joined.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.sdk != nil {
		if err := t.sdk.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("telemetry: flushing spans: %w", err))
		}
	}
	if err := WriteTextfile(t.Registry, t.textfile); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// WriteTextfile writes the metrics gathered by g to path in Prometheus text
// format. An empty path is a no-op.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("telemetry: writing metrics to %s: %w", path, err)
	}
	return nil
}

func endpointOptions(endpoint string) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}
