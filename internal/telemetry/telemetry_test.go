package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestSetupDisabled(t *testing.T) {
	t.Parallel()

	tel, err := Setup(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if tel.Tracing() {
		t.Error("Tracing() = true without endpoint")
	}
	_, span := tel.TracerProvider.Tracer("test").Start(context.Background(), "op")
	if span.SpanContext().IsValid() {
		t.Error("no-op provider produced a valid span")
	}
	span.End()
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
}

func TestSetupWithEndpoint(t *testing.T) {
	t.Parallel()

	for _, endpoint := range []string{"localhost:4318", "http://localhost:4318/v1/traces"} {
		tel, err := Setup(context.Background(), Options{OTLPEndpoint: endpoint, Version: "test"})
		if err != nil {
			t.Fatalf("Setup(%q) error: %v", endpoint, err)
		}
		if !tel.Tracing() {
			t.Errorf("Tracing() = false for %q", endpoint)
		}

		// No spans were started, so shutdown has nothing to export.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		if err := tel.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown() error: %v", err)
		}
		cancel()
	}
}

func TestShutdownWritesTextfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tgmcp.prom")
	tel, err := Setup(context.Background(), Options{MetricsTextfile: path})
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "tgmcp_test_total", Help: "test"})
	tel.Registry.MustRegister(counter)
	counter.Add(3)

	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading textfile: %v", err)
	}
	if !strings.Contains(string(data), "tgmcp_test_total 3") {
		t.Errorf("textfile missing counter:\n%s", data)
	}
}

func TestWriteTextfileEmptyPath(t *testing.T) {
	t.Parallel()
	if err := WriteTextfile(prometheus.NewRegistry(), ""); err != nil {
		t.Errorf("WriteTextfile() error: %v", err)
	}
}

func TestWriteTextfileBadPath(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "dir", "m.prom")
	if err := WriteTextfile(prometheus.NewRegistry(), path); err == nil {
		t.Error("expected error for unwritable path")
	}
}
