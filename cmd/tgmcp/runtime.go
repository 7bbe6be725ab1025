package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/flemzord/tgmcp/internal/botapi"
	"github.com/flemzord/tgmcp/internal/config"
	"github.com/flemzord/tgmcp/internal/redact"
	"github.com/flemzord/tgmcp/internal/telemetry"
	"github.com/spf13/cobra"
)

// env is the per-invocation state shared by commands that load configuration.
type env struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

// loadEnv loads and validates the configuration named by --config (or found
// in the standard locations) and builds the redacting logger.
func loadEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, resolved, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return &env{
		cfg:     cfg,
		cfgPath: resolved,
		logger:  newLogger(cmd.ErrOrStderr(), cfg.Log, cfg.Telegram.Token),
	}, nil
}

// newLogger builds a slog logger that never prints the bot token.
func newLogger(w io.Writer, lc config.LogConfig, token string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lc.SlogLevel()}

	var inner slog.Handler
	if lc.Format == "json" {
		inner = slog.NewJSONHandler(w, opts)
	} else {
		inner = slog.NewTextHandler(w, opts)
	}

	r := redact.New()
	r.AddLiteral(token)
	return slog.New(redact.NewHandler(inner, r))
}

// newClient validates the token and builds a Bot API client wired to tel.
func (e *env) newClient(tel *telemetry.Telemetry) (*botapi.Client, error) {
	if err := config.ValidateToken(e.cfg.Telegram.Token); err != nil {
		return nil, err
	}
	metrics, err := botapi.NewMetrics(tel.Registry)
	if err != nil {
		return nil, err
	}
	tg := e.cfg.Telegram
	return botapi.NewClient(tg.Token, tg.APIURL,
		botapi.WithTimeout(tg.Timeout),
		botapi.WithMaxRetries(tg.MaxRetries),
		botapi.WithTracerProvider(tel.TracerProvider),
		botapi.WithMetrics(metrics),
	), nil
}

// setupTelemetry starts telemetry and returns a shutdown func that logs
// failures instead of masking the command's own error.
func (e *env) setupTelemetry(ctx context.Context) (*telemetry.Telemetry, func(), error) {
	tel, err := telemetry.Setup(ctx, telemetry.Options{
		OTLPEndpoint:    e.cfg.Telemetry.OTLPEndpoint,
		MetricsTextfile: e.cfg.Telemetry.MetricsTextfile,
		Version:         version,
	})
	if err != nil {
		return nil, nil, err
	}
	shutdown := func() {
		if err := tel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			e.logger.Warn("telemetry shutdown failed", "error", err)
		}
	}
	return tel, shutdown, nil
}
