// Package config handles YAML configuration loading, environment variable
// expansion, and structural validation for tgmcp.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/flemzord/tgmcp/internal/sanitize"
)

// Config is the top-level configuration structure.
type Config struct {
	// Version is the config format version. Currently only "1" is supported.
	Version string `yaml:"version"`

	Telegram  TelegramConfig  `yaml:"telegram"`
	Sanitizer SanitizerConfig `yaml:"sanitizer"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TelegramConfig configures the Bot API transport.
type TelegramConfig struct {
	// Token is the bot token issued by BotFather ("<bot id>:<secret>").
	// Usually supplied as ${TELEGRAM_BOT_TOKEN}.
	Token string `yaml:"token"`

	// APIURL is the Bot API base URL. Point it at a local Bot API server
	// or a test double to avoid api.telegram.org.
	APIURL string `yaml:"api_url"`

	// Timeout bounds a single HTTP request.
	Timeout time.Duration `yaml:"timeout"`

	// MaxRetries is the number of attempts made when Telegram answers 429.
	MaxRetries int `yaml:"max_retries"`
}

// SanitizerConfig holds the citation marker delimiters.
type SanitizerConfig struct {
	BracketOpen  string `yaml:"bracket_open"`
	BracketClose string `yaml:"bracket_close"`
	CiteOpen     string `yaml:"cite_open"`
	CiteClose    string `yaml:"cite_close"`
}

// Delimiters converts the section to sanitizer delimiters.
func (s SanitizerConfig) Delimiters() sanitize.Delimiters {
	return sanitize.Delimiters{
		BracketOpen:  s.BracketOpen,
		BracketClose: s.BracketClose,
		CiteOpen:     s.CiteOpen,
		CiteClose:    s.CiteClose,
	}
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// SlogLevel maps Level to a slog level. Unknown values map to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TelemetryConfig enables optional trace export and metrics output.
type TelemetryConfig struct {
	// OTLPEndpoint is the host:port of an OTLP/HTTP collector.
	// Empty disables trace export.
	OTLPEndpoint string `yaml:"otlp_endpoint,omitempty"`

	// MetricsTextfile is written in Prometheus text format when the process
	// exits. Empty disables it.
	MetricsTextfile string `yaml:"metrics_textfile,omitempty"`
}

// Default returns the configuration used when no file is found. The token is
// read from TELEGRAM_BOT_TOKEN.
func Default() *Config {
	cfg := defaults()
	cfg.Telegram.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	return cfg
}

func defaults() *Config {
	d := sanitize.DefaultDelimiters()
	return &Config{
		Version: "1",
		Telegram: TelegramConfig{
			APIURL:     "https://api.telegram.org",
			Timeout:    60 * time.Second,
			MaxRetries: 3,
		},
		Sanitizer: SanitizerConfig{
			BracketOpen:  d.BracketOpen,
			BracketClose: d.BracketClose,
			CiteOpen:     d.CiteOpen,
			CiteClose:    d.CiteClose,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
