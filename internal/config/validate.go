package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"time"
)

var (
	tokenPattern = regexp.MustCompile(`^\d+:[A-Za-z0-9_-]+$`)

	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Timeout and retry bounds accepted by Validate.
const (
	MinTimeout    = time.Second
	MaxTimeout    = 5 * time.Minute
	MinMaxRetries = 1
	MaxMaxRetries = 10
)

// Validate checks the structural validity of a Config. The token is not
// required here; commands that talk to the Bot API call ValidateToken.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Version == "" {
		errs = append(errs, errors.New("config: version field is required"))
	} else if cfg.Version != "1" {
		errs = append(errs, fmt.Errorf("config: unsupported version %q (supported: \"1\")", cfg.Version))
	}

	errs = append(errs, validateTelegram(cfg.Telegram)...)

	if err := cfg.Sanitizer.Delimiters().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("config: sanitizer: %w", err))
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("config: log.level %q is not one of %v", cfg.Log.Level, logLevels))
	}
	if !slices.Contains(logFormats, cfg.Log.Format) {
		errs = append(errs, fmt.Errorf("config: log.format %q is not one of %v", cfg.Log.Format, logFormats))
	}

	return errors.Join(errs...)
}

func validateTelegram(tg TelegramConfig) []error {
	var errs []error

	if u, err := url.Parse(tg.APIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("config: telegram.api_url %q must be an absolute http(s) URL", tg.APIURL))
	}
	if tg.Timeout < MinTimeout || tg.Timeout > MaxTimeout {
		errs = append(errs, fmt.Errorf("config: telegram.timeout %s out of range [%s, %s]", tg.Timeout, MinTimeout, MaxTimeout))
	}
	if tg.MaxRetries < MinMaxRetries || tg.MaxRetries > MaxMaxRetries {
		errs = append(errs, fmt.Errorf("config: telegram.max_retries %d out of range [%d, %d]", tg.MaxRetries, MinMaxRetries, MaxMaxRetries))
	}
	return errs
}

// ValidateToken checks that a bot token is present and well formed. The
// token itself never appears in the returned error.
func ValidateToken(token string) error {
	if token == "" {
		return ErrMissingToken
	}
	if !tokenPattern.MatchString(token) {
		return ErrMalformedToken
	}
	return nil
}
