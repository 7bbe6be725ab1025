package config

import "errors"

var (
	// ErrNotFound is returned by ResolvePath when no config file exists.
	ErrNotFound = errors.New("config: no configuration file found")

	// ErrUnresolvedVariable marks a ${VAR} with no value and no default.
	ErrUnresolvedVariable = errors.New("unresolved variable")

	// ErrMissingToken is returned by ValidateToken for an empty token.
	ErrMissingToken = errors.New("config: telegram.token is required (set TELEGRAM_BOT_TOKEN)")

	// ErrMalformedToken is returned by ValidateToken for a token that is not
	// "<bot id>:<secret>".
	ErrMalformedToken = errors.New("config: telegram.token is malformed")
)
