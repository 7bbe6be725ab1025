package botapi

import "errors"

var (
	// ErrUnknownMethod is returned by Decode for a method without a typed request.
	ErrUnknownMethod = errors.New("botapi: unknown method")

	// ErrMaxRetries is returned when every attempt was rate limited.
	ErrMaxRetries = errors.New("botapi: max retries exceeded")
)
