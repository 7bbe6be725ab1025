// Package botapi is the transport to the Telegram Bot API used by the tool
// dispatcher.
//
// It provides:
//
//   - A JSON-over-HTTPS client with 429 Retry-After handling
//   - Typed request bodies for the messaging methods, with strict decoding
//     from loosely-typed argument maps
//   - An OpenTelemetry span and Prometheus observations per API call
//
// No external Telegram library is used; the client speaks the Bot API via
// raw net/http + encoding/json.
package botapi
