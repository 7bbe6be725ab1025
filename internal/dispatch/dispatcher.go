// Package dispatch executes catalog tools by forwarding them to the Bot API
// transport and wrapping the result for the MCP host.
package dispatch

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"time"

	"github.com/flemzord/tgmcp/internal/catalog"
	"github.com/flemzord/tgmcp/internal/sanitize"
	"github.com/mark3labs/mcp-go/mcp"
)

// Transport performs the remote call for a tool. Implementations own
// authentication, retries and timeouts.
type Transport interface {
	Call(ctx context.Context, method string, args map[string]any) (json.RawMessage, error)
}

// Dispatcher is the single entry point through which every catalog tool runs.
// It holds no per-call state and is safe for concurrent use.
type Dispatcher struct {
	transport Transport
	sanitizer *sanitize.Sanitizer
	logger    *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSanitizer replaces the default text sanitizer.
func WithSanitizer(s *sanitize.Sanitizer) Option {
	return func(d *Dispatcher) {
		if s != nil {
			d.sanitizer = s
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a Dispatcher forwarding to transport.
func New(transport Transport, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		transport: transport,
		sanitizer: sanitize.Default(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs the tool called name with args. The text of a sendMessage
// call is sanitized first, on a copy of args; everything else is forwarded
// as supplied. Names and fields are not checked against the catalog, and
// transport errors are returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	start := time.Now()

	args, sanitized := d.prepare(name, args)

	result, err := d.transport.Call(ctx, name, args)

	d.logger.LogAttrs(ctx, slog.LevelDebug, "tool dispatched",
		slog.String("tool", name),
		slog.Bool("sanitized", sanitized),
		slog.Duration("duration", time.Since(start)),
		slog.Bool("error", err != nil),
	)

	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}

// Invoke adapts an MCP tools/call request to Dispatch.
func (d *Dispatcher) Invoke(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return d.Dispatch(ctx, req.Params.Name, req.GetArguments())
}

// prepare returns the arguments to forward and whether text was rewritten.
func (d *Dispatcher) prepare(name string, args map[string]any) (map[string]any, bool) {
	if name != catalog.SendMessage {
		return args, false
	}
	text, ok := args["text"].(string)
	if !ok {
		return args, false
	}

	out := maps.Clone(args)
	out["text"] = d.sanitizer.Strip(text)
	return out, true
}
