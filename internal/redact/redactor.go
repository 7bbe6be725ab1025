// Package redact scrubs Telegram bot tokens and other secrets from log output.
package redact

import (
	"regexp"
	"strings"
	"sync"
)

// Placeholder is the replacement string for redacted secrets.
const Placeholder = "***REDACTED***"

// BotTokenPattern matches Telegram bot tokens: a numeric bot id, a colon and
// the secret part.
var BotTokenPattern = regexp.MustCompile(`\d{5,}:[A-Za-z0-9_-]{30,}`)

// secretKeyPattern matches map keys that likely contain secrets.
var secretKeyPattern = regexp.MustCompile(`(?i)(secret|token|password|api_key|credential)`)

// Redactor replaces secret values in strings and maps with Placeholder.
// It matches both regex patterns (token formats) and literal values
// (the configured token). All methods are safe for concurrent use.
type Redactor struct {
	mu       sync.RWMutex
	patterns []*regexp.Regexp
	literals []string
}

// New creates a Redactor pre-loaded with BotTokenPattern.
func New() *Redactor {
	return &Redactor{
		patterns: []*regexp.Regexp{BotTokenPattern},
	}
}

// AddPattern adds a compiled regex pattern to the redactor.
func (r *Redactor) AddPattern(pattern *regexp.Regexp) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns = append(r.patterns, pattern)
}

// AddLiteral adds a literal secret value that should be redacted on sight.
// Empty strings are ignored.
func (r *Redactor) AddLiteral(secret string) {
	if secret == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.literals = append(r.literals, secret)
}

// Redact replaces all known secret patterns and literal values in s
// with Placeholder.
func (r *Redactor) Redact(s string) string {
	if s == "" {
		return s
	}

	r.mu.RLock()
	patterns := r.patterns
	literals := r.literals
	r.mu.RUnlock()

	// Literals first: a short configured token would not match the pattern.
	for _, lit := range literals {
		s = strings.ReplaceAll(s, lit, Placeholder)
	}
	for _, p := range patterns {
		s = p.ReplaceAllString(s, Placeholder)
	}
	return s
}

// Map returns a copy of m with values under secret-looking keys replaced
// and every other string value passed through Redact. Nested maps and
// slices are copied too.
func (r *Redactor) Map(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok && s != "" && secretKeyPattern.MatchString(k) {
			out[k] = Placeholder
			continue
		}
		out[k] = r.value(v)
	}
	return out
}

func (r *Redactor) value(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return r.Map(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = r.value(item)
		}
		return items
	case string:
		return r.Redact(val)
	default:
		return v
	}
}
