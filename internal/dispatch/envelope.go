package dispatch

import (
	"bytes"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewResult wraps a raw transport result in a tool-result envelope: a single
// text content block holding the result as JSON indented by two spaces.
// Bytes that are not valid JSON are passed through as text.
func NewResult(raw json.RawMessage) *mcp.CallToolResult {
	if len(raw) == 0 {
		return mcp.NewToolResultText("null")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return mcp.NewToolResultText(string(raw))
	}
	return mcp.NewToolResultText(buf.String())
}

// ResultText returns the concatenated text content of a result.
func ResultText(res *mcp.CallToolResult) string {
	if res == nil {
		return ""
	}
	var b bytes.Buffer
	for _, c := range res.Content {
		if tc, ok := mcp.AsTextContent(c); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}
