// Package catalog is the read-only table of tools that expose the Telegram Bot
// API messaging methods to an MCP host.
//
// The descriptors are declarative data embedded from messages.yaml. A Catalog
// is built once at startup with New and shared by pointer; nothing mutates it
// afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var messagesYAML []byte

// Catalog is an immutable, ordered set of tool descriptors.
// It is safe for concurrent use.
type Catalog struct {
	descriptors []Descriptor
	index       map[string]int
	tools       []mcp.Tool
}

// New builds the catalog of Bot API messaging tools.
func New() (*Catalog, error) {
	return Parse(messagesYAML)
}

// Parse builds a catalog from a YAML list of descriptors and validates it.
// All validation failures are reported together.
func Parse(data []byte) (*Catalog, error) {
	var descriptors []Descriptor
	if err := yaml.Unmarshal(data, &descriptors); err != nil {
		return nil, fmt.Errorf("catalog: parsing descriptors: %w", err)
	}

	c := &Catalog{
		descriptors: descriptors,
		index:       make(map[string]int, len(descriptors)),
		tools:       make([]mcp.Tool, 0, len(descriptors)),
	}

	var errs []error
	for i, d := range descriptors {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("catalog: descriptor %d: %w", i, ErrEmptyToolName))
			continue
		}
		if _, exists := c.index[name]; exists {
			errs = append(errs, fmt.Errorf("catalog: %w: %s", ErrDuplicateTool, name))
			continue
		}
		c.index[name] = i

		if verrs := d.validate(); len(verrs) > 0 {
			errs = append(errs, verrs...)
			continue
		}

		schema, err := d.InputSchema()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.tools = append(c.tools, mcp.NewToolWithRawSchema(d.Name, d.Description, schema))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.descriptors)
}

// Names returns tool names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.descriptors))
	for i, d := range c.descriptors {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the descriptor called name. The returned value shares
// storage with the catalog and must not be modified.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	i, ok := c.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return c.descriptors[i], true
}

// Get is Lookup with an ErrToolNotFound error for unknown names.
func (c *Catalog) Get(name string) (Descriptor, error) {
	d, ok := c.Lookup(name)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return d, nil
}

// Descriptors returns all descriptors in catalog order.
func (c *Catalog) Descriptors() []Descriptor {
	return slices.Clone(c.descriptors)
}

// Tools returns the MCP tool definitions in catalog order.
func (c *Catalog) Tools() []mcp.Tool {
	return slices.Clone(c.tools)
}

// Tool returns the MCP tool definition called name.
func (c *Catalog) Tool(name string) (mcp.Tool, error) {
	i, ok := c.index[name]
	if !ok {
		return mcp.Tool{}, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return c.tools[i], nil
}

// Schema returns the JSON input schema of the tool called name.
func (c *Catalog) Schema(name string) (json.RawMessage, error) {
	d, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return d.InputSchema()
}
