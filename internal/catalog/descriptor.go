package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Kind is a JSON Schema primitive type.
type Kind string

// Kind values accepted in descriptor schemas.
const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// Valid reports whether k is one of the six primitives.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindInteger, KindNumber, KindBoolean, KindArray, KindObject:
		return true
	}
	return false
}

// Kinds is the set of types a property accepts. chat_id, for example, is
// either a string or an integer.
type Kinds []Kind

// Has reports whether k is in the set.
func (ks Kinds) Has(k Kind) bool {
	return slices.Contains(ks, k)
}

// UnmarshalYAML accepts a scalar or a sequence.
func (ks *Kinds) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*ks = Kinds{Kind(node.Value)}
		return nil
	case yaml.SequenceNode:
		var list []Kind
		if err := node.Decode(&list); err != nil {
			return err
		}
		*ks = list
		return nil
	default:
		return fmt.Errorf("line %d: type must be a string or a list", node.Line)
	}
}

// MarshalJSON emits a single kind as a string and several as an array.
func (ks Kinds) MarshalJSON() ([]byte, error) {
	if len(ks) == 1 {
		return json.Marshal(string(ks[0]))
	}
	return json.Marshal([]Kind(ks))
}

// Property describes one named argument of a tool.
type Property struct {
	Type        Kinds      `yaml:"type" json:"type"`
	Description string     `yaml:"description" json:"description,omitempty"`
	Enum        []string   `yaml:"enum" json:"enum,omitempty"`
	Items       *Property  `yaml:"items" json:"items,omitempty"`
	Properties  Properties `yaml:"properties" json:"properties,omitzero"`
}

// Properties is an ordered set of named properties. Declaration order is kept
// so schemas render the way they are written.
type Properties struct {
	names  []string
	byName map[string]Property
}

// Len returns the number of properties.
func (p Properties) Len() int { return len(p.names) }

// IsZero reports whether no property is declared.
func (p Properties) IsZero() bool { return len(p.names) == 0 }

// Names returns property names in declaration order.
func (p Properties) Names() []string { return slices.Clone(p.names) }

// Get returns the property called name.
func (p Properties) Get(name string) (Property, bool) {
	prop, ok := p.byName[name]
	return prop, ok
}

// UnmarshalYAML decodes a mapping while recording key order.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", node.Line)
	}

	out := Properties{byName: make(map[string]Property, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if _, dup := out.byName[key.Value]; dup {
			return fmt.Errorf("line %d: property %q declared twice", key.Line, key.Value)
		}
		var prop Property
		if err := val.Decode(&prop); err != nil {
			return fmt.Errorf("property %q: %w", key.Value, err)
		}
		out.names = append(out.names, key.Value)
		out.byName[key.Value] = prop
	}
	*p = out
	return nil
}

// MarshalJSON emits a JSON object in declaration order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.byName[name])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Descriptor is a tool exposed to the MCP host: its name, a human-readable
// description, and the shape of accepted arguments.
type Descriptor struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Required    []string   `yaml:"required"`
	Properties  Properties `yaml:"properties"`
}

// IsRequired reports whether field must be supplied.
func (d Descriptor) IsRequired(field string) bool {
	return slices.Contains(d.Required, field)
}

// inputSchema is the JSON Schema object advertised for a tool.
type inputSchema struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Required   []string   `json:"required,omitempty"`
}

// InputSchema renders the descriptor's argument shape as a JSON Schema object.
func (d Descriptor) InputSchema() (json.RawMessage, error) {
	data, err := json.Marshal(inputSchema{
		Type:       string(KindObject),
		Properties: d.Properties,
		Required:   d.Required,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: %s input schema: %w", d.Name, err)
	}
	return data, nil
}

// validate checks the descriptor's internal consistency.
func (d Descriptor) validate() []error {
	var errs []error
	if d.Description == "" {
		errs = append(errs, fmt.Errorf("catalog: %s: %w", d.Name, ErrEmptyDescription))
	}
	for _, field := range d.Required {
		if _, ok := d.Properties.Get(field); !ok {
			errs = append(errs, fmt.Errorf("catalog: %s: %w: %s", d.Name, ErrUndeclaredRequired, field))
		}
	}
	for _, name := range d.Properties.names {
		errs = append(errs, validateProperty(d.Name+"."+name, d.Properties.byName[name], true)...)
	}
	return errs
}

func validateProperty(path string, p Property, top bool) []error {
	var errs []error
	if len(p.Type) == 0 {
		errs = append(errs, fmt.Errorf("catalog: %s: %w: missing type", path, ErrInvalidKind))
	}
	for _, k := range p.Type {
		if !k.Valid() {
			errs = append(errs, fmt.Errorf("catalog: %s: %w: %q", path, ErrInvalidKind, k))
		}
	}
	if top && p.Description == "" {
		errs = append(errs, fmt.Errorf("catalog: %s: %w", path, ErrEmptyDescription))
	}
	if len(p.Enum) > 0 && (len(p.Type) != 1 || p.Type[0] != KindString) {
		errs = append(errs, fmt.Errorf("catalog: %s: %w", path, ErrInvalidEnum))
	}
	if p.Items != nil {
		errs = append(errs, validateProperty(path+"[]", *p.Items, false)...)
	}
	for _, name := range p.Properties.names {
		errs = append(errs, validateProperty(path+"."+name, p.Properties.byName[name], false)...)
	}
	return errs
}
