package catalog

import "errors"

var (
	// ErrToolNotFound is returned when a tool is not found in the catalog.
	ErrToolNotFound = errors.New("tool not found")

	// ErrEmptyToolName is returned when a descriptor has an empty name.
	ErrEmptyToolName = errors.New("tool name must not be empty")

	// ErrDuplicateTool is returned when two descriptors share a name.
	ErrDuplicateTool = errors.New("tool already declared")

	// ErrEmptyDescription is returned when a descriptor or property has no description.
	ErrEmptyDescription = errors.New("description must not be empty")

	// ErrUndeclaredRequired is returned when a required field is not a declared property.
	ErrUndeclaredRequired = errors.New("required field is not a declared property")

	// ErrInvalidKind is returned for a property type outside the JSON Schema primitives.
	ErrInvalidKind = errors.New("invalid property kind")

	// ErrInvalidEnum is returned when an enum is declared on a non-string property.
	ErrInvalidEnum = errors.New("enum is only allowed on string properties")
)
