package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a schema or manifest definition error.
	ErrInvalidSchema = errors.New("clientgen: invalid schema")
	// ErrInvalidSelection indicates a selection that does not resolve.
	ErrInvalidSelection = errors.New("clientgen: invalid selection")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("clientgen: missing configuration")
	// ErrGenerationFailed indicates an artifact generation or write failure.
	ErrGenerationFailed = errors.New("clientgen: artifact generation failed")
	// ErrPrecondition indicates a violated precondition of the generators.
	// It signals a bug in an upstream stage, not a user error.
	ErrPrecondition = errors.New("clientgen: precondition violated")

	// ErrMissingSelectionSet is the cause of a PreconditionError raised for
	// a client field without a selection set.
	ErrMissingSelectionSet = errors.New("client field has no selection set")
	// ErrInvalidPath is the cause of a PreconditionError raised when a
	// source file cannot be imported from the artifact directory.
	ErrInvalidPath = errors.New("no relative import path")
)

// SchemaError represents a schema or manifest definition error.
type SchemaError struct {
	Type    string // Object type name
	Field   string // Field name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("clientgen: schema error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// SelectionError represents a selection that does not resolve against the
// schema, e.g. an unknown field or a scalar with a nested selection set.
type SelectionError struct {
	Type        string // Type the selection was made on
	ClientField string // Client field declaring the selection
	Selection   string
	Message     string
}

// Error implements the error interface.
func (e *SelectionError) Error() string {
	var b strings.Builder
	b.WriteString("clientgen: selection error")
	if e.Selection != "" {
		fmt.Fprintf(&b, " on %q", e.Selection)
	}
	if e.Type != "" {
		b.WriteString(" (type ")
		b.WriteString(e.Type)
		b.WriteString(")")
	}
	if e.ClientField != "" {
		b.WriteString(" in client field ")
		b.WriteString(e.ClientField)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for SelectionError.
func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// NewSelectionError creates a new SelectionError.
func NewSelectionError(typeName, clientField, selection, message string) *SelectionError {
	return &SelectionError{
		Type:        typeName,
		ClientField: clientField,
		Selection:   selection,
		Message:     message,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("clientgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("clientgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents an artifact generation or write error.
type GenerationError struct {
	Phase   string // "load", "generate", "write", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("clientgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// PreconditionError is returned by the generators when their input violates
// an invariant upstream stages must guarantee. A driver should stop the
// compilation run and report it as an internal error.
type PreconditionError struct {
	Type  string
	Field string
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	var b strings.Builder
	b.WriteString("clientgen: internal error")
	if e.Type != "" || e.Field != "" {
		b.WriteString(" for ")
		b.WriteString(e.Type)
		if e.Field != "" {
			b.WriteString(".")
			b.WriteString(e.Field)
		}
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " (path %q)", e.Path)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *PreconditionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for PreconditionError.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// NewPreconditionError creates a new PreconditionError.
func NewPreconditionError(typeName, fieldName, path string, cause error) *PreconditionError {
	return &PreconditionError{
		Type:  typeName,
		Field: fieldName,
		Path:  path,
		Cause: cause,
	}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsSelectionError reports whether the error is a SelectionError.
func IsSelectionError(err error) bool {
	var selErr *SelectionError
	return errors.As(err, &selErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsPreconditionError reports whether the error is a PreconditionError.
func IsPreconditionError(err error) bool {
	var preErr *PreconditionError
	return errors.As(err, &preErr)
}
