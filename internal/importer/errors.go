package importer

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three fatal input failures.
var (
	// ErrInputNotFound indicates the roster file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrUnsupportedFormat indicates the roster is not delimited text.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrSchema indicates required roster columns are missing.
	ErrSchema = errors.New("missing required columns")
)

// InputNotFoundError reports a roster path that does not exist.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file %s does not exist", e.Path)
}

func (e *InputNotFoundError) Unwrap() error { return ErrInputNotFound }

// UnsupportedFormatError reports a roster that could not be loaded as a table.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("input could not be loaded: %s", e.Reason)
	}
	return fmt.Sprintf("input file %s could not be loaded: %s", e.Path, e.Reason)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// SchemaError lists the required columns absent from a roster header.
type SchemaError struct {
	Missing  []string // In required-column order
	Provided []string // Normalized header as loaded
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing expected columns in header: %s (provided: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Provided, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// IsInputNotFound returns true if err reports a missing roster file.
func IsInputNotFound(err error) bool {
	return errors.Is(err, ErrInputNotFound)
}

// IsUnsupportedFormat returns true if err reports an unreadable roster.
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

// IsSchemaError returns true if err reports missing columns.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}
