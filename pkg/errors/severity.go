// Package errors provides severity-aware error types for the analysis pipeline.
package errors

import "fmt"

// Severity indicates error impact level.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// PipeError is a structured error with context.
type PipeError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	Field       string   `json:"field,omitempty"`
	Recoverable bool     `json:"recoverable"`
}

func (e *PipeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s (field: %s)", e.Severity, e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Code, e.Message)
}

// Error codes
const (
	ErrCodeSchemaMismatch  = "SCHEMA_MISMATCH"
	ErrCodeNullValue       = "NULL_VALUE"
	ErrCodeBadClusterCount = "BAD_CLUSTER_COUNT"
	ErrCodeNotFitted       = "NOT_FITTED"
	ErrCodeUnseenCategory  = "UNSEEN_CATEGORY"
	ErrCodeSegmentNotFound = "SEGMENT_NOT_FOUND"
)

// NewSchemaError creates an error for a missing or mistyped column.
func NewSchemaError(msg, field string) *PipeError {
	return &PipeError{
		Code:        ErrCodeSchemaMismatch,
		Message:     msg,
		Severity:    SeverityFatal,
		Field:       field,
		Recoverable: false,
	}
}

// NewNullValueError creates an error for null values in a required column.
func NewNullValueError(field string, count int) *PipeError {
	return &PipeError{
		Code:        ErrCodeNullValue,
		Message:     fmt.Sprintf("column contains %d null values", count),
		Severity:    SeverityError,
		Field:       field,
		Recoverable: false,
	}
}

// NewUnseenCategoryError creates an error for a category value absent from the
// encoder's fitted vocabulary.
func NewUnseenCategoryError(field, value string) *PipeError {
	return &PipeError{
		Code:        ErrCodeUnseenCategory,
		Message:     fmt.Sprintf("category %q was not present at fit time", value),
		Severity:    SeverityError,
		Field:       field,
		Recoverable: true,
	}
}

// NewSegmentNotFoundError creates an error for a predicted segment with no
// profitability entry.
func NewSegmentNotFoundError(segment int) *PipeError {
	return &PipeError{
		Code:        ErrCodeSegmentNotFound,
		Message:     fmt.Sprintf("segment %d has no profitability entry", segment),
		Severity:    SeverityError,
		Recoverable: false,
	}
}
