// Package errors defines the structured error types used across the Xaheen
// CLI: template lookup, compilation and rendering failures, configuration
// validation violations, and cyclic template inheritance. Every error is
// terminal for the command invocation that produced it; commands log the
// error object and exit non-zero.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeCompile    ErrorType = "compile"
	ErrorTypeRender     ErrorType = "render"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeCycle      ErrorType = "cyclic_inheritance"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeInternal   ErrorType = "internal"
)

// XaheenError is a structured error type with context.
type XaheenError struct {
	Type       ErrorType
	Message    string
	Cause      error
	TemplateID string
	FieldPath  string
	Chain      []string // inheritance chain for cycle errors
}

// Error implements the error interface.
func (e *XaheenError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("[%s]", e.Type))

	if e.TemplateID != "" {
		parts = append(parts, "template:"+e.TemplateID)
	}
	if e.FieldPath != "" {
		parts = append(parts, "field:"+e.FieldPath)
	}
	if len(e.Chain) > 0 {
		parts = append(parts, "chain:"+strings.Join(e.Chain, " -> "))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *XaheenError) Unwrap() error {
	return e.Cause
}

// WithTemplate attaches a template id to the error.
func (e *XaheenError) WithTemplate(id string) *XaheenError {
	e.TemplateID = id
	return e
}

// Is implements error comparison by type.
func (e *XaheenError) Is(target error) bool {
	var t *XaheenError
	if errors.As(target, &t) {
		return e.Type == t.Type
	}

	return false
}

// Error creation functions

// NewNotFoundError creates an error for a missing template or parent template.
func NewNotFoundError(templateID string) *XaheenError {
	return &XaheenError{
		Type:       ErrorTypeNotFound,
		TemplateID: templateID,
		Message:    "template not found",
	}
}

// NewCompileError wraps a compiler failure with the template id.
func NewCompileError(templateID string, cause error) *XaheenError {
	return &XaheenError{
		Type:       ErrorTypeCompile,
		TemplateID: templateID,
		Message:    "template compilation failed",
		Cause:      cause,
	}
}

// NewRenderError wraps a runtime rendering failure with the template id.
func NewRenderError(templateID string, cause error) *XaheenError {
	return &XaheenError{
		Type:       ErrorTypeRender,
		TemplateID: templateID,
		Message:    "template rendering failed",
		Cause:      cause,
	}
}

// NewValidationError creates a configuration validation error for one field path.
func NewValidationError(fieldPath, message string) *XaheenError {
	return &XaheenError{
		Type:      ErrorTypeValidation,
		FieldPath: fieldPath,
		Message:   message,
	}
}

// NewCyclicInheritanceError reports a cycle in a template parent chain.
func NewCyclicInheritanceError(chain []string) *XaheenError {
	return &XaheenError{
		Type:    ErrorTypeCycle,
		Chain:   chain,
		Message: "cyclic template inheritance",
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *XaheenError {
	return &XaheenError{
		Type:    ErrorTypeConfig,
		Message: message,
		Cause:   cause,
	}
}

// NewIOError creates an I/O error.
func NewIOError(message string, cause error) *XaheenError {
	return &XaheenError{
		Type:    ErrorTypeIO,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(message string, cause error) *XaheenError {
	return &XaheenError{
		Type:    ErrorTypeInternal,
		Message: message,
		Cause:   cause,
	}
}

// Matchers

func isType(err error, t ErrorType) bool {
	var xe *XaheenError
	if errors.As(err, &xe) {
		return xe.Type == t
	}
	return false
}

// IsNotFound reports whether err is a template not-found error.
func IsNotFound(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsCompile reports whether err is a compilation error.
func IsCompile(err error) bool { return isType(err, ErrorTypeCompile) }

// IsRender reports whether err is a rendering error.
func IsRender(err error) bool { return isType(err, ErrorTypeRender) }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return isType(err, ErrorTypeValidation) }

// IsCycle reports whether err is a cyclic inheritance error.
func IsCycle(err error) bool { return isType(err, ErrorTypeCycle) }

// ValidationErrors aggregates one validation error per violated field path.
type ValidationErrors struct {
	Errors []*XaheenError
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}

	msgs := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		msgs = append(msgs, e.Error())
	}

	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (v *ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v.Errors))
	for i, e := range v.Errors {
		errs[i] = e
	}
	return errs
}

// Add appends a field violation.
func (v *ValidationErrors) Add(fieldPath, message string) {
	v.Errors = append(v.Errors, NewValidationError(fieldPath, message))
}

// OrNil returns the aggregate as an error, or nil when no violations were added.
func (v *ValidationErrors) OrNil() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return v
}
