package messages

import "strings"

// ViolationDelimiter separates individual field violations inside mensajeDev.
const ViolationDelimiter = "#-#"

// ValidationError aggregates field-constraint violations. The translator
// renders it with the generic error code but populates mensajeDev with each
// violation in raised order so integrators can see what failed.
type ValidationError struct {
	Violations []string
}

// NewValidationError builds a validation failure from individual violations.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Add appends a violation, preserving raised order.
func (e *ValidationError) Add(violation string) {
	e.Violations = append(e.Violations, violation)
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.DevMessage()
}

// DevMessage joins the violations with the fixed delimiter.
func (e *ValidationError) DevMessage() string {
	return strings.Join(e.Violations, ViolationDelimiter)
}
