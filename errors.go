package ruleweaver

import "fmt"

// InvalidRuleError reports a rule that cannot participate in evaluation,
// typically a zero or negative divisor.
type InvalidRuleError struct {
	Divisor int64  // Divisor the caller supplied
	Label   string // Label the caller supplied
	Message string // What was wrong with the rule
}

// Error implements the error interface.
func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid rule (%d, %q): %s", e.Divisor, e.Label, e.Message)
}

// InvalidInputError reports an evaluation input outside the supported
// integer domain.
type InvalidInputError struct {
	Value   any    // The rejected value
	Message string // Why it was rejected
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %v (%T): %s", e.Value, e.Value, e.Message)
}

// ValidationError reports a rule set that failed a compile-time validator.
type ValidationError struct {
	Message string // What the validator objected to
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("rule set validation failed: %s", e.Message)
}

// NewInvalidRuleError creates a new InvalidRuleError.
func NewInvalidRuleError(divisor int64, label, message string) *InvalidRuleError {
	return &InvalidRuleError{Divisor: divisor, Label: label, Message: message}
}

// NewInvalidInputError creates a new InvalidInputError.
func NewInvalidInputError(value any, message string) *InvalidInputError {
	return &InvalidInputError{Value: value, Message: message}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
