package ruleweaver

import (
	"fmt"
	"strings"
)

// Validator is an interface for validating a rule set at compile time.
type Validator interface {
	// Validate checks the materialized rule set.
	// Returns nil if valid, or an error if invalid.
	Validate(rules []Rule) error
}

// FuncValidator uses a custom function to validate a rule set.
type FuncValidator struct {
	ValidateFunc func(rules []Rule) error
}

// Validate implements the Validator interface.
func (v *FuncValidator) Validate(rules []Rule) error {
	return v.ValidateFunc(rules)
}

// PrefixValidator rejects rule sets in which one rule's label is a prefix of
// another's. Such sets still evaluate fine, but their output can no longer
// be decomposed unambiguously back into the rules that produced it, so
// callers that need that property can opt in to this check.
type PrefixValidator struct{}

// Validate implements the Validator interface.
func (PrefixValidator) Validate(rules []Rule) error {
	for i, a := range rules {
		for j, b := range rules {
			if i == j {
				continue
			}
			if strings.HasPrefix(b.Label(), a.Label()) {
				return NewValidationError(fmt.Sprintf(
					"label %q of rule %d is a prefix of label %q of rule %d",
					a.Label(), i, b.Label(), j))
			}
		}
	}
	return nil
}
