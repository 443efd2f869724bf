package ruleweaver

import "strconv"

// Rule pairs a positive divisor with the label emitted when an input is
// divisible by it. Rules are immutable values; two rules with the same
// divisor and label are interchangeable.
type Rule struct {
	divisor int64
	label   string
}

// NewRule builds a validated rule. The divisor must be at least 1 and the
// label non-empty; anything else is rejected here rather than surfacing as a
// division fault during evaluation.
func NewRule(divisor int64, label string) (Rule, error) {
	if divisor < 1 {
		return Rule{}, NewInvalidRuleError(divisor, label, "divisor must be a positive integer")
	}
	if label == "" {
		return Rule{}, NewInvalidRuleError(divisor, label, "label must not be empty")
	}
	return Rule{divisor: divisor, label: label}, nil
}

// MustRule is NewRule for rule literals; it panics on an invalid rule.
func MustRule(divisor int64, label string) Rule {
	r, err := NewRule(divisor, label)
	if err != nil {
		panic(err)
	}
	return r
}

// Test reports whether the rule applies to i, i.e. whether i is evenly
// divisible by the rule's divisor. Zero and negative inputs follow Go's
// modulo semantics, so Test(0) is true for every rule.
func (r Rule) Test(i int64) bool {
	return i%r.divisor == 0
}

// Divisor returns the rule's divisor.
func (r Rule) Divisor() int64 { return r.divisor }

// Label returns the rule's label.
func (r Rule) Label() string { return r.label }

// String renders the rule by its label, which is the textual form used when
// matched labels are concatenated into output.
func (r Rule) String() string { return r.label }

// GoString renders the rule as a constructor call, for test failure output.
func (r Rule) GoString() string {
	return "ruleweaver.MustRule(" + strconv.FormatInt(r.divisor, 10) + ", " + strconv.Quote(r.label) + ")"
}
