package ruleweaver

import (
	"regexp"
	"strconv"
)

// Text form of a rule: "<divisor>=<label>" or "<divisor>:<label>".
// Used by the CLI for rules given as arguments.

var ruleSpecRe = regexp.MustCompile(`^\s*(-?\d+)\s*[=:]\s*(\S.*?)\s*$`)

// ParseRule parses a single textual rule spec such as "3=Fizz".
func ParseRule(spec string) (Rule, error) {
	m := ruleSpecRe.FindStringSubmatch(spec)
	if m == nil {
		return Rule{}, NewInvalidRuleError(0, spec, `spec must look like "3=Fizz"`)
	}
	divisor, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Rule{}, NewInvalidRuleError(0, m[2], "divisor does not fit in an int64")
	}
	return NewRule(divisor, m[2])
}

// ParseRuleSet parses an ordered list of textual rule specs, preserving
// their order.
func ParseRuleSet(specs []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for _, spec := range specs {
		r, err := ParseRule(spec)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}
