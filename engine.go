package ruleweaver

import (
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ===== Engine =====

// Engine is a compiled rule set. It holds an owned, immutable copy of the
// rules it was compiled from, so the same engine may be evaluated any number
// of times, from any number of goroutines, with identical results.
type Engine struct {
	rules      []Rule
	validators []Validator
}

// Compile materializes an ordered rule sequence into an Engine.
//
// The sequence is drained exactly once, here. A one-shot sequence (a
// generator that can only be ranged over a single time) is therefore safe to
// compile: every later Evaluate call sees the full captured rule set, not
// whatever remains of the input.
func Compile(rules iter.Seq[Rule], opts ...func(*Engine)) (*Engine, error) {
	e := &Engine{rules: slices.Collect(rules)}
	for _, o := range opts {
		o(e)
	}
	for _, v := range e.validators {
		if err := v.Validate(e.rules); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// CompileRules is Compile for callers holding their rules in a slice or as
// literals. The rules are copied, so mutating the caller's slice afterwards
// does not reach the engine.
func CompileRules(rules ...Rule) (*Engine, error) {
	return Compile(slices.Values(rules))
}

// WithValidator registers a compile-time rule set validator. Validators run
// once, after the rule sequence has been materialized; the first failure
// aborts compilation.
func WithValidator(v Validator) func(*Engine) {
	return func(e *Engine) { e.validators = append(e.validators, v) }
}

// Evaluate applies every rule, in compiled order, to i and concatenates the
// labels of those that match. Matching never short-circuits: all rules are
// tested against every input. When no rule matches, the decimal
// representation of i is returned instead.
func (e *Engine) Evaluate(i int64) string {
	var sb strings.Builder
	for _, r := range e.rules {
		if r.Test(i) {
			sb.WriteString(r.Label())
		}
	}
	if sb.Len() == 0 {
		return strconv.FormatInt(i, 10)
	}
	return sb.String()
}

// EvaluateAny evaluates a dynamically typed value. Every Go integer kind is
// accepted; anything else, including uint64 values beyond the int64 range,
// fails with an InvalidInputError.
func (e *Engine) EvaluateAny(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return e.Evaluate(int64(n)), nil
	case int8:
		return e.Evaluate(int64(n)), nil
	case int16:
		return e.Evaluate(int64(n)), nil
	case int32:
		return e.Evaluate(int64(n)), nil
	case int64:
		return e.Evaluate(n), nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return "", NewInvalidInputError(v, "value exceeds the int64 range")
		}
		return e.Evaluate(int64(n)), nil
	case uint8:
		return e.Evaluate(int64(n)), nil
	case uint16:
		return e.Evaluate(int64(n)), nil
	case uint32:
		return e.Evaluate(int64(n)), nil
	case uint64:
		if n > math.MaxInt64 {
			return "", NewInvalidInputError(v, "value exceeds the int64 range")
		}
		return e.Evaluate(int64(n)), nil
	default:
		return "", NewInvalidInputError(v, "not an integer")
	}
}

// Func returns the engine as a plain closure, for callers that want a
// function value rather than an object.
func (e *Engine) Func() func(int64) string {
	return e.Evaluate
}

// Rules returns a copy of the captured rule set, in compiled order.
func (e *Engine) Rules() []Rule {
	return slices.Clone(e.rules)
}

// Len returns the number of compiled rules.
func (e *Engine) Len() int { return len(e.rules) }
