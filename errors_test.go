package ruleweaver

import (
	"errors"
	"strings"
	"testing"
)

func Test_InvalidRuleError_Message(t *testing.T) {
	_, err := NewRule(0, "Fizz")
	if err == nil {
		t.Fatal("expected error for zero divisor, got nil")
	}

	ire, ok := err.(*InvalidRuleError)
	if !ok {
		t.Fatalf("expected InvalidRuleError, got %T: %v", err, err)
	}
	if ire.Divisor != 0 {
		t.Errorf("expected divisor 0, got %d", ire.Divisor)
	}
	if ire.Label != "Fizz" {
		t.Errorf("expected label 'Fizz', got %q", ire.Label)
	}
	if !strings.Contains(err.Error(), "positive") {
		t.Errorf("error message doesn't mention the positive-divisor requirement: %s", err.Error())
	}
}

func Test_InvalidInputError_Message(t *testing.T) {
	engine, err := CompileRules(MustRule(3, "Fizz"))
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	_, err = engine.EvaluateAny("fifteen")
	if err == nil {
		t.Fatal("expected error for string input, got nil")
	}

	var iie *InvalidInputError
	if !errors.As(err, &iie) {
		t.Fatalf("expected InvalidInputError, got %T: %v", err, err)
	}
	if iie.Value != "fifteen" {
		t.Errorf("expected value 'fifteen', got %v", iie.Value)
	}
	if !strings.Contains(err.Error(), "string") {
		t.Errorf("error message doesn't include the input type: %s", err.Error())
	}
}

func Test_ValidationError_Message(t *testing.T) {
	err := PrefixValidator{}.Validate([]Rule{
		MustRule(3, "Fizz"),
		MustRule(15, "FizzBuzz"),
	})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if !strings.Contains(ve.Error(), "Fizz") || !strings.Contains(ve.Error(), "FizzBuzz") {
		t.Errorf("error message doesn't name both labels: %s", ve.Error())
	}
}
