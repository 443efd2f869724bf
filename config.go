package ruleweaver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesFile represents an on-disk rule set, e.g.:
//
//	version: "1"
//	rules:
//	  - divisor: 3
//	    label: Fizz
//	  - divisor: 5
//	    label: Buzz
type RulesFile struct {
	Version string       `yaml:"version"`
	Rules   []RuleConfig `yaml:"rules"`
}

// RuleConfig is a single rule entry in a rules file.
type RuleConfig struct {
	Divisor int64  `yaml:"divisor"`
	Label   string `yaml:"label"`
}

// LoadRules loads a rule set from a YAML file.
func LoadRules(path string) (*RulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var rf RulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	return &rf, nil
}

// RuleSet validates the file's entries and returns them as rules, in file
// order.
func (f *RulesFile) RuleSet() ([]Rule, error) {
	rules := make([]Rule, 0, len(f.Rules))
	for i, rc := range f.Rules {
		r, err := NewRule(rc.Divisor, rc.Label)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
