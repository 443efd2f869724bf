// Package main provides the ruleweaver binary entry point.
// It compiles a divisibility rule set from a YAML file or from positional
// "N=Label" specs and prints the evaluation of a range of integers.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/grahms/ruleweaver"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		rulesPath string
		start     int64
		count     int64
		check     bool
	)

	cmd := &cobra.Command{
		Use:   "ruleweaver [N=Label ...]",
		Short: "Evaluate divisibility rules over a range of integers",
		Long: `Ruleweaver compiles an ordered set of (divisor, label) rules and prints
one line per integer in the requested range: the concatenated labels of every
matching rule, or the integer itself when no rule matches.

Rules come from --rules (a YAML file) or from positional specs like "3=Fizz".
With neither, the classic pair 3=Fizz 5=Buzz is used.`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := resolveRules(rulesPath, args)
			if err != nil {
				return err
			}

			var opts []func(*ruleweaver.Engine)
			if check {
				opts = append(opts, ruleweaver.WithValidator(ruleweaver.PrefixValidator{}))
			}

			engine, err := ruleweaver.Compile(slices.Values(rules), opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := start; i < start+count; i++ {
				fmt.Fprintln(out, engine.Evaluate(i))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "path to a YAML rules file")
	cmd.Flags().Int64Var(&start, "start", 1, "first integer to evaluate")
	cmd.Flags().Int64Var(&count, "count", 100, "how many integers to evaluate")
	cmd.Flags().BoolVar(&check, "check", false, "reject rule sets whose labels are prefixes of one another")

	return cmd
}

// resolveRules picks the rule source: YAML file, positional specs, or the
// classic defaults. A file and positional specs together is ambiguous and
// rejected.
func resolveRules(rulesPath string, args []string) ([]ruleweaver.Rule, error) {
	switch {
	case rulesPath != "" && len(args) > 0:
		return nil, fmt.Errorf("use either --rules or positional rule specs, not both")
	case rulesPath != "":
		rf, err := ruleweaver.LoadRules(rulesPath)
		if err != nil {
			return nil, err
		}
		if rf.Version != "" && rf.Version != "1" {
			slog.Warn("unknown rules file version, continuing anyway", slog.String("version", rf.Version))
		}
		return rf.RuleSet()
	case len(args) > 0:
		return ruleweaver.ParseRuleSet(args)
	default:
		return []ruleweaver.Rule{
			ruleweaver.MustRule(3, "Fizz"),
			ruleweaver.MustRule(5, "Buzz"),
		}, nil
	}
}
