package ruleweaver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseRule(t *testing.T) {
	t.Run("should parse an equals spec", func(t *testing.T) {
		r, err := ParseRule("3=Fizz")
		require.NoError(t, err)
		assert.Equal(t, MustRule(3, "Fizz"), r)
	})

	t.Run("should parse a colon spec", func(t *testing.T) {
		r, err := ParseRule("5:Buzz")
		require.NoError(t, err)
		assert.Equal(t, MustRule(5, "Buzz"), r)
	})

	t.Run("should tolerate surrounding whitespace", func(t *testing.T) {
		r, err := ParseRule("  7 = Whiz  ")
		require.NoError(t, err)
		assert.Equal(t, MustRule(7, "Whiz"), r)
	})

	t.Run("should keep internal spaces in the label", func(t *testing.T) {
		r, err := ParseRule("11=Ka Pow")
		require.NoError(t, err)
		assert.Equal(t, "Ka Pow", r.Label())
	})

	t.Run("should reject a malformed spec", func(t *testing.T) {
		for _, spec := range []string{"", "Fizz", "=Fizz", "3=", "three=Fizz"} {
			_, err := ParseRule(spec)
			require.Error(t, err, "spec %q", spec)
			var ire *InvalidRuleError
			require.ErrorAs(t, err, &ire, "spec %q", spec)
		}
	})

	t.Run("should reject a zero or negative divisor", func(t *testing.T) {
		_, err := ParseRule("0=Fizz")
		require.Error(t, err)
		_, err = ParseRule("-3=Fizz")
		require.Error(t, err)
	})
}

func Test_ParseRuleSet(t *testing.T) {
	t.Run("should preserve spec order", func(t *testing.T) {
		rules, err := ParseRuleSet([]string{"5=Buzz", "3=Fizz"})
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, "Buzz", rules[0].Label())
		assert.Equal(t, "Fizz", rules[1].Label())
	})

	t.Run("should fail on the first bad spec", func(t *testing.T) {
		_, err := ParseRuleSet([]string{"3=Fizz", "bogus", "5=Buzz"})
		require.Error(t, err)
	})

	t.Run("should accept an empty list", func(t *testing.T) {
		rules, err := ParseRuleSet(nil)
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}
