//go:build property
// +build property

package naming

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCaseConversionProperties tests algebraic properties of the case
// conversions over well-formed identifiers.
func TestCaseConversionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	identifier := gen.RegexMatch(`^[a-z][a-z0-9]*([A-Z][a-z][a-z0-9]*)*$`)

	// Property: kebab-casing is insensitive to pascal-casing first
	properties.Property("kebab after pascal equals kebab", prop.ForAll(
		func(s string) bool {
			return ToKebabCase(ToPascalCase(s)) == ToKebabCase(s)
		},
		identifier,
	))

	// Property: kebab-case output is a fixed point
	properties.Property("kebab is idempotent", prop.ForAll(
		func(s string) bool {
			k := ToKebabCase(s)
			return ToKebabCase(k) == k
		},
		identifier,
	))

	// Property: snake and kebab agree up to the separator
	properties.Property("snake and constant share word boundaries", prop.ForAll(
		func(s string) bool {
			return ToConstantCase(s) == ToConstantCase(ToSnakeCase(s))
		},
		identifier,
	))

	properties.TestingRun(t)
}
