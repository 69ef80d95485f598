// Package naming provides the case conversions used by template helpers and
// generated file names: PascalCase, camelCase, kebab-case, snake_case and
// CONSTANT_CASE. Word boundaries are found by regex splitting so that the
// conversions agree with each other regardless of the input convention.
package naming

import (
	"regexp"
	"strings"
)

var (
	lowerUpper  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	upperRun    = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	nonAlphaNum = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)

// Words splits an identifier into its constituent words. Boundaries are any
// non-alphanumeric run, a lower-to-upper transition, and the end of an
// uppercase acronym run ("HTTPServer" -> "HTTP", "Server").
func Words(s string) []string {
	s = lowerUpper.ReplaceAllString(s, "$1 $2")
	s = upperRun.ReplaceAllString(s, "$1 $2")
	s = nonAlphaNum.ReplaceAllString(s, " ")
	return strings.Fields(s)
}

// ToPascalCase converts a string to PascalCase.
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	return joinLower(s, "-")
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	return joinLower(s, "_")
}

// ToConstantCase converts a string to CONSTANT_CASE.
func ToConstantCase(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	return strings.Join(words, "_")
}

func joinLower(s, sep string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
