// Package validate runs declarative field rules against request payloads,
// collecting every violation rather than stopping at the first failure.
package validate

import "regexp"

// Violation is a single failed rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Check reports whether a raw field value satisfies a rule.
type Check func(value string) bool

// Rule binds a check and its failure message to a field.
type Rule struct {
	Field   string
	Check   Check
	Message string
}

var (
	alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailSyntax  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Required fails on the empty string.
func Required() Check {
	return func(v string) bool { return v != "" }
}

// MinLength fails on non-empty values shorter than n characters. Empty values
// pass; pair with Required to reject them.
func MinLength(n int) Check {
	return func(v string) bool { return v == "" || len([]rune(v)) >= n }
}

// Alphanumeric fails on any character outside [a-zA-Z0-9]. Empty values pass.
func Alphanumeric() Check {
	return func(v string) bool { return v == "" || alphanumeric.MatchString(v) }
}

// Email fails on values that do not parse as an address. Empty values pass.
func Email() Check {
	return func(v string) bool { return v == "" || emailSyntax.MatchString(v) }
}

// Run evaluates every rule against values and returns the violations in rule
// order. An empty result means the payload is accepted as-is; no coercion or
// defaulting happens here.
func Run(values map[string]string, rules []Rule) []Violation {
	var violations []Violation
	for _, r := range rules {
		if !r.Check(values[r.Field]) {
			violations = append(violations, Violation{Field: r.Field, Message: r.Message})
		}
	}
	return violations
}
