// Package validation evaluates declarative, per-field rule sets against a
// plain record and reports every violated field in a single pass.
package validation

import "strings"

// Record is the loosely typed input a rule set is evaluated against.
// A key that is missing or holds nil counts as absent.
type Record map[string]any

// FieldError names one violated field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule is a single field predicate. When Trim is set, string values are
// trimmed before Check sees them and the trimmed value is what ends up in
// Result.Values.
type Rule struct {
	Field   string
	Trim    bool
	Check   func(v any) bool
	Message string
}

// RuleSet is a named, ordered list of rules. In an Optional set absent
// fields are skipped; present ones must still pass.
type RuleSet struct {
	Name     string
	Rules    []Rule
	Optional bool
}

// Result of Validate. Values is a normalized copy of the input record and
// is populated even when Valid is false.
type Result struct {
	Valid  bool
	Errors []FieldError
	Values Record
}

// Validate runs every rule of rs against rec in declaration order. rec is
// never modified.
func Validate(rs RuleSet, rec Record) Result {
	values := make(Record, len(rec))
	for k, v := range rec {
		values[k] = v
	}

	var errs []FieldError
	for _, r := range rs.Rules {
		v, present := values[r.Field]
		if present && v == nil {
			present = false
		}

		if r.Trim {
			if s, ok := v.(string); ok {
				v = strings.TrimSpace(s)
				values[r.Field] = v
			}
		}

		if !present && rs.Optional {
			continue
		}

		if !r.Check(v) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs, Values: values}
}

// Lookup returns one of the built-in rule sets by name.
func Lookup(name string) (RuleSet, bool) {
	rs, ok := byName[name]
	return rs, ok
}
