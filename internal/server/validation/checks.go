package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Genders accepted for an employee.
var Genders = []string{"Male", "Female", "Other"}

// MinSalary is the lowest salary an employee record may carry.
const MinSalary = 1000

var validate = validator.New()

// tag returns a predicate that passes string values satisfying the
// validator tag.
func tag(t string) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && validate.Var(s, t) == nil
	}
}

var nonEmpty = tag("required")

func minLength(n int) func(any) bool {
	return tag("min=" + strconv.Itoa(n))
}

func oneOf(allowed []string) func(any) bool {
	return tag("oneof=" + strings.Join(allowed, " "))
}

// isEmail also requires a top-level domain of at least two letters, or a
// punycode one.
func isEmail(v any) bool {
	s, ok := v.(string)
	if !ok || validate.Var(s, "required,email") != nil {
		return false
	}
	domain := s[strings.LastIndexByte(s, '@')+1:]
	tld := domain[strings.LastIndexByte(domain, '.')+1:]
	return strings.HasPrefix(strings.ToLower(tld), "xn--") || validate.Var(tld, "alpha,min=2") == nil
}

func atLeast(min float64) func(any) bool {
	t := fmt.Sprintf("gte=%g", min)
	return func(v any) bool {
		f, ok := ToFloat(v)
		return ok && validate.Var(f, t) == nil
	}
}

func isDate(v any) bool {
	s, ok := v.(string)
	if !ok {
		_, ok = v.(time.Time)
		return ok
	}
	_, ok = ParseDate(s)
	return ok
}

// ToFloat converts the numeric kinds a record may carry, including numeric
// strings, to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
