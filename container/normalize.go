package container

import (
	"reflect"
	"strings"
)

// normalizeKey lowercases key when the container was configured with
// LowercaseKeys. Every entry point goes through it, for stored keys and
// query keys alike.
func (c *Container[T]) normalizeKey(key string) string {
	if c.config.LowercaseKeys {
		return strings.ToLower(key)
	}
	return key
}

// normalizeValue lowercases value when the container was configured with
// LowercaseValues and the value is string-typed. Anything else passes
// through unchanged.
func (c *Container[T]) normalizeValue(value T) T {
	if !c.config.LowercaseValues {
		return value
	}
	if s, ok := any(value).(string); ok {
		return any(strings.ToLower(s)).(T)
	}
	return value
}

// shallowEqual compares two values with strict interface equality. Values
// of an uncomparable dynamic type are reported unequal instead of letting
// the comparison panic.
func shallowEqual[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == bv
	}
	if !reflect.TypeOf(av).Comparable() || !reflect.TypeOf(bv).Comparable() {
		return false
	}
	return av == bv
}
