package configmodel

import (
	"errors"
	"fmt"
)

// MaxRuleResolutionDepth bounds the recursion used when a plugin rule
// definition is given as a string alias of another rule: each alias hop
// counts against this budget, and exceeding it raises
// ErrRuleResolutionTooDeep rather than looping forever on a pathological
// alias chain.
const MaxRuleResolutionDepth = 10

// ErrRuleResolutionTooDeep is raised when resolving a chain of string
// rule aliases exceeds MaxRuleResolutionDepth.
var ErrRuleResolutionTooDeep = errors.New("configmodel: rule alias chain exceeded maximum resolution depth")

// RuleResolver looks up another rule definition by name, used to resolve
// a plugin rule given as a string alias (e.g. "no-foo": "plugin/no-bar").
type RuleResolver interface {
	ResolveRule(name string) (any, error)
}

// NormalizeRule turns a raw plugin rule value into a RuleDefinition: a
// string triggers a bounded lookup through resolver, a bare callable is
// wrapped into {Create: callable}, and anything else is used as-is if it
// is already a RuleDefinition (or wrapped as Create otherwise).
func NormalizeRule(raw any, resolver RuleResolver) (RuleDefinition, error) {
	return normalizeRule(raw, resolver, 0)
}

func normalizeRule(raw any, resolver RuleResolver, depth int) (RuleDefinition, error) {
	if depth > MaxRuleResolutionDepth {
		return RuleDefinition{}, ErrRuleResolutionTooDeep
	}

	switch v := raw.(type) {
	case RuleDefinition:
		return v, nil
	case string:
		if resolver == nil {
			return RuleDefinition{}, fmt.Errorf("configmodel: rule alias %q requires a RuleResolver", v)
		}

		resolved, err := resolver.ResolveRule(v)
		if err != nil {
			return RuleDefinition{}, fmt.Errorf("configmodel: resolving rule alias %q: %w", v, err)
		}

		return normalizeRule(resolved, resolver, depth+1)
	default:
		return RuleDefinition{Create: raw, Schema: nil}, nil
	}
}

// IsArraySetting reports whether v is already in [severity, ...options]
// array form.
func IsArraySetting(v any) ([]any, bool) {
	arr, ok := v.([]any)

	return arr, ok
}

// WrapSeverity wraps a bare severity value (int, float64, or string) into
// a singleton [severity] array, or clones an existing array value.
func WrapSeverity(v any) []any {
	if arr, ok := IsArraySetting(v); ok {
		cloned := make([]any, len(arr))
		copy(cloned, arr)

		return cloned
	}

	return []any{v}
}

// SeverityOf extracts the severity (always element 0) from a raw rule
// setting value, whether it is a bare scalar or an array.
func SeverityOf(v any) any {
	if arr, ok := IsArraySetting(v); ok {
		if len(arr) == 0 {
			return nil
		}

		return arr[0]
	}

	return v
}
