package configmodel

import (
	"github.com/0xalexb/lintconfig/depload"
	"github.com/0xalexb/lintconfig/overridetester"
)

// ConfigBody is the raw record loaded from a configuration source before
// normalization: env, extends, globals, overrides, parser, parserOptions,
// plugins, root, rules, settings, plus any fields a caller's schema
// permits. Fields that are absent are simply missing keys, which is
// distinct from a key present with an empty/zero value.
type ConfigBody map[string]any

// Element is one normalized configuration fragment produced by the
// factory. Criteria is nil when the element has no file-match constraint
// (it always applies once selected into a ConfigArray). An element
// produced from an `overrides` entry never has Root set, and any element
// with non-nil Criteria has that criteria's base path bound to the
// outermost importer's directory.
type Element struct {
	// Name and FilePath are diagnostic only: they identify where this
	// element came from for error messages and logging.
	Name     string
	FilePath string

	// Criteria is nil when this element carries no file-match predicate.
	Criteria *overridetester.Tester

	Env           map[string]any
	Globals       map[string]any
	Parser        *depload.LoadedDependency
	ParserOptions map[string]any
	// Plugins is keyed by plugin id; Plugins[k].ID must equal k.
	Plugins   map[string]depload.LoadedDependency
	Processor string
	// Root is nil when the body omitted root or gave it a non-boolean
	// value; both are treated as absent.
	Root     *bool
	Rules    map[string]any
	Settings map[string]any
}

// Matches reports whether this element's criteria selects absolutePath.
// An element with nil Criteria matches every path.
func (e *Element) Matches(absolutePath string) (bool, error) {
	if e.Criteria == nil {
		return true, nil
	}

	return e.Criteria.Test(absolutePath) //nolint:wrapcheck
}

// HasParser reports whether this element declared a parser.
func (e *Element) HasParser() bool {
	return e.Parser != nil
}
