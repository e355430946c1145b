// Package mergeengine implements the merge algebra consumed when a
// ConfigArray extracts a configuration for one file: first-wins for
// parser/processor with error propagation on a winning failure,
// deep-assign-without-overwrite for record fields (env, globals,
// parserOptions, settings), first-occurrence-wins for plugins (again with
// error propagation on a winning failure), and a severity-preserving
// combine for rule settings where a lower-precedence element may
// contribute default options to a rule whose severity a higher-precedence
// element already fixed.
//
// Merge is a pure function: it never mutates the elements it is given,
// and folding the same ordered slice of elements twice produces two
// structurally equal (but not necessarily reference-identical)
// ExtractedConfig values. Reference-identity across repeated calls for
// the same matched-index set is the caller's (package configarray's)
// responsibility, via its extraction cache.
package mergeengine
