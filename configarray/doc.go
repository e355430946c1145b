// Package configarray implements the ordered configuration array: a
// sequence of configmodel.Element values with precedence increasing with
// index (index 0 is outermost/lowest precedence, the last index is
// innermost/highest precedence).
//
// Array owns two kinds of lazily materialized, per-instance state: an
// extraction cache keyed by the ordered matched-index set (so that two
// ExtractConfig calls selecting the same elements return the
// reference-identical result), and the plugin-member lookups
// (environments, processors, rules) derived once from every element's
// plugins and then frozen. None of this state is stored on the elements
// themselves; it lives on the Array, matching the "back-reference owned
// by the array, never by the element" design note in the source spec.
package configarray
