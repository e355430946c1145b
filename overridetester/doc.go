// Package overridetester compiles and evaluates the glob include/exclude
// predicates used to decide whether a configuration element applies to a
// given source file.
//
// A Tester is immutable after construction. Patterns are rebased on a
// declared base path before matching, so that glob patterns written in a
// configuration file are always evaluated relative to that file's own
// directory (or, after rebinding by the factory, the outermost importer's
// directory). Two testers compose with And into a single tester that
// matches only when both halves match.
package overridetester
