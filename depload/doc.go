// Package depload holds the value type used to represent a loaded parser
// or plugin dependency, including the case where loading itself failed.
//
// A LoadedDependency is immutable once constructed. Loading is attempted
// eagerly by the factory that discovers a parser or plugin specifier, but
// any failure is captured into the LoadedDependency rather than raised
// immediately: the error only becomes fatal if this dependency ends up
// winning during configuration merge (see package mergeengine).
package depload
