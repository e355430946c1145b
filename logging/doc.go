// Package logging provides structured logging using Go's standard library
// log/slog. It outputs logs in JSON format, integrates with Uber's Fx
// dependency injection framework via LoggerConfig, and exposes a small set
// of named event helpers (CacheHit, CacheMiss, ConfigFileLoaded,
// DirectoryProbeMiss, DependencyLoadFailed) so the resolver's packages log
// the same event the same way instead of hand-formatting messages inline.
package logging
