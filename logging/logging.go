package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LoggerConfig holds configuration for the logger. Component tags every
// record emitted by the resulting logger (e.g. "configfactory",
// "configarray"), so a host aggregating JSON logs across the resolver's
// packages can filter by it.
type LoggerConfig struct {
	Level     string
	Component string
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})

	logger := slog.New(handler)
	if config.Component != "" {
		logger = logger.With(slog.String("component", config.Component))
	}

	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CacheHit logs that ExtractConfig found a previously computed result for
// the given matched-element set. logger may be nil, in which case the call
// is a no-op; every event helper in this package tolerates a nil logger so
// callers never need to guard against an unconfigured one.
func CacheHit(logger *slog.Logger, filePath string, matchedElements int) {
	if logger == nil {
		return
	}

	logger.Debug("extract config cache hit",
		slog.String("filePath", filePath),
		slog.Int("matchedElements", matchedElements))
}

// CacheMiss logs that ExtractConfig had to fold the matched elements fresh.
func CacheMiss(logger *slog.Logger, filePath string, matchedElements int) {
	if logger == nil {
		return
	}

	logger.Debug("extract config cache miss",
		slog.String("filePath", filePath),
		slog.Int("matchedElements", matchedElements))
}

// ConfigFileLoaded logs that a configuration file was read and parsed
// successfully, whether as the top-level file (LoadFile) or a directory
// probe (LoadOnDirectory). Files pulled in through extends are not logged.
func ConfigFileLoaded(logger *slog.Logger, path string) {
	if logger == nil {
		return
	}

	logger.Info("configuration file loaded", slog.String("path", path))
}

// DirectoryProbeMiss logs that LoadOnDirectory found no recognized
// configuration file in dir.
func DirectoryProbeMiss(logger *slog.Logger, dir string) {
	if logger == nil {
		return
	}

	logger.Debug("no configuration file in directory", slog.String("dir", dir))
}

// DependencyLoadFailed logs that a parser or plugin reference failed to
// resolve or load. The failure itself is not fatal at this point (it is
// only fatal if it later wins a merge slot), so this is logged at Warn
// rather than Error.
func DependencyLoadFailed(logger *slog.Logger, kind, spec string, err error) {
	if logger == nil {
		return
	}

	logger.Warn("dependency load failed",
		slog.String("kind", kind),
		slog.String("spec", spec),
		slog.Any("error", err))
}
