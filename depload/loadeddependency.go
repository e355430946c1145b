package depload

import (
	"encoding/json"
	"log/slog"
)

// LoadedDependency represents a parser or plugin referenced by id from a
// configuration element, along with either its loaded definition or the
// error captured while trying to load it. Exactly one of Definition or
// Error is set; callers determine which with Failed.
//
// Definition is deliberately opaque (any) and is never traversed by
// MarshalJSON, LogValue, or DiagnosticView: the owning plugin/parser
// module may carry state (compiled regexes, AST caches, file handles)
// that is expensive or unsafe to walk during logging.
type LoadedDependency struct {
	// Definition is the opaque loaded module (parser or plugin).
	Definition any
	// Error is the captured loading failure, if loading failed.
	Error error
	// FilePath is the resolved absolute path the dependency was loaded
	// from. Empty when loading failed before a path was resolved.
	FilePath string
	// ID is the logical identifier as referenced by configuration bodies.
	ID string
	// ImporterName is a human-readable label of the configuration that
	// requested this dependency, for diagnostics.
	ImporterName string
	// ImporterPath is the absolute path of the configuration that
	// requested this dependency.
	ImporterPath string
}

// New constructs a successfully loaded dependency.
func New(id, importerName, importerPath, filePath string, definition any) LoadedDependency {
	return LoadedDependency{
		Definition:   definition,
		Error:        nil,
		FilePath:     filePath,
		ID:           id,
		ImporterName: importerName,
		ImporterPath: importerPath,
	}
}

// NewError constructs a dependency that failed to load. The error is
// captured rather than raised; it only becomes fatal if this dependency
// wins during merge (see package mergeengine).
func NewError(id, importerName, importerPath string, loadErr error) LoadedDependency {
	return LoadedDependency{
		Definition:   nil,
		Error:        loadErr,
		FilePath:     "",
		ID:           id,
		ImporterName: importerName,
		ImporterPath: importerPath,
	}
}

// Failed reports whether loading this dependency failed.
func (d LoadedDependency) Failed() bool {
	return d.Error != nil
}

// DiagnosticView is the JSON-serializable projection of a LoadedDependency
// that never traverses into the opaque Definition.
type DiagnosticView struct {
	ID           string `json:"id"`
	ImporterPath string `json:"importerPath"`
	FilePath     string `json:"filePath,omitempty"`
	ErrorStack   string `json:"error,omitempty"`
}

// Diagnostic returns the projection of this dependency suitable for
// logging or serialization: {id, importerPath} plus filePath and error
// when present. Definition is never included.
func (d LoadedDependency) Diagnostic() DiagnosticView {
	view := DiagnosticView{
		ID:           d.ID,
		ImporterPath: d.ImporterPath,
		FilePath:     d.FilePath,
		ErrorStack:   "",
	}

	if d.Error != nil {
		view.ErrorStack = d.Error.Error()
	}

	return view
}

// MarshalJSON implements json.Marshaler using Diagnostic, so a
// LoadedDependency embedded in a larger structure never serializes its
// opaque Definition.
func (d LoadedDependency) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Diagnostic()) //nolint:wrapcheck
}

// LogValue implements slog.LogValuer so that logging a LoadedDependency
// never risks walking into Definition.
func (d LoadedDependency) LogValue() slog.Value {
	view := d.Diagnostic()

	attrs := []slog.Attr{
		slog.String("id", view.ID),
		slog.String("importerPath", view.ImporterPath),
	}

	if view.FilePath != "" {
		attrs = append(attrs, slog.String("filePath", view.FilePath))
	}

	if view.ErrorStack != "" {
		attrs = append(attrs, slog.String("error", view.ErrorStack))
	}

	return slog.GroupValue(attrs...)
}
