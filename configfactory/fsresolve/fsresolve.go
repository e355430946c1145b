// Package fsresolve provides a minimal, stdlib-only Resolver: a
// reference implementation that looks for request as a direct
// subdirectory (or file) of a node_modules directory walked upward from
// importerPath, the conventional on-disk shape these packages have in
// practice. It exists so configfactory.Factory has something to resolve
// against out of the box; production hosts are expected to substitute
// their own Resolver tied to their actual module system.
package fsresolve

import (
	"os"
	"path/filepath"

	"github.com/0xalexb/lintconfig/configfactory"
)

const maxWalkDepth = 64

// Resolver implements configfactory.Resolver by walking upward from the
// importer looking for request under a node_modules directory.
type Resolver struct {
	cwd string
}

// New returns a Resolver that additionally checks cwd/node_modules before
// giving up, so a plugin resolved relative to the project root (rather
// than a deeply nested configuration file) is still found.
func New(cwd string) *Resolver {
	return &Resolver{cwd: cwd}
}

// Resolve implements configfactory.Resolver.
func (r *Resolver) Resolve(request, importerPath string) (string, error) {
	dir := importerPath
	if info, err := os.Stat(importerPath); err == nil && !info.IsDir() {
		dir = filepath.Dir(importerPath)
	}

	for depth := 0; depth < maxWalkDepth; depth++ {
		if candidate, ok := lookInNodeModules(dir, request); ok {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	if candidate, ok := lookInNodeModules(r.cwd, request); ok {
		return candidate, nil
	}

	return "", &configfactory.ModuleNotFoundError{Request: request, ImporterPath: importerPath}
}

func lookInNodeModules(dir, request string) (string, bool) {
	candidate := filepath.Join(dir, "node_modules", request)

	if info, err := os.Stat(candidate); err == nil {
		if info.IsDir() {
			return filepath.Join(candidate, "index.js"), true
		}

		return candidate, true
	}

	return "", false
}
