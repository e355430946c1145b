package configfactory

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/0xalexb/lintconfig/configarray"
)

func joinPath(directory, name string) string {
	return filepath.Join(directory, name)
}

func isModuleNotFound(err error, target **ModuleNotFoundError) bool {
	return errors.As(err, target)
}

// resolveFileOrShareable turns ref into an absolute path: a
// filesystem-shaped ref is joined against the factory's cwd as-is; a bare
// ref is normalized into the shareable-config package namespace and
// resolved through the factory's Resolver.
func (f *Factory) resolveFileOrShareable(ref string) (string, error) {
	if isFilesystemShaped(ref) {
		if filepath.IsAbs(ref) {
			return ref, nil
		}

		return filepath.Join(f.cwd, ref), nil
	}

	if f.resolver == nil {
		return "", fmt.Errorf("configfactory: %q requires a Resolver and none was configured", ref)
	}

	pkgName := normalizeConfigPackageName(ref)

	resolved, err := f.resolver.Resolve(pkgName, f.cwd)
	if err != nil {
		return "", fmt.Errorf("configfactory: resolving %q: %w", ref, err)
	}

	return resolved, nil
}

// Resolve composes the configuration array effective for sourcePath by
// probing its containing directory and each ancestor (up to the
// filesystem root, or at most maxProbeDirs directories when that is set),
// loading from the outermost directory inward so that each loaded array
// becomes the parent of the next. It returns the composed array without
// extracting from it; the caller calls ExtractConfig(sourcePath) on the
// result. The array is nil when no probed directory held a configuration
// file.
func (f *Factory) Resolve(sourcePath string) (*configarray.Array, error) {
	if !filepath.IsAbs(sourcePath) {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotAbsolute, sourcePath)
	}

	dirs := ancestry(filepath.Dir(sourcePath))
	if f.maxProbeDirs > 0 && len(dirs) > f.maxProbeDirs {
		dirs = dirs[:f.maxProbeDirs]
	}

	var array *configarray.Array

	for i := len(dirs) - 1; i >= 0; i-- {
		next, err := f.LoadOnDirectory(dirs[i], LoadOptions{Parent: array})
		if err != nil {
			if errors.Is(err, ErrNoConfigFound) {
				continue
			}

			return nil, err
		}

		array = next
	}

	return array, nil
}

// ancestry returns dir and every ancestor up to and including the
// filesystem root, outermost last.
func ancestry(dir string) []string {
	dirs := []string{dir}

	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return dirs
		}

		dirs = append(dirs, parent)
		dir = parent
	}
}
