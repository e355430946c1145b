package overridetester

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidOverridePattern is returned when a files/excludedFiles pattern
// is an absolute path or contains a ".." segment.
var ErrInvalidOverridePattern = errors.New("invalid override pattern")

// patternGroup is one {includes, excludes} constraint. A nil slice means
// "no constraint" for that half.
type patternGroup struct {
	includes []string
	excludes []string
}

// Tester evaluates file-match criteria compiled from one or more
// {files, excludedFiles} declarations, rebased on basePath.
type Tester struct {
	groups   []patternGroup
	basePath string
}

// New validates files/excludedFiles and, unless both are empty, returns a
// Tester with a single pattern group bound to basePath. If both inputs are
// empty, New returns (nil, nil): "no tester" is a valid, absent result,
// and callers should treat a nil *Tester as "matches everything".
func New(files, excludedFiles []string, basePath string) (*Tester, error) {
	if err := validatePatterns(files); err != nil {
		return nil, err
	}

	if err := validatePatterns(excludedFiles); err != nil {
		return nil, err
	}

	if len(files) == 0 && len(excludedFiles) == 0 {
		return nil, nil //nolint:nilnil // absence is a first-class result here
	}

	return &Tester{
		groups:   []patternGroup{{includes: cloneNonEmpty(files), excludes: cloneNonEmpty(excludedFiles)}},
		basePath: basePath,
	}, nil
}

func cloneNonEmpty(patterns []string) []string {
	if len(patterns) == 0 {
		return nil
	}

	return append([]string(nil), patterns...)
}

func validatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if filepath.IsAbs(pattern) {
			return fmt.Errorf("%w: %q is an absolute path", ErrInvalidOverridePattern, pattern)
		}

		for _, part := range strings.Split(filepath.ToSlash(pattern), "/") {
			if part == ".." {
				return fmt.Errorf("%w: %q contains a \"..\" segment", ErrInvalidOverridePattern, pattern)
			}
		}
	}

	return nil
}

// And composes a and b into a tester that matches a path only when every
// group from both testers matches. The composed base path is a's. A nil
// operand is absorbed: And(nil, b) == b, And(a, nil) == a.
func And(a, b *Tester) *Tester {
	if a == nil {
		return b
	}

	if b == nil {
		return a
	}

	groups := make([]patternGroup, 0, len(a.groups)+len(b.groups))
	groups = append(groups, a.groups...)
	groups = append(groups, b.groups...)

	return &Tester{groups: groups, basePath: a.basePath}
}

// WithBasePath returns a copy of t rebound to a new base path, used by the
// factory to rebind an element's criteria onto the outermost importer's
// directory once the full extends chain is known.
func (t *Tester) WithBasePath(basePath string) *Tester {
	if t == nil {
		return nil
	}

	rebound := *t
	rebound.basePath = basePath

	return &rebound
}

// BasePath returns the directory against which patterns are evaluated.
func (t *Tester) BasePath() string {
	if t == nil {
		return ""
	}

	return t.basePath
}

// Test reports whether absolutePath satisfies every pattern group. Dotfiles
// are not excluded by default. A pattern with no path separator matches on
// the relative path's base name; otherwise it matches the full relative
// path.
func (t *Tester) Test(absolutePath string) (bool, error) {
	if t == nil {
		return true, nil
	}

	relative, err := filepath.Rel(t.basePath, absolutePath)
	if err != nil {
		return false, fmt.Errorf("overridetester: relativizing %q against %q: %w", absolutePath, t.basePath, err)
	}

	relative = filepath.ToSlash(relative)

	for _, group := range t.groups {
		matched, matchErr := group.test(relative)
		if matchErr != nil {
			return false, matchErr
		}

		if !matched {
			return false, nil
		}
	}

	return true, nil
}

func (g patternGroup) test(relative string) (bool, error) {
	if g.includes != nil {
		included, err := anyMatch(g.includes, relative)
		if err != nil {
			return false, err
		}

		if !included {
			return false, nil
		}
	}

	if g.excludes != nil {
		excluded, err := anyMatch(g.excludes, relative)
		if err != nil {
			return false, err
		}

		if excluded {
			return false, nil
		}
	}

	return true, nil
}

func anyMatch(patterns []string, relative string) (bool, error) {
	base := filepath.Base(relative)

	for _, pattern := range patterns {
		slashPattern := filepath.ToSlash(pattern)

		target := relative
		if !strings.Contains(slashPattern, "/") {
			target = base
		}

		matched, err := doublestar.Match(slashPattern, target)
		if err != nil {
			return false, fmt.Errorf("overridetester: compiling pattern %q: %w", pattern, err)
		}

		if matched {
			return true, nil
		}
	}

	return false, nil
}
