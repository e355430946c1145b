package configarray

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/0xalexb/lintconfig/configmodel"
	"github.com/0xalexb/lintconfig/logging"
	"github.com/0xalexb/lintconfig/mergeengine"
)

// ErrPathNotAbsolute is returned by ExtractConfig when filePath is not an
// absolute path; the offending value is embedded in the error.
var ErrPathNotAbsolute = errors.New("configarray: extractConfig requires an absolute path")

// Array is an ordered, flat list of configuration elements, plus the
// lazily materialized state scoped to this instance: an extraction
// cache and the plugin-member maps.
type Array struct {
	elements     []*configmodel.Element
	validator    mergeengine.Validator
	ruleResolver configmodel.RuleResolver
	logger       *slog.Logger

	mu    sync.Mutex
	cache map[string]*configmodel.ExtractedConfig

	pluginMapsOnce sync.Once
	pluginMaps     mergeengine.PluginMaps
	pluginMapsErr  error
}

// New constructs an Array over elements (index 0 outermost, last index
// innermost). validator (may be nil to skip post-fold validation) and
// ruleResolver (may be nil if no plugin rule is given as a string alias)
// are consulted during extraction and plugin-map population respectively.
// logger may be nil; when set, ExtractConfig reports cache hits and misses
// through it.
func New(elements []*configmodel.Element, validator mergeengine.Validator, ruleResolver configmodel.RuleResolver, logger *slog.Logger) *Array {
	return &Array{
		elements:     elements,
		validator:    validator,
		ruleResolver: ruleResolver,
		logger:       logger,
		cache:        make(map[string]*configmodel.ExtractedConfig),
	}
}

// Elements returns the array's elements in outermost-to-innermost order.
// Callers must not mutate the returned slice or its elements.
func (a *Array) Elements() []*configmodel.Element {
	return a.elements
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return len(a.elements)
}

// Root iterates elements from highest index to lowest and returns the
// first boolean Root it finds; non-boolean (absent) Root values are
// ignored. Returns false if no element declares one.
func (a *Array) Root() bool {
	for i := len(a.elements) - 1; i >= 0; i-- {
		if root := a.elements[i].Root; root != nil {
			return *root
		}
	}

	return false
}

// MatchedIndices iterates elements from highest index to lowest and
// collects the indices of elements with no criteria, or whose criteria
// matches filePath. The result preserves high-to-low order: this is the
// merge order ExtractConfig folds in.
func (a *Array) MatchedIndices(filePath string) ([]int, error) {
	indices := make([]int, 0, len(a.elements))

	for i := len(a.elements) - 1; i >= 0; i-- {
		matched, err := a.elements[i].Matches(filePath)
		if err != nil {
			return nil, fmt.Errorf("configarray: matching element %q: %w", a.elements[i].Name, err)
		}

		if matched {
			indices = append(indices, i)
		}
	}

	return indices, nil
}

func cacheKey(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}

	return strings.Join(parts, ",")
}

// ExtractConfig selects the elements matching filePath and folds them
// through the merge engine, caching the result under the matched-index
// set so that repeated calls selecting the same elements return the
// reference-identical ExtractedConfig.
func (a *Array) ExtractConfig(filePath string) (*configmodel.ExtractedConfig, error) {
	if !filepath.IsAbs(filePath) {
		return nil, fmt.Errorf("%w: %q", ErrPathNotAbsolute, filePath)
	}

	indices, err := a.MatchedIndices(filePath)
	if err != nil {
		return nil, err
	}

	key := cacheKey(indices)

	if cached, ok := a.cachedResult(key); ok {
		logging.CacheHit(a.logger, filePath, len(indices))

		return cached, nil
	}

	maps, err := a.ensurePluginMaps()
	if err != nil {
		return nil, err
	}

	matched := make([]*configmodel.Element, len(indices))
	for i, idx := range indices {
		matched[i] = a.elements[idx]
	}

	extracted, err := mergeengine.Merge(matched, maps, a.validator)
	if err != nil {
		return nil, err
	}

	logging.CacheMiss(a.logger, filePath, len(indices))

	return a.storeResult(key, extracted), nil
}

func (a *Array) cachedResult(key string) (*configmodel.ExtractedConfig, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cached, ok := a.cache[key]

	return cached, ok
}

// storeResult publishes extracted under key unless another call already
// published one first, in which case that earlier value is returned so
// that reference identity holds even under concurrent first extraction.
func (a *Array) storeResult(key string, extracted *configmodel.ExtractedConfig) *configmodel.ExtractedConfig {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cached, ok := a.cache[key]; ok {
		return cached
	}

	a.cache[key] = extracted

	return extracted
}
