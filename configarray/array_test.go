package configarray_test

import (
	"bytes"
	"testing"

	"github.com/0xalexb/lintconfig/configarray"
	"github.com/0xalexb/lintconfig/configmodel"
	"github.com/0xalexb/lintconfig/depload"
	"github.com/0xalexb/lintconfig/logging"
	"github.com/0xalexb/lintconfig/overridetester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pluginsWith(id string, def *configmodel.PluginDefinition) map[string]depload.LoadedDependency {
	return map[string]depload.LoadedDependency{
		id: depload.New(id, "importer", "/project/.eslintrc.json", "/project/node_modules/"+id+"/index.js", def),
	}
}

func boolPtr(b bool) *bool { return &b }

func TestRoot_LastBooleanWins(t *testing.T) {
	t.Parallel()

	elements := []*configmodel.Element{
		{Name: "0", Root: boolPtr(true)},
		{Name: "1", Root: nil},
		{Name: "2", Root: boolPtr(false)},
	}

	arr := configarray.New(elements, nil, nil, nil)
	assert.False(t, arr.Root())
}

func TestRoot_DefaultsFalseWhenUnset(t *testing.T) {
	t.Parallel()

	arr := configarray.New([]*configmodel.Element{{Name: "0"}}, nil, nil, nil)
	assert.False(t, arr.Root())
}

func TestMatchedIndices_HighToLowOrder(t *testing.T) {
	t.Parallel()

	elements := []*configmodel.Element{
		{Name: "0"},
		{Name: "1"},
		{Name: "2"},
	}

	arr := configarray.New(elements, nil, nil, nil)
	indices, err := arr.MatchedIndices("/project/app.js")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, indices)
}

func TestMatchedIndices_CriteriaFiltersElement(t *testing.T) {
	t.Parallel()

	tsOnly, err := overridetester.New([]string{"*.ts"}, nil, "/project")
	require.NoError(t, err)

	elements := []*configmodel.Element{
		{Name: "0"},
		{Name: "1", Criteria: tsOnly},
	}

	arr := configarray.New(elements, nil, nil, nil)

	indices, err := arr.MatchedIndices("/project/app.js")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, indices)

	indices, err = arr.MatchedIndices("/project/app.ts")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, indices)
}

// S9 — extractConfig argument validation.
func TestExtractConfig_RejectsNonAbsolutePath(t *testing.T) {
	t.Parallel()

	arr := configarray.New([]*configmodel.Element{{Name: "0"}}, nil, nil, nil)

	_, err := arr.ExtractConfig("relative/app.js")
	require.Error(t, err)
	require.ErrorIs(t, err, configarray.ErrPathNotAbsolute)
	assert.Contains(t, err.Error(), "relative/app.js")
}

// Invariant 1: cache idempotence and reference identity.
func TestExtractConfig_CacheIsReferenceIdentical(t *testing.T) {
	t.Parallel()

	elements := []*configmodel.Element{
		{Name: "0", Rules: map[string]any{"r": "error"}},
	}

	arr := configarray.New(elements, nil, nil, nil)

	first, err := arr.ExtractConfig("/project/app.js")
	require.NoError(t, err)

	second, err := arr.ExtractConfig("/project/app.js")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestExtractConfig_LogsCacheHitAndMiss(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "DEBUG"}, &buf)

	elements := []*configmodel.Element{
		{Name: "0", Rules: map[string]any{"r": "error"}},
	}

	arr := configarray.New(elements, nil, nil, logger)

	_, err := arr.ExtractConfig("/project/app.js")
	require.NoError(t, err)

	_, err = arr.ExtractConfig("/project/app.js")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "extract config cache miss")
	assert.Contains(t, out, "extract config cache hit")
}

// Same matched-index set via a different (but criteria-equivalent) path
// hits the same cache entry.
func TestExtractConfig_SameMatchedIndicesShareCacheEntry(t *testing.T) {
	t.Parallel()

	elements := []*configmodel.Element{
		{Name: "0", Rules: map[string]any{"r": "error"}},
	}

	arr := configarray.New(elements, nil, nil, nil)

	first, err := arr.ExtractConfig("/project/app.js")
	require.NoError(t, err)

	second, err := arr.ExtractConfig("/project/other.js")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestPluginEnvironments_FirstOccurrenceWinsAndFreezes(t *testing.T) {
	t.Parallel()

	defA := &configmodel.PluginDefinition{
		Environments: map[string]configmodel.EnvironmentDefinition{
			"node": {Globals: map[string]any{"require": false}},
		},
	}
	defB := &configmodel.PluginDefinition{
		Environments: map[string]configmodel.EnvironmentDefinition{
			"node": {Globals: map[string]any{"require": true}},
		},
	}

	elements := []*configmodel.Element{
		{Name: "0", Plugins: pluginsWith("custom", defA)},
		{Name: "1", Plugins: pluginsWith("custom", defB)},
	}

	arr := configarray.New(elements, nil, nil, nil)

	envs, err := arr.PluginEnvironments()
	require.NoError(t, err)

	env, ok := envs["custom/node"]
	require.True(t, ok)
	assert.Equal(t, false, env.Globals["require"])

	envsAgain, err := arr.PluginEnvironments()
	require.NoError(t, err)
	assert.Equal(t, envs, envsAgain)
}
