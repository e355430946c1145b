package mergeengine_test

import (
	"errors"
	"testing"

	"github.com/0xalexb/lintconfig/configmodel"
	"github.com/0xalexb/lintconfig/depload"
	"github.com/0xalexb/lintconfig/mergeengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elem(mutate func(*configmodel.Element)) *configmodel.Element {
	e := &configmodel.Element{
		Name:          "test",
		Env:           map[string]any{},
		Globals:       map[string]any{},
		ParserOptions: map[string]any{},
		Plugins:       map[string]depload.LoadedDependency{},
		Rules:         map[string]any{},
		Settings:      map[string]any{},
	}
	mutate(e)

	return e
}

func noMaps() mergeengine.PluginMaps {
	return mergeengine.PluginMaps{}
}

// S1 — severity override: a higher-precedence array setting wins outright.
func TestMerge_S1_SeverityOverride(t *testing.T) {
	t.Parallel()

	elements := []*configmodel.Element{
		elem(func(e *configmodel.Element) { e.Rules["r"] = []any{1, true} }),
		elem(func(e *configmodel.Element) { e.Rules["r"] = []any{0, false} }),
	}

	result, err := mergeengine.Merge(elements, noMaps(), nil)
	require.NoError(t, err)
	assert.Equal(t, []any{1, true}, result.Rules["r"])
}

// S2 — options backfill: a lower-precedence array setting's options are
// appended to a higher-precedence severity-only setting.
func TestMerge_S2_OptionsBackfill(t *testing.T) {
	t.Parallel()

	elements := []*configmodel.Element{
		elem(func(e *configmodel.Element) { e.Rules["r"] = "error" }),
		elem(func(e *configmodel.Element) { e.Rules["r"] = []any{1, "n", "u"} }),
	}

	result, err := mergeengine.Merge(elements, noMaps(), nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"error", "n", "u"}, result.Rules["r"])
}

// S3 — deep env merge: null is a concrete value, preserved and not
// rewritten.
func TestMerge_S3_DeepEnvMerge(t *testing.T) {
	t.Parallel()

	elements := []*configmodel.Element{
		elem(func(e *configmodel.Element) { e.Env["browser"] = true }),
		elem(func(e *configmodel.Element) { e.Env["node"] = nil }),
	}

	result, err := mergeengine.Merge(elements, noMaps(), nil)
	require.NoError(t, err)
	assert.Equal(t, true, result.Env["browser"])

	val, exists := result.Env["node"]
	assert.True(t, exists)
	assert.Nil(t, val)
}

// S4 — an errored parser inside an element whose criteria does not match
// the target file never surfaces, because non-matching elements are
// filtered out by the caller before elements ever reach Merge.
func TestMerge_S4_ErroredParserBypassedByNonMatch(t *testing.T) {
	t.Parallel()

	elements := []*configmodel.Element{} // the .ts-only element never matched __FILE__.js

	result, err := mergeengine.Merge(elements, noMaps(), nil)
	require.NoError(t, err)
	assert.Nil(t, result.Parser)
}

// S5 — errored parser overridden: the winning (higher-precedence, first
// in order) parser succeeds, so the lower-precedence failure is never
// examined.
func TestMerge_S5_ErroredParserOverridden(t *testing.T) {
	t.Parallel()

	winning := depload.New("p-good", "imp", "/a", "/a/p-good.js", struct{}{})
	failing := depload.NewError("p-bad", "imp", "/a", errors.New("boom"))

	elements := []*configmodel.Element{
		elem(func(e *configmodel.Element) { e.Parser = &winning }),
		elem(func(e *configmodel.Element) { e.Parser = &failing }),
	}

	result, err := mergeengine.Merge(elements, noMaps(), nil)
	require.NoError(t, err)
	require.NotNil(t, result.Parser)
	assert.Equal(t, "p-good", result.Parser.ID)
}

// S6 — errored parser wins: the only element supplies a failed parser,
// which must surface as an error.
func TestMerge_S6_ErroredParserWins(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("boom")
	failing := depload.NewError("p-bad", "imp", "/a", loadErr)

	elements := []*configmodel.Element{
		elem(func(e *configmodel.Element) { e.Parser = &failing }),
	}

	_, err := mergeengine.Merge(elements, noMaps(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, mergeengine.ErrWinningParserFailed)
	assert.ErrorIs(t, err, loadErr)
}

// S7 — parserOptions deep merge: both nested feature flags survive and
// sources are left untouched.
func TestMerge_S7_ParserOptionsDeepMerge(t *testing.T) {
	t.Parallel()

	first := elem(func(e *configmodel.Element) {
		e.ParserOptions["ecmaFeatures"] = map[string]any{"jsx": true}
	})
	second := elem(func(e *configmodel.Element) {
		e.ParserOptions["ecmaFeatures"] = map[string]any{"globalReturn": true}
	})

	result, err := mergeengine.Merge([]*configmodel.Element{first, second}, noMaps(), nil)
	require.NoError(t, err)

	features, ok := result.ParserOptions["ecmaFeatures"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, features["jsx"])
	assert.Equal(t, true, features["globalReturn"])

	// sources unchanged
	assert.Equal(t, map[string]any{"jsx": true}, first.ParserOptions["ecmaFeatures"])
	assert.Equal(t, map[string]any{"globalReturn": true}, second.ParserOptions["ecmaFeatures"])
}

func TestMerge_PluginFirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	winning := depload.New("pl", "imp", "/a", "/a/pl.js", "winning-def")
	other := depload.New("pl", "imp", "/b", "/b/pl.js", "other-def")

	elements := []*configmodel.Element{
		elem(func(e *configmodel.Element) { e.Plugins = map[string]depload.LoadedDependency{"pl": winning} }),
		elem(func(e *configmodel.Element) { e.Plugins = map[string]depload.LoadedDependency{"pl": other} }),
	}

	result, err := mergeengine.Merge(elements, noMaps(), nil)
	require.NoError(t, err)
	assert.Equal(t, "winning-def", result.Plugins["pl"].Definition)
}

func TestMerge_PluginErrorPropagatesOnlyWhenItWins(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("plugin missing")
	failing := depload.NewError("pl", "imp", "/a", loadErr)

	elements := []*configmodel.Element{
		elem(func(e *configmodel.Element) { e.Plugins = map[string]depload.LoadedDependency{"pl": failing} }),
	}

	_, err := mergeengine.Merge(elements, noMaps(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, mergeengine.ErrWinningPluginFailed)
}

func TestMerge_DoesNotMutateSourceElements(t *testing.T) {
	t.Parallel()

	e1 := elem(func(e *configmodel.Element) {
		e.Settings["a"] = map[string]any{"nested": map[string]any{"x": 1}}
	})
	e2 := elem(func(e *configmodel.Element) {
		e.Settings["a"] = map[string]any{"nested": map[string]any{"y": 2}}
	})

	before1 := cloneSettings(e1.Settings)
	before2 := cloneSettings(e2.Settings)

	_, err := mergeengine.Merge([]*configmodel.Element{e1, e2}, noMaps(), nil)
	require.NoError(t, err)

	assert.Equal(t, before1, e1.Settings)
	assert.Equal(t, before2, e2.Settings)
}

func cloneSettings(m map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = cloneSettings(nested)
		}

		out[k] = v
	}

	return out
}
