package depload_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/0xalexb/lintconfig/depload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Success(t *testing.T) {
	t.Parallel()

	dep := depload.New("my-parser", "app/.eslintrc.json", "/project/.eslintrc.json", "/project/node_modules/my-parser/index.js", struct{ X int }{X: 1})

	assert.False(t, dep.Failed())
	assert.Equal(t, "my-parser", dep.ID)
	assert.Equal(t, "/project/.eslintrc.json", dep.ImporterPath)
	assert.Equal(t, "/project/node_modules/my-parser/index.js", dep.FilePath)
	assert.NotNil(t, dep.Definition)
}

func TestNewError_CapturesFailure(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("module not found")
	dep := depload.NewError("my-plugin", "app/.eslintrc.json", "/project/.eslintrc.json", loadErr)

	assert.True(t, dep.Failed())
	assert.Empty(t, dep.FilePath)
	assert.Nil(t, dep.Definition)
	assert.Equal(t, loadErr, dep.Error)
}

func TestDiagnostic_OmitsDefinition(t *testing.T) {
	t.Parallel()

	type secretDefinition struct {
		APIKey string
	}

	dep := depload.New("p", "importer", "/a/.eslintrc.json", "/a/node_modules/p/index.js", secretDefinition{APIKey: "shh"})

	view := dep.Diagnostic()
	assert.Equal(t, "p", view.ID)
	assert.Equal(t, "/a/.eslintrc.json", view.ImporterPath)
	assert.Equal(t, "/a/node_modules/p/index.js", view.FilePath)
	assert.Empty(t, view.ErrorStack)

	data, err := json.Marshal(dep)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "shh")
	assert.NotContains(t, string(data), "APIKey")
}

func TestDiagnostic_IncludesErrorStack(t *testing.T) {
	t.Parallel()

	dep := depload.NewError("p", "importer", "/a/.eslintrc.json", errors.New("boom"))

	view := dep.Diagnostic()
	assert.Equal(t, "boom", view.ErrorStack)
	assert.Empty(t, view.FilePath)

	data, err := json.Marshal(dep)
	require.NoError(t, err)
	assert.Contains(t, string(data), "boom")
}

func TestLogValue_NeverExposesDefinition(t *testing.T) {
	t.Parallel()

	type secretDefinition struct {
		APIKey string
	}

	dep := depload.New("p", "importer", "/a/.eslintrc.json", "", secretDefinition{APIKey: "shh"})

	val := dep.LogValue()
	group := val.Group()

	for _, attr := range group {
		assert.NotEqual(t, "shh", attr.Value.String())
	}
}
