package yamlsrc_test

import (
	"testing"

	"github.com/0xalexb/lintconfig/configfactory/sourceio/yamlsrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PlainYAML(t *testing.T) {
	t.Parallel()

	body, err := yamlsrc.Load([]byte("rules:\n  semi: error\n"))
	require.NoError(t, err)

	rules, ok := body["rules"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "error", rules["semi"])
}

func TestLoad_NestedDocument(t *testing.T) {
	t.Parallel()

	data := []byte(`
env:
  browser: true
parserOptions:
  ecmaVersion: 2020
`)

	body, err := yamlsrc.Load(data)
	require.NoError(t, err)

	env, ok := body["env"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, env["browser"])
}

func TestLoad_EmptyDocumentYieldsEmptyMap(t *testing.T) {
	t.Parallel()

	body, err := yamlsrc.Load(nil)
	require.NoError(t, err)
	assert.Empty(t, body)
	assert.NotNil(t, body)
}

func TestLoad_InvalidYAMLIsAnError(t *testing.T) {
	t.Parallel()

	_, err := yamlsrc.Load([]byte("rules: [unterminated"))
	require.Error(t, err)
}
