package configfactory

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/lintconfig/configfactory/sourceio/jsonsrc"
	"github.com/0xalexb/lintconfig/configfactory/sourceio/legacysrc"
	"github.com/0xalexb/lintconfig/configfactory/sourceio/yamlsrc"
	"github.com/0xalexb/lintconfig/configmodel"
)

// candidateFilenames is probed, in order, by LoadOnDirectory.
var candidateFilenames = []string{
	".eslintrc.js",
	".eslintrc.yaml",
	".eslintrc.yml",
	".eslintrc.json",
	".eslintrc",
	"package.json",
}

// loadConfigFile reads path and decodes it into a configuration body,
// dispatching on file extension the way a host's own config loader would:
// a dynamically-loadable module for ".js", JSON-with-comments for
// ".json" (including package.json's nested "eslintConfig" field), YAML
// for ".yaml"/".yml", and a comment-stripped YAML parse for anything else. A nil
// body with a nil error means the file exists but contributes nothing
// (e.g. a package.json with no "eslintConfig" field).
func (f *Factory) loadConfigFile(path string) (configmodel.ConfigBody, error) {
	data, err := f.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read config file: %s\nError: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	base := filepath.Base(path)

	switch {
	case ext == ".js":
		return f.loadDynamicModule(path)
	case ext == ".json":
		return f.loadJSON(path, base, data)
	case ext == ".yaml" || ext == ".yml":
		body, loadErr := yamlsrc.Load(data)
		if loadErr != nil {
			return nil, fmt.Errorf("Cannot read config file: %s\nError: %w", path, loadErr)
		}

		return configmodel.ConfigBody(body), nil
	default:
		body, loadErr := legacysrc.Load(data)
		if loadErr != nil {
			return nil, fmt.Errorf("Cannot read config file: %s\nError: %w", path, loadErr)
		}

		return configmodel.ConfigBody(body), nil
	}
}

func (f *Factory) loadDynamicModule(path string) (configmodel.ConfigBody, error) {
	if f.moduleLoader == nil {
		return nil, fmt.Errorf("configfactory: %s requires a ModuleLoader and none was configured", path)
	}

	body, err := f.moduleLoader.LoadConfigModule(path)
	if err != nil {
		return nil, fmt.Errorf("configfactory: loading config module %s: %w", path, err)
	}

	return body, nil
}

func (f *Factory) loadJSON(path, base string, data []byte) (configmodel.ConfigBody, error) {
	raw, err := jsonsrc.Load(data)
	if err != nil {
		return nil, &TemplatedError{
			Template: "failed-to-read-json",
			Data:     map[string]any{"path": path},
			Message:  fmt.Sprintf("Cannot read config file: %s\nError: %v", path, err),
		}
	}

	if base != "package.json" {
		return configmodel.ConfigBody(raw), nil
	}

	nested, ok := raw["eslintConfig"]
	if !ok {
		return nil, nil //nolint:nilnil // absent "eslintConfig" contributes nothing, not an error
	}

	asMap, ok := nested.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("configfactory: %s: \"eslintConfig\" field is not an object", path)
	}

	return configmodel.ConfigBody(asMap), nil
}
