package configfactory

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/lintconfig/configmodel"
)

// resolveExtends expands one "extends" entry into the elements it
// contributes, dispatching across the three namespaces: "eslint:*" core
// presets, "plugin:<name>/<config>" plugin-provided presets, and
// shareable config packages (filesystem-shaped, dotted-relative, or bare
// package names resolved through the factory's Resolver).
func (f *Factory) resolveExtends(spec, importerPath, importerName string) ([]*configmodel.Element, error) {
	switch {
	case strings.HasPrefix(spec, "eslint:"):
		return f.resolveCorePreset(spec, importerPath, importerName)
	case strings.HasPrefix(spec, "plugin:"):
		return f.resolvePluginPreset(spec, importerPath, importerName)
	default:
		return f.resolveShareableConfig(spec, importerPath, importerName)
	}
}

func (f *Factory) resolveCorePreset(spec, importerPath, importerName string) ([]*configmodel.Element, error) {
	body, ok := corePresets[spec]
	if !ok {
		return nil, &TemplatedError{
			Template: "extend-config-missing",
			Data:     map[string]any{"configName": spec, "importerName": importerName},
			Message:  fmt.Sprintf("configfactory: %q extended by %q is not a recognized core preset", spec, importerName),
		}
	}

	if err := f.validateBody(body, spec); err != nil {
		return nil, err
	}

	return f.normalize(body, importerPath, spec, false)
}

func (f *Factory) resolvePluginPreset(spec, importerPath, importerName string) ([]*configmodel.Element, error) {
	rest := strings.TrimPrefix(spec, "plugin:")

	pluginName, configName, ok := strings.Cut(rest, "/")
	if !ok || pluginName == "" || configName == "" {
		return nil, fmt.Errorf("configfactory: %q is not a valid \"plugin:<name>/<config>\" reference", spec)
	}

	dep := f.loadPlugin(pluginName, importerPath, importerName)
	if dep.Failed() {
		return nil, fmt.Errorf("configfactory: loading plugin %q for %q: %w", dep.ID, spec, dep.Error)
	}

	def, ok := dep.Definition.(*configmodel.PluginDefinition)
	if !ok || def == nil {
		return nil, fmt.Errorf("configfactory: plugin %q did not produce a usable definition", dep.ID)
	}

	body, ok := def.Configs[configName]
	if !ok {
		return nil, &TemplatedError{
			Template: "extend-config-missing",
			Data:     map[string]any{"configName": spec, "pluginName": pluginName, "importerName": importerName},
			Message:  fmt.Sprintf("configfactory: %q extended by %q names a config plugin %q does not export", spec, importerName, pluginName),
		}
	}

	if err := f.validateBody(body, spec); err != nil {
		return nil, err
	}

	return f.normalize(body, importerPath, spec, false)
}

func (f *Factory) resolveShareableConfig(spec, importerPath, importerName string) ([]*configmodel.Element, error) {
	var resolvedPath string

	switch {
	case isDottedRelative(spec):
		resolvedPath = filepath.Join(basePathFor(importerPath, f.cwd), spec)
	case isFilesystemShaped(spec):
		resolvedPath = spec
	default:
		if f.resolver == nil {
			return nil, fmt.Errorf("configfactory: shareable config %q requires a Resolver and none was configured", spec)
		}

		pkgName := normalizeConfigPackageName(spec)

		resolved, err := f.resolver.Resolve(pkgName, importerPath)
		if err != nil {
			return nil, fmt.Errorf("configfactory: resolving shareable config %q: %w", spec, err)
		}

		resolvedPath = resolved
	}

	body, err := f.loadConfigFile(resolvedPath)
	if err != nil {
		return nil, err
	}

	if err := f.validateBody(body, resolvedPath); err != nil {
		return nil, err
	}

	return f.normalize(body, resolvedPath, spec, false)
}
