package configfactory

import (
	"errors"
	"strings"

	"github.com/0xalexb/lintconfig/depload"
	"github.com/0xalexb/lintconfig/logging"
)

// loadFailure logs the failure via DependencyLoadFailed and returns the
// depload.LoadedDependency carrying it, the shared tail of every error
// branch in loadParser/loadPlugin below.
func (f *Factory) loadFailure(kind, id, spec, importerName, filePath string, err error) depload.LoadedDependency {
	logging.DependencyLoadFailed(f.logger, kind, spec, err)

	return depload.NewError(id, importerName, filePath, err)
}

// loadParser resolves and loads a parser specifier into a
// depload.LoadedDependency, never returning a Go error directly: a
// resolution or load failure is captured on the dependency itself and
// only becomes fatal if it wins during the merge (mergeengine.Merge).
func (f *Factory) loadParser(spec, filePath, importerName string) depload.LoadedDependency {
	if def, ok := f.additionalParserPool[spec]; ok {
		return depload.New(spec, importerName, filePath, "", def)
	}

	if f.resolver == nil {
		return f.loadFailure("parser", spec, spec, importerName, filePath, errors.New("configfactory: parser resolution requires a Resolver and none was configured"))
	}

	resolved, err := f.resolver.Resolve(spec, filePath)
	if err != nil {
		return f.loadFailure("parser", spec, spec, importerName, filePath, err)
	}

	if f.moduleLoader == nil {
		return f.loadFailure("parser", spec, spec, importerName, filePath, errors.New("configfactory: loading a parser module requires a ModuleLoader and none was configured"))
	}

	def, err := f.moduleLoader.LoadParserModule(resolved)
	if err != nil {
		return f.loadFailure("parser", spec, spec, importerName, filePath, err)
	}

	return depload.New(spec, importerName, filePath, resolved, def)
}

// loadPlugin resolves and loads a plugin specifier into a
// depload.LoadedDependency keyed by its short id (ID always equals the
// map key it is stored under in an element's Plugins). Plugins are
// resolved relative to the factory's cwd, never relative to the
// importing configuration file, since a plugin is a project-level
// dependency rather than a configuration-relative one.
func (f *Factory) loadPlugin(spec, filePath, importerName string) depload.LoadedDependency {
	id := shortPluginName(spec)

	if strings.ContainsAny(spec, " \t\n") {
		return f.loadFailure("plugin", id, spec, importerName, filePath, &TemplatedError{
			Template: "whitespace-found",
			Data:     map[string]any{"pluginName": spec},
			Message:  "configfactory: plugin name \"" + spec + "\" contains whitespace",
		})
	}

	if def, ok := f.additionalPluginPool[id]; ok {
		return depload.New(id, importerName, filePath, "", def)
	}

	if f.resolver == nil {
		return f.loadFailure("plugin", id, spec, importerName, filePath, errors.New("configfactory: plugin resolution requires a Resolver and none was configured"))
	}

	packageName := normalizePluginPackageName(spec)

	resolved, err := f.resolver.Resolve(packageName, f.cwd)
	if err != nil {
		var notFound *ModuleNotFoundError
		if errors.As(err, &notFound) {
			return f.loadFailure("plugin", id, spec, importerName, filePath, &TemplatedError{
				Template: "plugin-missing",
				Data:     map[string]any{"pluginName": spec, "projectRoot": f.cwd},
				Message:  "configfactory: plugin \"" + spec + "\" could not be found relative to " + f.cwd,
			})
		}

		return f.loadFailure("plugin", id, spec, importerName, filePath, err)
	}

	if f.moduleLoader == nil {
		return f.loadFailure("plugin", id, spec, importerName, filePath, errors.New("configfactory: loading a plugin module requires a ModuleLoader and none was configured"))
	}

	def, err := f.moduleLoader.LoadPluginModule(resolved)
	if err != nil {
		return f.loadFailure("plugin", id, spec, importerName, filePath, err)
	}

	return depload.New(id, importerName, filePath, resolved, def)
}
