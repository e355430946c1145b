package configfactory

import "github.com/0xalexb/lintconfig/configmodel"

// Resolver resolves a module request (a shareable config package name, a
// plugin package name, or a parser package name) to an absolute file path,
// the way a host environment's module resolution would, relative to
// importerPath. Resolver is supplied by the caller: this package never
// resolves a module on its own, since resolution conventions belong to
// the host, not to the resolver subsystem.
type Resolver interface {
	Resolve(request, importerPath string) (string, error)
}

// SchemaValidator validates a raw configuration body, and a normalized
// element's rule/environment usage, against whatever schema the caller's
// host enforces. Both methods are optional in the sense that a nil
// SchemaValidator simply skips validation.
type SchemaValidator interface {
	// ValidateConfigSchema checks body as loaded from source, before any
	// normalization.
	ValidateConfigSchema(body configmodel.ConfigBody, source string) error
	// ValidateConfigArrayElement checks a normalized element's rule
	// settings against the rule/environment definitions visible to it.
	ValidateConfigArrayElement(
		element *configmodel.Element,
		rules map[string]configmodel.RuleDefinition,
		envs map[string]configmodel.EnvironmentDefinition,
	) error
}

// ModuleLoader loads a dynamically-loadable module once Resolver has
// turned a request into a concrete path: a "plain module file" style
// configuration file, or a parser/plugin module. This package never
// executes arbitrary code itself; ModuleLoader is the caller's hook for
// whatever dynamic loading mechanism its host provides.
type ModuleLoader interface {
	// LoadConfigModule loads a configuration file whose body is the value
	// produced by loading the module at path, rather than a static
	// document. Each call performs a fresh load: ModuleLoader implementors
	// are responsible for bypassing any cache of their own if staleness
	// would otherwise leak across Factory calls.
	LoadConfigModule(path string) (configmodel.ConfigBody, error)
	// LoadParserModule loads a parser module and returns its opaque
	// definition.
	LoadParserModule(path string) (any, error)
	// LoadPluginModule loads a plugin module and returns its definition.
	LoadPluginModule(path string) (*configmodel.PluginDefinition, error)
}
