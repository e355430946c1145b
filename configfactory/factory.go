package configfactory

import (
	"log/slog"

	"github.com/0xalexb/lintconfig/configarray"
	"github.com/0xalexb/lintconfig/configmodel"
	"github.com/0xalexb/lintconfig/logging"
	"github.com/0xalexb/lintconfig/mergeengine"
)

// Factory builds configarray.Array values from configuration bodies,
// files, or directories, resolving extends/parsers/plugins along the way.
// A Factory is safe for concurrent use once constructed: all of its state
// is read-only after New returns.
type Factory struct {
	cwd                  string
	resolver             Resolver
	validator            SchemaValidator
	fs                   FileSystem
	moduleLoader         ModuleLoader
	ruleResolver         configmodel.RuleResolver
	logger               *slog.Logger
	additionalParserPool map[string]any
	additionalPluginPool map[string]*configmodel.PluginDefinition
	maxProbeDirs         int
}

// Option configures a Factory constructed with New.
type Option func(*Factory)

// WithCWD sets the working directory used to resolve plugin packages and
// the references LoadFile is given (bare shareable-config names, relative
// paths), and the base path of a body created without a FilePath. Parser
// and shareable-config names inside a body are resolved relative to the
// importing file instead. Defaults to ".".
func WithCWD(cwd string) Option {
	return func(f *Factory) { f.cwd = cwd }
}

// WithResolver supplies the module resolver used for shareable configs,
// plugins, and parsers. There is no default: without one, a parser or
// plugin that needs resolution is captured as a failed dependency and a
// bare shareable-config reference returns an error. fsresolve.New(cwd) is
// a stdlib-only Resolver a caller can pass here.
func WithResolver(r Resolver) Option {
	return func(f *Factory) { f.resolver = r }
}

// WithSchemaValidator supplies the schema validator consulted once per
// loaded body and once per normalized element. A nil validator (the
// default) skips validation entirely.
func WithSchemaValidator(v SchemaValidator) Option {
	return func(f *Factory) { f.validator = v }
}

// WithFileSystem overrides the filesystem used to read configuration
// files. Defaults to OSFS{}.
func WithFileSystem(fsys FileSystem) Option {
	return func(f *Factory) { f.fs = fsys }
}

// WithModuleLoader supplies the loader used for ".js"-style dynamic
// configuration files and for loading resolved parser/plugin modules.
func WithModuleLoader(m ModuleLoader) Option {
	return func(f *Factory) { f.moduleLoader = m }
}

// WithRuleResolver supplies the resolver used to chase string rule
// aliases in plugin-provided rule definitions.
func WithRuleResolver(r configmodel.RuleResolver) Option {
	return func(f *Factory) { f.ruleResolver = r }
}

// WithLogger overrides the logger used for factory-level diagnostics.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) { f.logger = l }
}

// WithAdditionalParserPool supplies already-loaded parser definitions,
// keyed by the specifier a configuration body would use to reference
// them, short-circuiting module resolution entirely.
func WithAdditionalParserPool(pool map[string]any) Option {
	return func(f *Factory) { f.additionalParserPool = pool }
}

// WithAdditionalPluginPool supplies already-loaded plugin definitions,
// keyed by the plugin's short id, short-circuiting module resolution
// entirely.
func WithAdditionalPluginPool(pool map[string]*configmodel.PluginDefinition) Option {
	return func(f *Factory) { f.additionalPluginPool = pool }
}

// WithMaxProbeDirs caps how many directories Resolve probes, counting the
// source file's own directory as the first, so 1 probes that directory
// only. A value of 0 (the default) walks all the way to the filesystem
// root.
func WithMaxProbeDirs(n int) Option {
	return func(f *Factory) { f.maxProbeDirs = n }
}

// New constructs a Factory. cwd defaults to "."; the filesystem defaults
// to OSFS{}; no Resolver is installed unless one is supplied via
// WithResolver.
func New(opts ...Option) *Factory {
	f := &Factory{
		cwd:                  ".",
		fs:                   OSFS{},
		logger:               slog.Default(),
		additionalParserPool: map[string]any{},
		additionalPluginPool: map[string]*configmodel.PluginDefinition{},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateOptions configures Factory.Create.
type CreateOptions struct {
	// FilePath is the absolute path attributed to body for basePath and
	// diagnostic purposes, even though body was not read off disk.
	FilePath string
	// Name labels the resulting top-level element for diagnostics.
	Name string
	// Parent, if non-nil, is composed under the newly built array unless
	// body declares root: true.
	Parent *configarray.Array
}

// LoadOptions configures Factory.LoadFile and Factory.LoadOnDirectory.
type LoadOptions struct {
	Name   string
	Parent *configarray.Array
}

// Create normalizes body (already in memory, not read from a file) into a
// configarray.Array, composed under opts.Parent unless body declares
// root: true.
func (f *Factory) Create(body configmodel.ConfigBody, opts CreateOptions) (*configarray.Array, error) {
	if err := f.validateBody(body, opts.FilePath); err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = opts.FilePath
	}

	elements, err := f.normalize(body, opts.FilePath, name, false)
	if err != nil {
		return nil, err
	}

	return f.buildArray(elements, opts.Parent), nil
}

// LoadFile loads ref, which may be an absolute/relative file path or a
// bare shareable-config package name, into a configarray.Array composed
// under opts.Parent unless the loaded body declares root: true.
func (f *Factory) LoadFile(ref string, opts LoadOptions) (*configarray.Array, error) {
	resolvedPath, err := f.resolveFileOrShareable(ref)
	if err != nil {
		return nil, err
	}

	body, err := f.loadConfigFile(resolvedPath)
	if err != nil {
		return nil, err
	}

	if err := f.validateBody(body, resolvedPath); err != nil {
		return nil, err
	}

	logging.ConfigFileLoaded(f.logger, resolvedPath)

	name := opts.Name
	if name == "" {
		name = resolvedPath
	}

	elements, err := f.normalize(body, resolvedPath, name, false)
	if err != nil {
		return nil, err
	}

	return f.buildArray(elements, opts.Parent), nil
}

// LoadOnDirectory probes directory for the first recognized configuration
// file in candidateFilenames order and loads it, composed under
// opts.Parent unless the loaded body declares root: true. Returns
// ErrNoConfigFound if directory contains none of them (or each candidate
// that exists contributes nothing, as with a package.json lacking
// "eslintConfig").
func (f *Factory) LoadOnDirectory(directory string, opts LoadOptions) (*configarray.Array, error) {
	for _, candidate := range candidateFilenames {
		path := joinPath(directory, candidate)

		if _, err := f.fs.Stat(path); err != nil {
			continue
		}

		body, err := f.loadConfigFile(path)
		if err != nil {
			var notFound *ModuleNotFoundError
			if isModuleNotFound(err, &notFound) {
				continue
			}

			return nil, err
		}

		if body == nil {
			continue
		}

		if err := f.validateBody(body, path); err != nil {
			return nil, err
		}

		logging.ConfigFileLoaded(f.logger, path)

		name := opts.Name
		if name == "" {
			name = path
		}

		elements, err := f.normalize(body, path, name, false)
		if err != nil {
			return nil, err
		}

		return f.buildArray(elements, opts.Parent), nil
	}

	logging.DirectoryProbeMiss(f.logger, directory)

	return nil, ErrNoConfigFound
}

func (f *Factory) validateBody(body configmodel.ConfigBody, source string) error {
	if f.validator == nil {
		return nil
	}

	return f.validator.ValidateConfigSchema(body, source) //nolint:wrapcheck
}

// buildArray decides root-cutoff composition: the newly normalized
// elements are returned alone if they declare root: true or there is no
// parent, otherwise they are appended after the parent's elements so the
// parent remains lower-precedence.
func (f *Factory) buildArray(elements []*configmodel.Element, parent *configarray.Array) *configarray.Array {
	var validator mergeengine.Validator
	if f.validator != nil {
		validator = schemaValidatorAdapter{inner: f.validator}
	}

	ownArray := configarray.New(elements, validator, f.ruleResolver, f.logger)

	if parent == nil || ownArray.Root() {
		return ownArray
	}

	combined := make([]*configmodel.Element, 0, parent.Len()+len(elements))
	combined = append(combined, parent.Elements()...)
	combined = append(combined, elements...)

	return configarray.New(combined, validator, f.ruleResolver, f.logger)
}
