package di

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the lintconfig CLI version, set via ldflags.
	Version = "dev"
	// SchemaVersion identifies the .eslintrc configuration schema this
	// build of configfactory understands, set via ldflags. A host
	// comparing this against a config file's own declared schema can
	// decide whether to trust this build's resolution of it.
	SchemaVersion = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)
