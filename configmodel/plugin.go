package configmodel

// PluginDefinition is the shape a loaded plugin module may expose, per the
// "Plugin module shape" section of the external interfaces contract:
// named preset configurations, environments, processors, and rules.
type PluginDefinition struct {
	// Configs maps a preset name (as referenced by
	// "plugin:<pluginName>/<configName>" in extends) to its body.
	Configs map[string]ConfigBody
	// Environments maps a short environment name to its definition.
	Environments map[string]EnvironmentDefinition
	// Processors maps a short processor name (including names beginning
	// with "." for file-extension processors) to its definition.
	Processors map[string]ProcessorDefinition
	// Rules maps a short rule name to its definition or, before
	// normalization, to a string alias or a bare create callable.
	Rules map[string]any
}

// EnvironmentDefinition is a plugin-provided named environment: a bundle
// of globals and (optionally) parserOptions that `env: {"plugin/name":
// true}` pulls in.
type EnvironmentDefinition struct {
	Globals       map[string]any
	ParserOptions map[string]any
}

// ProcessorDefinition is a plugin-provided processor. PreprocessExtensions
// lists the file extensions (each beginning with ".") this processor
// claims; the factory does not read it. The factory's synthetic
// per-extension elements come from processor names beginning with "." in
// PluginDefinition.Processors, so that files with that extension are
// routed through the processor without the plugin's author having to
// write an explicit override.
type ProcessorDefinition struct {
	PreprocessExtensions []string
	SupportsAutofix      bool
}

// RuleDefinition is a normalized plugin-provided rule: Create is the
// opaque rule implementation (never evaluated by this subsystem), and
// Schema is the opaque options schema, if any.
type RuleDefinition struct {
	Create any
	Schema any
}
