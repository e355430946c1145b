package configmodel

import (
	"encoding/json"

	"github.com/0xalexb/lintconfig/depload"
)

// ExtractedConfig is the merged result of folding a ConfigArray's matched
// elements for one source file. Rule settings are always stored in array
// form: [severity, ...options], even when every contributing element gave
// only a bare severity.
type ExtractedConfig struct {
	Env           map[string]any
	Globals       map[string]any
	ParserOptions map[string]any
	Settings      map[string]any

	// Parser is nil when no matched element supplied one.
	Parser *depload.LoadedDependency
	// Plugins is keyed by plugin id; may be empty but is never nil.
	Plugins map[string]depload.LoadedDependency
	// Processor is "" when no matched element supplied one.
	Processor string
	// Rules is keyed by rule id; every value is [severity, ...options].
	Rules map[string][]any
}

// New returns an ExtractedConfig with all record/map fields initialized to
// empty (non-nil) maps, matching the documented serialization form in
// which "possibly empty" never means "absent".
func New() *ExtractedConfig {
	return &ExtractedConfig{
		Env:           map[string]any{},
		Globals:       map[string]any{},
		ParserOptions: map[string]any{},
		Settings:      map[string]any{},
		Parser:        nil,
		Plugins:       map[string]depload.LoadedDependency{},
		Processor:     "",
		Rules:         map[string][]any{},
	}
}

// extractedConfigJSON is the documented serialization form: Parser is
// projected through its diagnostic view rather than its opaque Definition.
type extractedConfigJSON struct {
	Env           map[string]any                     `json:"env"`
	Globals       map[string]any                     `json:"globals"`
	ParserOptions map[string]any                     `json:"parserOptions"`
	Settings      map[string]any                     `json:"settings"`
	Parser        *depload.DiagnosticView            `json:"parser,omitempty"`
	Plugins       map[string]depload.LoadedDependency `json:"plugins"`
	Processor     string                              `json:"processor,omitempty"`
	Rules         map[string][]any                    `json:"rules"`
}

// MarshalJSON implements json.Marshaler, honoring the documented
// serialization form: rule settings in array form, and the parser (if
// any) projected through its diagnostic view so its opaque Definition is
// never traversed.
func (c *ExtractedConfig) MarshalJSON() ([]byte, error) {
	view := extractedConfigJSON{
		Env:           c.Env,
		Globals:       c.Globals,
		ParserOptions: c.ParserOptions,
		Settings:      c.Settings,
		Parser:        nil,
		Plugins:       c.Plugins,
		Processor:     c.Processor,
		Rules:         c.Rules,
	}

	if c.Parser != nil {
		diag := c.Parser.Diagnostic()
		view.Parser = &diag
	}

	return json.Marshal(view) //nolint:wrapcheck
}
