package configfactory

import "github.com/0xalexb/lintconfig/configmodel"

// corePresets holds the fixed bodies behind the "eslint:recommended" and
// "eslint:all" extends references. These are internal, not loaded from
// any file, so resolveCorePreset never touches the filesystem or a
// Resolver for them.
var corePresets = map[string]configmodel.ConfigBody{
	"eslint:recommended": {
		"rules": map[string]any{
			"no-undef":          "error",
			"no-unused-vars":    "warn",
			"no-dupe-keys":      "error",
			"no-unreachable":    "error",
			"no-const-assign":   "error",
			"no-debugger":       "warn",
			"constructor-super": "error",
		},
	},
	"eslint:all": {
		"rules": map[string]any{
			"no-undef":          "error",
			"no-unused-vars":    "error",
			"no-dupe-keys":      "error",
			"no-unreachable":    "error",
			"no-const-assign":   "error",
			"no-debugger":       "error",
			"constructor-super": "error",
			"eqeqeq":            "error",
			"curly":             "error",
			"no-var":            "error",
		},
	},
}
