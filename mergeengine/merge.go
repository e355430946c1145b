package mergeengine

import (
	"errors"
	"fmt"

	"github.com/0xalexb/lintconfig/configmodel"
)

// ErrWinningParserFailed is returned when the element that wins the
// parser slot (the first, in matched-index order, to declare one) had
// captured a load failure. A failed parser that is overridden by a
// higher-precedence element never surfaces this error.
var ErrWinningParserFailed = errors.New("mergeengine: winning parser failed to load")

// ErrWinningPluginFailed is returned when a plugin id that is about to be
// adopted into the extracted config had captured a load failure.
var ErrWinningPluginFailed = errors.New("mergeengine: winning plugin failed to load")

// PluginMaps is the array-wide, plugin-derived rule/environment lookup
// that post-fold element validation is checked against. It is computed
// once per ConfigArray from every element's plugins, not only the
// matched ones, because validateConfigArrayElement in the original
// design needs the full picture regardless of which elements matched.
type PluginMaps struct {
	Environments map[string]configmodel.EnvironmentDefinition
	Processors   map[string]configmodel.ProcessorDefinition
	Rules        map[string]configmodel.RuleDefinition
}

// Validator validates one matched element against the plugin-derived
// rule/environment lookups, once the full fold (and therefore the full
// plugin set) is known. A nil Validator passed to Merge skips validation
// entirely.
type Validator interface {
	ValidateElement(element *configmodel.Element, maps PluginMaps) error
}

// Merge folds elements (already selected and ordered high-precedence to
// low-precedence by the caller) into a single ExtractedConfig. Elements
// are never mutated. Folding stops and returns an error the moment a
// dependency that has already won (parser or a newly adopted plugin)
// turns out to have failed to load; a dependency that loses to a
// higher-precedence winner, or that belongs to a non-matching element
// the caller never included, never surfaces its captured error.
func Merge(elements []*configmodel.Element, maps PluginMaps, validator Validator) (*configmodel.ExtractedConfig, error) {
	result := configmodel.New()

	for _, element := range elements {
		if err := foldParser(result, element); err != nil {
			return nil, err
		}

		foldProcessor(result, element)

		mergeRecordInto(result.Env, element.Env)
		mergeRecordInto(result.Globals, element.Globals)
		mergeRecordInto(result.ParserOptions, element.ParserOptions)
		mergeRecordInto(result.Settings, element.Settings)

		if err := foldPlugins(result, element); err != nil {
			return nil, err
		}

		foldRules(result, element)
	}

	if validator != nil {
		for _, element := range elements {
			if err := validator.ValidateElement(element, maps); err != nil {
				return nil, fmt.Errorf("mergeengine: validating %q: %w", element.Name, err)
			}
		}
	}

	return result, nil
}

func foldParser(result *configmodel.ExtractedConfig, element *configmodel.Element) error {
	if result.Parser != nil || element.Parser == nil {
		return nil
	}

	if element.Parser.Failed() {
		return fmt.Errorf("%w: %s: %w", ErrWinningParserFailed, element.Name, element.Parser.Error)
	}

	dep := *element.Parser
	result.Parser = &dep

	return nil
}

func foldProcessor(result *configmodel.ExtractedConfig, element *configmodel.Element) {
	if result.Processor == "" && element.Processor != "" {
		result.Processor = element.Processor
	}
}

func foldPlugins(result *configmodel.ExtractedConfig, element *configmodel.Element) error {
	for id, dep := range element.Plugins {
		if _, exists := result.Plugins[id]; exists {
			continue
		}

		if dep.Failed() {
			return fmt.Errorf("%w: %s: %w", ErrWinningPluginFailed, id, dep.Error)
		}

		result.Plugins[id] = dep
	}

	return nil
}

// foldRules implements the severity-preserving combine: a rule not yet
// present adopts the element's setting wrapped to array form; a rule
// already present with severity only (length 1) may still pick up
// options from a lower-precedence element's array setting; anything else
// is left untouched because a higher-precedence element already fixed
// both severity and options.
func foldRules(result *configmodel.ExtractedConfig, element *configmodel.Element) {
	for ruleID, srcDef := range element.Rules {
		existing, ok := result.Rules[ruleID]

		switch {
		case !ok:
			result.Rules[ruleID] = configmodel.WrapSeverity(srcDef)
		case len(existing) == 1:
			if arr, isArr := configmodel.IsArraySetting(srcDef); isArr && len(arr) >= 2 {
				result.Rules[ruleID] = append(existing, arr[1:]...)
			}
		}
	}
}
