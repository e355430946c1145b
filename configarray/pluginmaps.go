package configarray

import (
	"fmt"

	"github.com/0xalexb/lintconfig/configmodel"
	"github.com/0xalexb/lintconfig/mergeengine"
)

// PluginEnvironments returns the array-wide environment lookup, keyed
// "pluginId/shortName" (or "shortName" if pluginId is empty), derived
// from every element's plugins on first access and frozen thereafter.
func (a *Array) PluginEnvironments() (map[string]configmodel.EnvironmentDefinition, error) {
	maps, err := a.ensurePluginMaps()
	if err != nil {
		return nil, err
	}

	return maps.Environments, nil
}

// PluginProcessors returns the array-wide processor lookup, keyed the
// same way as PluginEnvironments.
func (a *Array) PluginProcessors() (map[string]configmodel.ProcessorDefinition, error) {
	maps, err := a.ensurePluginMaps()
	if err != nil {
		return nil, err
	}

	return maps.Processors, nil
}

// PluginRules returns the array-wide rule lookup, keyed the same way as
// PluginEnvironments. Rule values given as string aliases or bare
// callables are normalized via configmodel.NormalizeRule using this
// Array's ruleResolver.
func (a *Array) PluginRules() (map[string]configmodel.RuleDefinition, error) {
	maps, err := a.ensurePluginMaps()
	if err != nil {
		return nil, err
	}

	return maps.Rules, nil
}

// ensurePluginMaps populates the three plugin-member maps exactly once
// per Array, by traversing every element's plugins in outermost-to-
// innermost order and keeping the first definition seen for each unique
// plugin id. A plugin that failed to load or whose Definition is not a
// *configmodel.PluginDefinition simply contributes nothing.
func (a *Array) ensurePluginMaps() (mergeengine.PluginMaps, error) {
	a.pluginMapsOnce.Do(func() {
		envs := map[string]configmodel.EnvironmentDefinition{}
		procs := map[string]configmodel.ProcessorDefinition{}
		rules := map[string]configmodel.RuleDefinition{}
		seen := map[string]struct{}{}

		for _, element := range a.elements {
			for id, dep := range element.Plugins {
				if _, already := seen[id]; already {
					continue
				}

				seen[id] = struct{}{}

				def, ok := dep.Definition.(*configmodel.PluginDefinition)
				if dep.Failed() || !ok || def == nil {
					continue
				}

				a.pluginMapsErr = indexPluginDefinition(id, def, envs, procs, rules, a.ruleResolver)
				if a.pluginMapsErr != nil {
					return
				}
			}
		}

		a.pluginMaps = mergeengine.PluginMaps{Environments: envs, Processors: procs, Rules: rules}
	})

	return a.pluginMaps, a.pluginMapsErr
}

func memberKey(pluginID, shortName string) string {
	if pluginID == "" {
		return shortName
	}

	return pluginID + "/" + shortName
}

func indexPluginDefinition(
	pluginID string,
	def *configmodel.PluginDefinition,
	envs map[string]configmodel.EnvironmentDefinition,
	procs map[string]configmodel.ProcessorDefinition,
	rules map[string]configmodel.RuleDefinition,
	resolver configmodel.RuleResolver,
) error {
	for name, env := range def.Environments {
		envs[memberKey(pluginID, name)] = env
	}

	for name, proc := range def.Processors {
		procs[memberKey(pluginID, name)] = proc
	}

	for name, raw := range def.Rules {
		normalized, err := configmodel.NormalizeRule(raw, resolver)
		if err != nil {
			return fmt.Errorf("configarray: normalizing rule %q from plugin %q: %w", name, pluginID, err)
		}

		rules[memberKey(pluginID, name)] = normalized
	}

	return nil
}
