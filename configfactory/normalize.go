package configfactory

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/lintconfig/depload"

	"github.com/0xalexb/lintconfig/configmodel"
	"github.com/0xalexb/lintconfig/overridetester"
)

func basePathFor(filePath, cwd string) string {
	if filePath == "" {
		return cwd
	}

	return filepath.Dir(filePath)
}

// normalize implements the normalization pipeline: destructure body,
// recursively expand extends and overrides, load parser/plugins, emit
// synthetic per-processor-extension elements, and finally bind every
// element produced at this level (including ones received from a deeper
// extends/overrides recursion) under this level's own {files,
// excludedFiles} criteria, rebinding their base path to this level's
// directory. isOverride suppresses reading "root" from body, since an
// override can never declare it.
func (f *Factory) normalize(body configmodel.ConfigBody, filePath, name string, isOverride bool) ([]*configmodel.Element, error) {
	basePath := basePathFor(filePath, f.cwd)

	entryCriteria, err := overridetester.New(stringSlice(body, "files"), stringSlice(body, "excludedFiles"), basePath)
	if err != nil {
		return nil, err
	}

	var elements []*configmodel.Element

	for _, ext := range stringSlice(body, "extends") {
		extended, extErr := f.resolveExtends(ext, filePath, name)
		if extErr != nil {
			return nil, referencedFrom(extErr, filePath)
		}

		elements = append(elements, extended...)
	}

	own := &configmodel.Element{
		Name:          name,
		FilePath:      filePath,
		Env:           mapVal(body, "env"),
		Globals:       mapVal(body, "globals"),
		ParserOptions: mapVal(body, "parserOptions"),
		Rules:         mapVal(body, "rules"),
		Settings:      mapVal(body, "settings"),
		Processor:     stringVal(body, "processor"),
	}

	if !isOverride {
		own.Root = boolPtrVal(body, "root")
	}

	if parserSpec := stringVal(body, "parser"); parserSpec != "" {
		dep := f.loadParser(parserSpec, filePath, name)
		own.Parser = &dep
	}

	pluginSpecs := stringSlice(body, "plugins")
	if len(pluginSpecs) > 0 {
		own.Plugins = make(map[string]depload.LoadedDependency, len(pluginSpecs))

		for _, spec := range pluginSpecs {
			dep := f.loadPlugin(spec, filePath, name)
			own.Plugins[dep.ID] = dep

			if dep.Failed() {
				continue
			}

			def, ok := dep.Definition.(*configmodel.PluginDefinition)
			if !ok || def == nil {
				continue
			}

			for procName := range def.Processors {
				if !strings.HasPrefix(procName, ".") {
					continue
				}

				synthetic, synErr := syntheticProcessorElement(dep.ID, procName, basePath, name, filePath)
				if synErr != nil {
					return nil, synErr
				}

				elements = append(elements, synthetic)
			}
		}
	}

	elements = append(elements, own)

	for i, raw := range sliceOfMaps(body, "overrides") {
		overrideName := fmt.Sprintf("%s#overrides[%d]", name, i)

		overrideElements, overrideErr := f.normalize(configmodel.ConfigBody(raw), filePath, overrideName, true)
		if overrideErr != nil {
			return nil, overrideErr
		}

		elements = append(elements, overrideElements...)
	}

	for _, el := range elements {
		merged := overridetester.And(entryCriteria, el.Criteria)
		if merged == nil {
			continue
		}

		el.Criteria = merged.WithBasePath(basePath)
		el.Root = nil
	}

	return elements, nil
}

// syntheticProcessorElement builds the element a plugin processor whose
// name begins with "." (a file extension) implies: every file with that extension is
// routed through the processor even though nothing in the configuration
// body named an override for it.
func syntheticProcessorElement(pluginID, extension, basePath, parentName, filePath string) (*configmodel.Element, error) {
	criteria, err := overridetester.New([]string{"*" + extension}, nil, basePath)
	if err != nil {
		return nil, err
	}

	return &configmodel.Element{
		Name:      parentName + "#processor:" + pluginID + extension,
		FilePath:  filePath,
		Criteria:  criteria,
		Processor: pluginID + "/" + extension,
	}, nil
}
