package configfactory

import (
	"github.com/0xalexb/lintconfig/configmodel"
	"github.com/0xalexb/lintconfig/mergeengine"
)

// schemaValidatorAdapter lets a SchemaValidator stand in for a
// mergeengine.Validator: ConfigArray only knows about the merge engine's
// narrower Validator interface, but a Factory's caller supplies the
// richer SchemaValidator, so the factory bridges the two.
type schemaValidatorAdapter struct {
	inner SchemaValidator
}

func (a schemaValidatorAdapter) ValidateElement(element *configmodel.Element, maps mergeengine.PluginMaps) error {
	return a.inner.ValidateConfigArrayElement(element, maps.Rules, maps.Environments) //nolint:wrapcheck
}
