// Package configmodel holds the data model shared by the merge engine and
// the configuration array: the normalized configuration fragment
// (Element), the merged result (ExtractedConfig), the raw pre-normalization
// configuration body (ConfigBody), and the shape a loaded plugin module
// exposes (PluginDefinition and friends).
//
// Nothing in this package has behavior beyond construction and simple
// accessors; the algebra that turns a slice of Element into one
// ExtractedConfig lives in package mergeengine, and the ordered-array
// semantics (root-flag resolution, matched-index discovery, extraction
// caching) live in package configarray. Splitting the model out this way
// lets mergeengine and configarray depend on the same types without either
// depending on the other.
package configmodel
