// Package yamlsrc loads a configuration body from YAML source, the same
// way the teacher's config/parser/yaml package loads a single-document
// YAML file, generalized here to decode into the free-form
// map[string]any shape a configuration body needs rather than a fixed
// destination struct.
package yamlsrc

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Load decodes data as a YAML document into a map. An empty document
// decodes to a nil map, which Load turns into an empty, non-nil map so
// callers never have to special-case "no fields at all".
func Load(data []byte) (map[string]any, error) {
	var body map[string]any

	if err := yaml.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("yamlsrc: decoding yaml: %w", err)
	}

	if body == nil {
		body = map[string]any{}
	}

	return body, nil
}
