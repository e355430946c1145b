// Package legacysrc loads a configuration body from a source file that
// carries no recognized extension (the historical bare ".eslintrc" name).
// Such files are YAML documents that may also carry "//" and "/* */"
// comments in the hand-edited style of a .eslintrc.json, so comments are
// stripped before the YAML decode, keeping line breaks so that YAML
// indentation survives; a decoding failure is reported as-is rather than retried, since a file
// with no extension to signal intent gets exactly one honest parse
// attempt.
package legacysrc

import (
	"fmt"
	"regexp"

	"github.com/goccy/go-yaml"
)

// Load strips "/* */" comments and "//" comments that start a line or
// follow whitespace from data, then decodes the result as YAML (or,
// transitively, JSON) into a map.
func Load(data []byte) (map[string]any, error) {
	comments := regexp.MustCompile(`(?s:/\*.*?\*/)|(?m:(?:^|[ \t])//.*)`)
	stripped := comments.ReplaceAll(data, nil)

	var body map[string]any

	if err := yaml.Unmarshal(stripped, &body); err != nil {
		return nil, fmt.Errorf("legacysrc: decoding legacy config: %w", err)
	}

	if body == nil {
		body = map[string]any{}
	}

	return body, nil
}
