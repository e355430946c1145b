// Package jsonsrc loads a configuration body from a JSON(-with-comments)
// source file. Configuration files are conventionally hand-edited and
// commented the way .eslintrc.json files are in the wild, so comments are
// stripped before standard decoding rather than rejected as invalid JSON.
package jsonsrc

import (
	"encoding/json"
	"fmt"

	"github.com/muhammadmuzzammil1998/jsonc"
)

// Load strips // and /* */ comments from data and decodes the result into
// a map. An empty object (or an empty file) decodes to an empty, non-nil
// map.
func Load(data []byte) (map[string]any, error) {
	stripped := jsonc.ToJSON(data)

	body := map[string]any{}
	if len(stripped) == 0 {
		return body, nil
	}

	if err := json.Unmarshal(stripped, &body); err != nil {
		return nil, fmt.Errorf("jsonsrc: decoding json: %w", err)
	}

	return body, nil
}
