package configfactory

import "github.com/0xalexb/lintconfig/configmodel"

func stringSlice(body configmodel.ConfigBody, key string) []string {
	raw, ok := body[key]
	if !ok {
		return nil
	}

	switch v := raw.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

func stringVal(body configmodel.ConfigBody, key string) string {
	raw, ok := body[key]
	if !ok {
		return ""
	}

	s, _ := raw.(string)

	return s
}

func mapVal(body configmodel.ConfigBody, key string) map[string]any {
	raw, ok := body[key]
	if !ok {
		return nil
	}

	m, _ := raw.(map[string]any)

	return m
}

func boolPtrVal(body configmodel.ConfigBody, key string) *bool {
	raw, ok := body[key]
	if !ok {
		return nil
	}

	b, ok := raw.(bool)
	if !ok {
		return nil
	}

	return &b
}

func sliceOfMaps(body configmodel.ConfigBody, key string) []map[string]any {
	raw, ok := body[key]
	if !ok {
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	out := make([]map[string]any, 0, len(items))

	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}

	return out
}
