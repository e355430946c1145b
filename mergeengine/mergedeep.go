package mergeengine

// mergeRecordInto applies source's fields into target (mutated in place)
// per the assign-without-overwrite rule: a scalar (including an explicit
// null) is written only if target does not already have that key; a
// record or sequence recurses, creating an empty container of the
// matching shape when target has no value yet. Source is never mutated
// and none of its nested containers are aliased into target.
func mergeRecordInto(target map[string]any, source map[string]any) {
	for key, sourceVal := range source {
		targetVal, exists := target[key]
		target[key] = mergeValue(targetVal, exists, sourceVal)
	}
}

// mergeValue merges sourceVal into the position currently holding
// targetVal (present only if exists is true) and returns the value that
// should occupy that position afterward.
func mergeValue(targetVal any, exists bool, sourceVal any) any {
	if !isNonNullObject(sourceVal) {
		if !exists {
			return sourceVal
		}

		return targetVal
	}

	if exists && isNonNullObject(targetVal) {
		return mergeObjects(targetVal, sourceVal)
	}

	if !exists {
		return mergeObjects(emptyLike(sourceVal), sourceVal)
	}

	// target already holds a concrete scalar: higher precedence wins.
	return targetVal
}

// mergeObjects merges source (a map[string]any or []any) into a fresh
// copy of target of the same shape, recursing field-by-field / index-by-
// index. It always allocates new containers, so the result never shares
// mutable state with either input.
func mergeObjects(target, source any) any {
	switch src := source.(type) {
	case map[string]any:
		tgt, _ := target.(map[string]any)

		result := make(map[string]any, len(tgt)+len(src))
		for k, v := range tgt {
			result[k] = v
		}

		for key, sourceVal := range src {
			targetVal, exists := result[key]
			result[key] = mergeValue(targetVal, exists, sourceVal)
		}

		return result
	case []any:
		tgt, _ := target.([]any)

		result := make([]any, len(tgt))
		copy(result, tgt)

		for i, sourceVal := range src {
			var targetVal any

			exists := i < len(result)
			if exists {
				targetVal = result[i]
			}

			merged := mergeValue(targetVal, exists, sourceVal)

			if exists {
				result[i] = merged
			} else {
				result = append(result, merged)
			}
		}

		return result
	default:
		return target
	}
}

func isNonNullObject(v any) bool {
	if v == nil {
		return false
	}

	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func emptyLike(v any) any {
	if _, ok := v.([]any); ok {
		return []any{}
	}

	return map[string]any{}
}
