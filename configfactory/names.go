package configfactory

import "strings"

// normalizePackageName expands a bare plugin/shareable-config specifier
// into its full package name: "foo" -> "<prefix>-foo", "@scope/foo" ->
// "@scope/<prefix>-foo", "@scope" -> "@scope/<prefix>". A specifier that
// already carries the prefix (scoped or not) passes through unchanged.
func normalizePackageName(spec, prefix string) string {
	if strings.HasPrefix(spec, "@") {
		scope, rest, hasRest := strings.Cut(spec, "/")
		if !hasRest {
			return scope + "/" + prefix
		}

		if rest == prefix || strings.HasPrefix(rest, prefix+"-") {
			return scope + "/" + rest
		}

		return scope + "/" + prefix + "-" + rest
	}

	if spec == prefix || strings.HasPrefix(spec, prefix+"-") {
		return spec
	}

	return prefix + "-" + spec
}

// shortName strips prefix back off a (possibly already-expanded) package
// name, preserving any scope: "eslint-plugin-foo" -> "foo",
// "@scope/eslint-plugin-foo" -> "@scope/foo", "@scope/eslint-plugin" ->
// "@scope".
func shortName(spec, prefix string) string {
	if strings.HasPrefix(spec, "@") {
		scope, rest, hasRest := strings.Cut(spec, "/")
		if !hasRest {
			return scope
		}

		rest = strings.TrimPrefix(rest, prefix+"-")
		rest = strings.TrimPrefix(rest, prefix)

		if rest == "" {
			return scope
		}

		return scope + "/" + rest
	}

	trimmed := strings.TrimPrefix(spec, prefix+"-")
	if trimmed == spec && spec == prefix {
		return ""
	}

	return trimmed
}

func normalizePluginPackageName(spec string) string { return normalizePackageName(spec, "eslint-plugin") }
func normalizeConfigPackageName(spec string) string  { return normalizePackageName(spec, "eslint-config") }
func shortPluginName(spec string) string             { return shortName(spec, "eslint-plugin") }

// isDottedRelative reports whether name is an explicit relative reference
// ("./..." or "../...").
func isDottedRelative(name string) bool {
	return strings.HasPrefix(name, "./") || strings.HasPrefix(name, "../")
}

// isFilesystemShaped reports whether name looks like a literal path
// (absolute, or containing a path separator) rather than a bare package
// name to be normalized and resolved.
func isFilesystemShaped(name string) bool {
	if strings.HasPrefix(name, "@") {
		return false
	}

	return isDottedRelative(name) || strings.ContainsAny(name, "/\\")
}
