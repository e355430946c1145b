package configfactory

import "testing"

func TestNormalizePluginPackageName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", "foo", "eslint-plugin-foo"},
		{"already expanded", "eslint-plugin-foo", "eslint-plugin-foo"},
		{"scoped bare", "@scope/foo", "@scope/eslint-plugin-foo"},
		{"scoped already expanded", "@scope/eslint-plugin-foo", "@scope/eslint-plugin-foo"},
		{"scope only", "@scope", "@scope/eslint-plugin"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizePluginPackageName(tc.input); got != tc.want {
				t.Errorf("normalizePluginPackageName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestShortPluginName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already short", "foo", "foo"},
		{"expanded", "eslint-plugin-foo", "foo"},
		{"scoped already short", "@scope/foo", "@scope/foo"},
		{"scoped expanded", "@scope/eslint-plugin-foo", "@scope/foo"},
		{"scoped bare prefix", "@scope/eslint-plugin", "@scope"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := shortPluginName(tc.input); got != tc.want {
				t.Errorf("shortPluginName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsFilesystemShaped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"dotted relative", "./local", true},
		{"dotted parent relative", "../local", true},
		{"absolute", "/abs/path", true},
		{"bare package name", "foo", false},
		{"scoped package name", "@scope/foo", false},
		{"scope only", "@scope", false},
		{"already-prefixed config name", "eslint-config-foo", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := isFilesystemShaped(tc.input); got != tc.want {
				t.Errorf("isFilesystemShaped(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
