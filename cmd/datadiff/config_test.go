package main

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
[object]
ignore-array-order = true
show-only = ["added", "deleted"]
granularity = "deep"

[list]
reference-key = "id"
move-as-update = true

[text]
separation = "sentence"
ignore-case = true
locale = "tr"

[output]
format = "json"
stats = true
`)

	got, err := parseConfig(data)
	require.NoError(t, err)

	expect := &config{
		Object: objectConfig{IgnoreArrayOrder: true, ShowOnly: []string{"added", "deleted"}, Granularity: "deep"},
		List:   listConfig{ReferenceKey: "id", MoveAsUpdate: true},
		Text:   textConfig{Separation: "sentence", Mode: "visual", IgnoreCase: true, Locale: "tr"},
		Output: outputConfig{Format: "json", Stats: true},
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		description string
		data        string
		contains    string
	}{
		{"invalid toml", "[object", "parsing"},
		{"unknown key", "[object]\ncolour = true\n", "parsing"},
		{"bad status", "[list]\nshow-only = [\"renamed\"]\n", "list.show-only"},
		{"bad granularity", "[object]\ngranularity = \"shallow\"\n", "object.granularity"},
		{"bad separation", "[text]\nseparation = \"paragraph\"\n", "text.separation"},
		{"bad mode", "[text]\nmode = \"fuzzy\"\n", "text.mode"},
		{"bad format", "[output]\nformat = \"xml\"\n", "output.format"},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			_, err := parseConfig([]byte(c.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.contains)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("expected defaults when no config file exists (-want +got):\n%s", diff)
	}

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "an explicit config path must exist")

	path := writeTestFile(t, t.TempDir(), "config.toml", "[output]\ncolor = true\n")
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, formatPretty, cfg.Output.Format)
}
