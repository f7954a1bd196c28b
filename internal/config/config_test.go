package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/phpcst/php/parser"
)

func TestParseAllowsCommentsAndTrailingCommas(t *testing.T) {
	cfg, err := Parse([]byte(`{
		// parser settings
		"maxDepth": 64,
		"shortOpenTags": true,
		"extensions": [".php", ".phtml",],
		/* logging */
		"logVerbosity": 2,
		"logFile": "phpcst.log",
		"exclude": ["vendor"],
	}`))
	require.NoError(t, err)
	require.Equal(t, 64, *cfg.MaxDepth)
	require.True(t, cfg.ShortOpenTags)
	require.Equal(t, []string{".php", ".phtml"}, cfg.Extensions)
	require.Equal(t, 2, cfg.LogVerbosity)
	require.Equal(t, "phpcst.log", cfg.LogFile)
	require.Equal(t, []string{"vendor"}, cfg.Exclude)
	require.Len(t, cfg.ParserOptions(), 2)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	require.Nil(t, cfg.MaxDepth)
	require.Equal(t, []string{".php"}, cfg.Extensions)
	require.Empty(t, cfg.ParserOptions())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"syntax", `{"maxDepth": }`, "parse config"},
		{"type", `{"maxDepth": "deep"}`, "decode config"},
		{"negative depth", `{"maxDepth": -1}`, "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParserOptionsApply(t *testing.T) {
	cfg, err := Parse([]byte(`{"maxDepth": 1}`))
	require.NoError(t, err)

	src := []byte("<?php {{ }}")
	file := parser.Parse(src, cfg.ParserOptions()...)
	require.NotEmpty(t, parser.ErrorTokens(file))
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, err := Find(nested)
	require.NoError(t, err)
	require.Empty(t, path)

	want := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(want, []byte(`{"shortOpenTags": true}`), 0o644))

	path, err = Find(nested)
	require.NoError(t, err)
	require.Equal(t, want, path)

	cfg, err := Discover(nested)
	require.NoError(t, err)
	require.True(t, cfg.ShortOpenTags)
	require.Equal(t, want, cfg.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.ErrorContains(t, err, "read config")
}

func TestMatches(t *testing.T) {
	cfg := Default()
	cfg.Exclude = []string{"vendor", "*.tpl.php"}

	tests := []struct {
		path string
		want bool
	}{
		{"src/a.php", true},
		{"src/a.inc", false},
		{"vendor/lib/a.php", false},
		{"src/view.tpl.php", false},
		{"/abs/src/a.php", true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, cfg.Matches(tt.path), tt.path)
	}
}
