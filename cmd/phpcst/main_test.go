package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/phpcst/internal/config"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseTreeFromStdin(t *testing.T) {
	cfg := writeConfig(t, t.TempDir(), `{}`)
	out, err := run(t, "<?php ;", "--config", cfg, "parse", "-")
	require.NoError(t, err)
	require.Equal(t, `SourceFile
  ScriptSection
    ScriptSectionPrependedText
    ScriptSectionStartTag "<?php"
    EmptyStatement
      ; ";"
  EndOfFile
`, out)
}

func TestParseFormats(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `{}`)
	src := "<?php\nfunction f( {}\n"
	path := filepath.Join(dir, "a.php")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, err := run(t, "", "--config", cfg, "parse", "-f", "source", path)
	require.NoError(t, err)
	require.Equal(t, src, out)

	out, err = run(t, "", "--config", cfg, "parse", "-f", "json", "--positions", path)
	require.NoError(t, err)
	var root map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &root))
	require.Equal(t, "SourceFile", root["kind"])
	require.Contains(t, out, `"expected": ")"`)

	_, err = run(t, "", "--config", cfg, "parse", "-f", "xml", path)
	require.ErrorContains(t, err, `unknown format "xml"`)

	_, err = run(t, "", "--config", cfg, "parse", filepath.Join(dir, "absent.php"))
	require.ErrorContains(t, err, "open source")
}

func TestParseUsesConfig(t *testing.T) {
	cfg := writeConfig(t, t.TempDir(), `{"shortOpenTags": true}`)
	out, err := run(t, "<? echo 1;", "--config", cfg, "parse", "-")
	require.NoError(t, err)
	require.Contains(t, out, "EchoStatement")
}

func TestBadConfigFails(t *testing.T) {
	cfg := writeConfig(t, t.TempDir(), `{"maxDepth": -3}`)
	_, err := run(t, "", "--config", cfg, "parse", "-")
	require.ErrorContains(t, err, "must not be negative")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `{"exclude": ["vendor"]}`)
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vendor"), 0o755))
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "ok.php"), []byte("<?php echo 1;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "bad.php"), []byte("<?php )"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor", "x.php"), []byte("<?php ))))"), 0o644))

	out, err := run(t, "", "--config", cfg, "check", dir)
	require.NoError(t, err)
	require.Contains(t, out, `bad.php:1:7: unexpected ")"`)
	require.Contains(t, out, "2 files, 1 diagnostics")

	out, err = run(t, "", "--config", cfg, "check", "--strict", "-q", dir)
	require.ErrorContains(t, err, "1 diagnostics")
	require.Equal(t, "2 files, 1 diagnostics\n", out)

	out, err = run(t, "", "--config", cfg, "check", filepath.Join(src, "ok.php"))
	require.NoError(t, err)
	require.Equal(t, "1 files, 0 diagnostics\n", out)

	_, err = run(t, "", "--config", cfg, "check", filepath.Join(dir, "missing"))
	require.ErrorContains(t, err, "check:")
}

func TestReplFeed(t *testing.T) {
	var out bytes.Buffer
	r := &repl{out: &out, format: "tree"}

	done, err := r.feed("function f() {")
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, promptPrefix2, r.prefix())
	require.Empty(t, out.String())

	_, err = r.feed("}")
	require.NoError(t, err)
	require.Equal(t, promptPrefix, r.prefix())
	require.Contains(t, out.String(), "FunctionDeclaration")
	require.NotContains(t, out.String(), "Missing")
}

func TestReplCommands(t *testing.T) {
	var out bytes.Buffer
	r := &repl{out: &out, format: "tree"}

	_, err := r.feed(".format json")
	require.NoError(t, err)
	require.Equal(t, "json", r.format)

	_, err = r.feed(".format yaml")
	require.Error(t, err)
	require.Equal(t, "json", r.format)

	_, err = r.feed(".positions")
	require.NoError(t, err)
	require.True(t, r.positions)

	_, err = r.feed("if ($a):")
	require.NoError(t, err)
	_, err = r.feed(".reset")
	require.NoError(t, err)
	require.Empty(t, r.pending)

	_, err = r.feed(".bogus")
	require.ErrorContains(t, err, "unknown command")

	done, err := r.feed(".exit")
	require.NoError(t, err)
	require.True(t, done)
}
