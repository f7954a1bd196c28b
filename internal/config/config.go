// Package config loads the optional .phpcst.jsonc project file. The file
// is JSON with comments and trailing commas allowed.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/tailscale/hujson"

	"github.com/dhamidi/phpcst/php/parser"
)

// FileName is the name Find looks for.
const FileName = ".phpcst.jsonc"

type Config struct {
	// MaxDepth bounds parser nesting. Zero disables the limit; absent
	// means parser.DefaultMaxDepth.
	MaxDepth      *int     `json:"maxDepth,omitempty"`
	ShortOpenTags bool     `json:"shortOpenTags,omitempty"`
	Extensions    []string `json:"extensions,omitempty"`
	LogVerbosity  int      `json:"logVerbosity,omitempty"`
	LogFile       string   `json:"logFile,omitempty"`
	Exclude       []string `json:"exclude,omitempty"`

	// Path is the file the configuration was read from, if any.
	Path string `json:"-"`
}

func Default() *Config {
	return &Config{Extensions: []string{".php"}}
}

// Find walks from dir towards the root and returns the first FileName
// it sees. It returns "" when there is none.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a configuration from JSONC text. Missing fields keep
// their defaults.
func Parse(data []byte) (*Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg := Default()
	if err := json.Unmarshal(std, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.MaxDepth != nil && *cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("maxDepth must not be negative, got %d", *cfg.MaxDepth)
	}
	return cfg, nil
}

// Discover finds and loads the configuration governing dir, falling back
// to Default when there is none.
func Discover(dir string) (*Config, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) ParserOptions() []parser.Option {
	var opts []parser.Option
	if c.MaxDepth != nil {
		opts = append(opts, parser.WithMaxDepth(*c.MaxDepth))
	}
	if c.ShortOpenTags {
		opts = append(opts, parser.WithShortOpenTags())
	}
	return opts
}

// Matches reports whether path has one of the configured extensions and
// no excluded path element.
func (c *Config) Matches(path string) bool {
	if !slices.Contains(c.Extensions, filepath.Ext(path)) {
		return false
	}
	for _, pattern := range c.Exclude {
		for p := path; ; p = filepath.Dir(p) {
			if ok, _ := filepath.Match(pattern, filepath.Base(p)); ok {
				return false
			}
			if parent := filepath.Dir(p); parent == p {
				break
			}
		}
	}
	return true
}
