// Package workspace keeps a parsed view of every PHP file under a root
// directory and derives diagnostics and outline symbols from the trees.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/phpcst/internal/config"
	"github.com/dhamidi/phpcst/php/parser"
)

var log = commonlog.GetLogger("phpcst.workspace")

// Workspace is safe for concurrent use. Each update parses with a fresh
// parser; readers share the resulting immutable FileInfo.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	cfg     *config.Config
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path        string
	Content     []byte
	Tree        *parser.SourceFile
	Lines       *parser.LineMap
	Diagnostics []Diagnostic
	Symbols     []Symbol
}

func New(rootDir string, cfg *config.Config) *Workspace {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Workspace{
		rootDir: rootDir,
		cfg:     cfg,
		files:   make(map[string]*FileInfo),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func (w *Workspace) Config() *config.Config {
	return w.cfg
}

// ScanAll parses every matching file below the root. Hidden directories
// are not entered.
func (w *Workspace) ScanAll() error {
	err := filepath.WalkDir(w.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != w.rootDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.cfg.Matches(path) {
			return nil
		}
		if err := w.ScanFile(path); err != nil {
			log.Warningf("%s", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", w.rootDir, err)
	}
	return nil
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile parses content as the new text of path.
func (w *Workspace) UpdateFile(path string, content []byte) *FileInfo {
	info := analyze(path, content, w.cfg.ParserOptions())

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = info
	log.Debugf("parsed %s: %d diagnostics", path, len(info.Diagnostics))
	return info
}

func analyze(path string, content []byte, opts []parser.Option) *FileInfo {
	opts = append([]parser.Option{parser.WithFile(path)}, opts...)
	tree := parser.Parse(content, opts...)
	lines := parser.NewLineMap(path, content)
	return &FileInfo{
		Path:        path,
		Content:     content,
		Tree:        tree,
		Lines:       lines,
		Diagnostics: Diagnose(tree, content, lines),
		Symbols:     Outline(tree, content, lines),
	}
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns the known paths in sorted order.
func (w *Workspace) Files() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// DiagnosticCount sums diagnostics over every known file.
func (w *Workspace) DiagnosticCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n := 0
	for _, f := range w.files {
		n += len(f.Diagnostics)
	}
	return n
}
