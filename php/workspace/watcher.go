package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/syncthing/notify"
)

// DefaultDebounce is how long the watcher waits for a burst of events
// to settle before re-parsing.
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher re-parses files of a workspace as they change on disk.
type FileWatcher struct {
	workspace *Workspace
	root      string
	events    chan notify.EventInfo
	stopCh    chan struct{}
	done      chan struct{}
	debounce  time.Duration

	// OnChange, if set, runs after each batch with the paths that were
	// re-parsed or removed.
	OnChange func(paths []string)
}

func NewFileWatcher(w *Workspace) *FileWatcher {
	return &FileWatcher{
		workspace: w,
		root:      canonicalDir(w.RootDir()),
		events:    make(chan notify.EventInfo, 64),
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
		debounce:  DefaultDebounce,
	}
}

// Start registers a recursive watch on the workspace root and begins
// processing events in the background.
func (fw *FileWatcher) Start() error {
	if err := notify.Watch(filepath.Join(fw.workspace.RootDir(), "..."), fw.events, notify.All); err != nil {
		return err
	}
	go fw.run()
	return nil
}

func (fw *FileWatcher) Stop() {
	notify.Stop(fw.events)
	close(fw.stopCh)
	<-fw.done
}

func (fw *FileWatcher) run() {
	defer close(fw.done)

	pending := make(map[string]struct{})
	var timer *time.Timer
	timeout := func() <-chan time.Time {
		if timer != nil {
			return timer.C
		}
		return nil
	}

	for {
		select {
		case <-fw.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev := <-fw.events:
			pending[ev.Path()] = struct{}{}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(fw.debounce)
		case <-timeout():
			timer = nil
			fw.flush(pending)
			pending = make(map[string]struct{})
		}
	}
}

// canonicalDir resolves dir the way notify does before reporting event
// paths: absolute, with symlinks evaluated.
func canonicalDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// localPath maps an event path back to the key the workspace stores it
// under, which is relative to RootDir as given.
func (fw *FileWatcher) localPath(path string) string {
	rel, err := filepath.Rel(fw.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.Join(fw.workspace.RootDir(), rel)
}

func (fw *FileWatcher) flush(pending map[string]struct{}) {
	var changed []string
	for path := range pending {
		path = fw.localPath(path)
		if fw.apply(path) {
			changed = append(changed, path)
		}
	}
	if len(changed) == 0 {
		return
	}
	sort.Strings(changed)
	if fw.OnChange != nil {
		fw.OnChange(changed)
	}
}

// apply brings the workspace entry for path in line with the disk.
func (fw *FileWatcher) apply(path string) bool {
	if !fw.workspace.Config().Matches(path) {
		return false
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if fw.workspace.GetFile(path) == nil {
			return false
		}
		fw.workspace.RemoveFile(path)
		log.Infof("removed %s", path)
		return true
	case err != nil:
		log.Warningf("stat %s: %s", path, err)
		return false
	case info.IsDir():
		return false
	}
	if err := fw.workspace.ScanFile(path); err != nil {
		log.Warningf("%s", err)
		return false
	}
	log.Infof("reparsed %s", path)
	return true
}
