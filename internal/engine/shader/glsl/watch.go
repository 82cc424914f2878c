package glsl

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

// Watcher reports edits to the scene shaders in a directory. fsnotify
// delivers events from its own goroutine; Changed drains them on the
// caller's goroutine so GL work stays on the render thread.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
}

// NewWatcher watches dir. The directory rather than the files is watched
// so editors that save by rename are still seen.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating shader watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("watching shaders", zap.String("dir", dir))
	return &Watcher{dir: dir, watcher: fw}, nil
}

// Changed drains pending events without blocking and reports whether a
// shader source was written, created or replaced.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case e, ok := <-w.watcher.Events:
			if !ok {
				return changed
			}
			if relevant(e) {
				logger.Debug("shader source changed", zap.String("file", e.Name), zap.Stringer("op", e.Op))
				changed = true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return changed
			}
			logger.Warn("shader watcher error", zap.Error(err))
		default:
			return changed
		}
	}
}

func relevant(e fsnotify.Event) bool {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Base(e.Name) {
	case VertexFile, FragmentFile:
		return true
	}
	return false
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
