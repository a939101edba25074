package tmpl

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDebounce batches the burst of events an editor save produces.
const reloadDebounce = 150 * time.Millisecond

// Watch reloads the templates whenever a file under the template or content
// directories changes. It blocks until ctx is done. A failed reload is
// logged and the previous templates keep serving.
func (t *Templates) Watch(ctx context.Context, log *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create template watcher: %w", err)
	}
	defer w.Close()

	dirs := []string{t.dir, filepath.Join(t.dir, "partials")}
	if t.contentDir != "" {
		dirs = append(dirs, t.contentDir)
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			log.Warn("template watch failed", zap.String("dir", d), zap.Error(err))
			continue
		}
		log.Debug("watching templates", zap.String("dir", d))
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			log.Debug("template change", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			pending = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("template watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			if err := t.Reload(); err != nil {
				log.Error("template reload failed", zap.Error(err))
				continue
			}
			log.Info("templates reloaded")
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasSuffix(ev.Name, ".html") || strings.HasSuffix(ev.Name, ".md")
}
