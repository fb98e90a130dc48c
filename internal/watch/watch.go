package watch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"gavel/internal/logging"
)

// Run watches dir and invokes fn after source changes settle for the
// debounce interval. Failed runs are logged and watching continues; Run
// itself returns only on context cancellation or a watcher failure.
func Run(ctx context.Context, dir string, debounce time.Duration, logger *slog.Logger, fn func(context.Context) error) error {
	log := logging.NewComponentLogger(logger, "watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Info("watching for source changes",
		logging.String("dir", dir),
		logging.Duration("debounce", debounce))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			log.Debug("source change",
				logging.String("file", event.Name),
				logging.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", logging.Error(err))
		case <-fire:
			timer = nil
			fire = nil
			if err := fn(ctx); err != nil {
				log.Error("triggered run failed", logging.Error(err))
			}
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(strings.ToLower(event.Name), ".csv") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}
