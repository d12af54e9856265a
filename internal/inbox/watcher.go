package inbox

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must stay quiet before it is imported.
const settleDelay = 300 * time.Millisecond

// Watch imports files as they appear in the inbox root until ctx is
// cancelled. Writes are debounced per file so that a file still being copied
// is imported once, after it settles.
func (in *Inbox) Watch(ctx context.Context, cb EventCallback) error {
	root := in.files.Root()
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(root); err != nil {
		return err
	}
	in.logger.Info("inbox: watching", slog.String("root", root))

	var (
		mu     sync.Mutex
		timers = make(map[string]*time.Timer)
		ready  = make(chan string, 64)
	)
	schedule := func(rel string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := timers[rel]; ok {
			t.Reset(settleDelay)
			return
		}
		timers[rel] = time.AfterFunc(settleDelay, func() {
			mu.Lock()
			delete(timers, rel)
			mu.Unlock()
			select {
			case ready <- rel:
			case <-ctx.Done():
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			for _, t := range timers {
				t.Stop()
			}
			mu.Unlock()
			in.logger.Info("inbox: stopped")
			return nil

		case rel := <-ready:
			if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
				continue
			}
			kind, err := in.ImportFile(ctx, rel)
			if err != nil {
				in.logger.Warn("inbox: import failed", slog.String("path", rel), slog.String("error", err.Error()))
				continue
			}
			if kind != "" && cb != nil {
				cb(kind, rel)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			rel, err := filepath.Rel(root, ev.Name)
			if err != nil || filepath.Dir(rel) != "." || Kind(rel) == "" {
				continue
			}
			schedule(rel)

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			in.logger.Error("inbox: watcher error", slog.String("error", watchErr.Error()))
		}
	}
}
