package places

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a catalog file using fsnotify and delivers freshly loaded
// catalogs whenever the file changes on disk. It watches the parent
// directory rather than the file itself, which survives the write-and-rename
// dance editors and Save perform.
type Watcher struct {
	Path    string
	Reloads <-chan *Catalog // Read-only external channel

	reloads chan *Catalog // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the catalog at the given path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan *Catalog, 4)
	w := &Watcher{
		Path:    path,
		Reloads: ch,
		reloads: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the catalog's directory for changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Reloads channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.reloads)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: a single save produces a burst of events.
	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Drain pending on close.
				if !pending.IsZero() {
					w.emitReload()
				}
				return
			}

			if !w.isCatalogFile(event.Name) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if !pending.IsZero() && time.Since(pending) >= debounce {
				w.emitReload()
				pending = time.Time{}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

func (w *Watcher) isCatalogFile(name string) bool {
	return filepath.Base(name) == filepath.Base(w.Path)
}

func (w *Watcher) emitReload() {
	c, err := Load(w.Path)
	if err != nil {
		// Likely caught mid-write; the next event resolves it.
		return
	}
	w.reloads <- c
}
