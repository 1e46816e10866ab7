package places

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "places.toml")

	initial := &Catalog{Places: []Place{{Name: "Berlin", Lat: 52.52, Lon: 13.405}}}
	if err := Save(path, initial); err != nil {
		t.Fatalf("Save: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	updated := &Catalog{Places: []Place{
		{Name: "Berlin", Lat: 52.52, Lon: 13.405},
		{Name: "Tromsø", Lat: 69.6492, Lon: 18.9553},
	}}
	if err := Save(path, updated); err != nil {
		t.Fatalf("Save updated: %v", err)
	}

	select {
	case c := <-w.Reloads:
		if len(c.Places) != 2 {
			t.Errorf("reloaded catalog has %d places, want 2", len(c.Places))
		}
		if _, ok := c.Find("Tromsø"); !ok {
			t.Error("reloaded catalog is missing the added place")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "places.toml")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case c := <-w.Reloads:
		t.Errorf("unexpected reload: %+v", c)
	case <-time.After(300 * time.Millisecond):
		// Expected: no reloads for unrelated files.
	}
}
