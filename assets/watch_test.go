package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "animations.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("final"), 0o644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "animations.yaml" {
			t.Fatalf("event for %q, want animations.yaml", name)
		}
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("reading changed file: %v", err)
		}
		if string(data) != "final" {
			t.Fatalf("file read on change = %q, want %q", data, "final")
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no change reported after the last write")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("burst reported twice, extra event for %q", name)
	case <-time.After(3 * settleDelay):
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected event for %q", name)
	case <-time.After(3 * settleDelay):
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("Events still open after Close")
		}
	case <-time.After(time.Second):
		t.Fatalf("Events not closed after Close")
	}
}
