// # internal/watcher/watcher_test.go
package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()

	changes := make(chan []string, 1)
	w, err := New(Options{Debounce: 50 * time.Millisecond}, func(changed []string) {
		select {
		case changes <- changed:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch([]string{dir}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case changed := <-changes:
		found := false
		for _, c := range changed {
			if c == path {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %s in batch, got %v", path, changed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch within timeout")
	}
}

func TestWatcherExcludesFiles(t *testing.T) {
	dir := t.TempDir()

	changes := make(chan []string, 4)
	w, err := New(Options{
		Debounce:     50 * time.Millisecond,
		ExcludeFiles: []string{"*.log"},
	}, func(changed []string) {
		changes <- changed
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{dir}); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "noise.log"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	keep := filepath.Join(dir, "keep.rs")
	if err := os.WriteFile(keep, []byte("fn main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case changed := <-changes:
		for _, c := range changed {
			if filepath.Ext(c) == ".log" {
				t.Errorf("excluded file leaked into batch: %v", changed)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch within timeout")
	}
}

func TestWatcherBadPattern(t *testing.T) {
	_, err := New(Options{ExcludeDirs: []string{"[bad"}}, func([]string) {})
	if err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}
}

func TestWatcherDebounceCoalesces(t *testing.T) {
	dir := t.TempDir()

	batches := make(chan int, 8)
	w, err := New(Options{Debounce: 100 * time.Millisecond}, func(changed []string) {
		batches <- len(changed)
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{dir}); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		name := filepath.Join(dir, "f"+string(rune('a'+i))+".go")
		if err := os.WriteFile(name, []byte("package x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case n := <-batches:
		if n < 1 {
			t.Errorf("expected a non-empty batch, got %d", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no batch within timeout")
	}
}
