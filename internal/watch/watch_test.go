package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDirs(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "material", "themes")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "material", "material.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	dirs, err := Dirs(root)
	if err != nil {
		t.Fatalf("Dirs: %v", err)
	}

	want := map[string]bool{
		root:                            true,
		filepath.Join(root, "material"): true,
		sub:                             true,
	}
	if len(dirs) != len(want) {
		t.Fatalf("Dirs = %v, want %d entries", dirs, len(want))
	}
	for _, d := range dirs {
		if !want[d] {
			t.Errorf("unexpected dir %q", d)
		}
	}
}

func TestDirs_MissingRoot(t *testing.T) {
	if _, err := Dirs(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Dirs with missing root should return error")
	}
}

func TestRun_InvokesOnChange(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, []string{dir}, 10*time.Millisecond, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register, then trigger an event
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "style.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("onChange was not invoked after a file write")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

func TestRun_StopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, []string{t.TempDir()}, 0, func() {})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

func TestRun_BadDirectory(t *testing.T) {
	ctx := context.Background()
	err := Run(ctx, []string{filepath.Join(t.TempDir(), "missing")}, 0, func() {})
	if err == nil {
		t.Error("Run with a nonexistent watch directory should return error")
	}
}
