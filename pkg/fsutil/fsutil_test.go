package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/unipatch/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("captures content and state", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")
		if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		content, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if string(content) != "hello" {
			t.Errorf("content = %q, want %q", content, "hello")
		}
		if info.Path != path {
			t.Errorf("info.Path = %q, want %q", info.Path, path)
		}
		if info.Size != 5 {
			t.Errorf("info.Size = %d, want 5", info.Size)
		}
		if info.Mode.Perm() != 0600 {
			t.Errorf("info.Mode = %v, want 0600", info.Mode.Perm())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("ReadFile() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("ReadFile() error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "anything")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ReadFile() error = %v, want context.Canceled", err)
		}
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("unchanged file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info, true)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if modified {
			t.Error("CheckModified() = true for unchanged file")
		}
	})

	t.Run("changed content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if err := os.WriteFile(path, []byte("changed"), 0644); err != nil {
			t.Fatalf("modify: %v", err)
		}
		// Force a mod time difference even on coarse filesystem clocks.
		future := time.Now().Add(time.Hour)
		if err := os.Chtimes(path, future, future); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info, false)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if !modified {
			t.Error("CheckModified() = false for changed file")
		}
	})

	t.Run("same size in-place edit caught only in strict mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")
		if err := os.WriteFile(path, []byte("aaaa"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		// Same size, same forced mod time.
		if err := os.WriteFile(path, []byte("bbbb"), 0644); err != nil {
			t.Fatalf("modify: %v", err)
		}
		if err := os.Chtimes(path, info.ModTime, info.ModTime); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		quick, err := fsutil.CheckModified(context.Background(), info, false)
		if err != nil {
			t.Fatalf("CheckModified(quick) error = %v", err)
		}
		if quick {
			t.Error("quick check detected a same-size same-mtime edit; expected it to miss")
		}

		strict, err := fsutil.CheckModified(context.Background(), info, true)
		if err != nil {
			t.Fatalf("CheckModified(strict) error = %v", err)
		}
		if !strict {
			t.Error("strict check missed a content change")
		}
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info, true)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if !modified {
			t.Error("CheckModified() = false for deleted file")
		}
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.CheckModified(context.Background(), nil, true)
		if !errors.Is(err, fsutil.ErrNilFileInfo) {
			t.Errorf("CheckModified(nil) error = %v, want ErrNilFileInfo", err)
		}
	})
}
