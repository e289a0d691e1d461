package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readDirNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestReplace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "image.png")
	if err := os.WriteFile(target, []byte("old content"), 0o644); err != nil {
		t.Fatalf("failed to write target: %v", err)
	}

	err := Replace(target, func(w io.Writer) error {
		_, err := w.Write([]byte("new content"))
		return err
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read target: %v", err)
	}
	if string(got) != "new content" {
		t.Errorf("content: got %q, want %q", got, "new content")
	}
}

func TestReplace_ContentMatchesAllWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(target, []byte("seed"), 0o644); err != nil {
		t.Fatalf("failed to write target: %v", err)
	}

	err := Replace(target, func(w io.Writer) error {
		for _, chunk := range []string{"alpha-", "beta-", "gamma"} {
			if _, err := w.Write([]byte(chunk)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, _ := os.ReadFile(target)
	if string(got) != "alpha-beta-gamma" {
		t.Errorf("content: got %q, want %q", got, "alpha-beta-gamma")
	}
}

func TestReplace_NoTempFileRemains(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "image.png")
	if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
		t.Fatalf("failed to write target: %v", err)
	}

	err := Replace(target, func(w io.Writer) error {
		_, err := w.Write([]byte("new"))
		return err
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	names := readDirNames(t, dir)
	if len(names) != 1 || names[0] != "image.png" {
		t.Errorf("directory contents: got %v, want [image.png]", names)
	}
}

func TestReplace_WriterFailureLeavesTargetUntouched(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "image.png")
	original := []byte("original bytes")
	if err := os.WriteFile(target, original, 0o644); err != nil {
		t.Fatalf("failed to write target: %v", err)
	}

	wantErr := errors.New("backend exploded")
	err := Replace(target, func(w io.Writer) error {
		// Partial write before the failure must not leak into the target.
		if _, err := w.Write([]byte("partial")); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Replace: got %v, want %v", err, wantErr)
	}

	got, _ := os.ReadFile(target)
	if string(got) != string(original) {
		t.Errorf("target changed after failed write: got %q, want %q", got, original)
	}

	names := readDirNames(t, dir)
	if len(names) != 1 || names[0] != "image.png" {
		t.Errorf("temp file left behind: dir contents %v", names)
	}
}

func TestReplace_CreatesMissingTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "fresh.png")

	err := Replace(target, func(w io.Writer) error {
		_, err := w.Write([]byte("fresh"))
		return err
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read target: %v", err)
	}
	if string(got) != "fresh" {
		t.Errorf("content: got %q, want %q", got, "fresh")
	}
}

func TestReplace_PreservesExistingPermissions(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "image.png")
	if err := os.WriteFile(target, []byte("old"), 0o600); err != nil {
		t.Fatalf("failed to write target: %v", err)
	}

	err := Replace(target, func(w io.Writer) error {
		_, err := w.Write([]byte("new"))
		return err
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("failed to stat target: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions: got %o, want 600", perm)
	}
}
