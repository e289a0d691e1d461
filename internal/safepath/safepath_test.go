package safepath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()

	root, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !filepath.IsAbs(root.Dir()) {
		t.Errorf("Dir should be absolute, got %s", root.Dir())
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("New should fail for a missing directory")
	}
}

func TestNew_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := New(file)
	if err == nil {
		t.Fatal("New should fail for a regular file")
	}
}

func TestResolve_SafeNames(t *testing.T) {
	dir := t.TempDir()
	root, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"plain name", "photo.png", filepath.Join(root.Dir(), "photo.png")},
		{"nested name", "albums/summer/photo.jpg", filepath.Join(root.Dir(), "albums", "summer", "photo.jpg")},
		{"dot segments that stay inside", "albums/../photo.png", filepath.Join(root.Dir(), "photo.png")},
		{"absolute path inside root", filepath.Join(root.Dir(), "photo.png"), filepath.Join(root.Dir(), "photo.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := root.Resolve(tt.fileName)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.fileName, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q): got %s, want %s", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestResolve_UnsafeNames(t *testing.T) {
	dir := t.TempDir()
	root, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name     string
		fileName string
	}{
		{"empty name", ""},
		{"parent escape", "../outside.png"},
		{"deep parent escape", "../../../../etc/passwd"},
		{"nested then escape", "albums/../../outside.png"},
		{"absolute path outside root", "/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := root.Resolve(tt.fileName)
			if !errors.Is(err, ErrUnsafe) {
				t.Errorf("Resolve(%q): got %v, want ErrUnsafe", tt.fileName, err)
			}
		})
	}
}

// A root of .../img must not accept .../img2 even though "img2" starts
// with the root's string form.
func TestResolve_SiblingPrefixDirectory(t *testing.T) {
	parent := t.TempDir()
	imgDir := filepath.Join(parent, "img")
	siblingDir := filepath.Join(parent, "img2")
	for _, d := range []string{imgDir, siblingDir} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	root, err := New(imgDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	unsafe := []string{
		"../img2/photo.png",
		filepath.Join(siblingDir, "photo.png"),
	}
	for _, name := range unsafe {
		if _, err := root.Resolve(name); !errors.Is(err, ErrUnsafe) {
			t.Errorf("Resolve(%q): got %v, want ErrUnsafe", name, err)
		}
	}
}

func TestResolve_SymlinkEscape(t *testing.T) {
	parent := t.TempDir()
	imgDir := filepath.Join(parent, "img")
	if err := os.Mkdir(imgDir, 0o755); err != nil {
		t.Fatalf("failed to create root: %v", err)
	}

	secret := filepath.Join(parent, "secret.png")
	if err := os.WriteFile(secret, []byte("outside"), 0o644); err != nil {
		t.Fatalf("failed to write outside file: %v", err)
	}

	link := filepath.Join(imgDir, "sneaky.png")
	if err := os.Symlink(secret, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	root, err := New(imgDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := root.Resolve("sneaky.png"); !errors.Is(err, ErrUnsafe) {
		t.Errorf("Resolve through escaping symlink: got %v, want ErrUnsafe", err)
	}
}

func TestResolve_MissingFileIsStillResolved(t *testing.T) {
	root, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Resolution is pure path computation; the file need not exist.
	got, err := root.Resolve("not-created-yet.png")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != filepath.Join(root.Dir(), "not-created-yet.png") {
		t.Errorf("unexpected resolved path: %s", got)
	}
}
