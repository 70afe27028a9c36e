package fileutil_test

// Notes:
// - Permission-denied branches of CopyDir and WriteFile are not tested because
//   they depend on the user running the tests (root ignores file modes).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-atoms/internal/fileutil"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Existence checks
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")
	mustWrite(t, testFile, "content")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file returns true", path: testFile, want: true},
		{name: "directory returns false", path: tempDir, want: false},
		{name: "nonexistent path returns false", path: filepath.Join(tempDir, "nonexistent"), want: false},
		{name: "empty path returns false", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")
	mustWrite(t, testFile, "content")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "directory returns true", path: tempDir, want: true},
		{name: "file returns false", path: testFile, want: false},
		{name: "nonexistent path returns false", path: filepath.Join(tempDir, "nope"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.DirExists(tt.path); got != tt.want {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple name returns false", input: "atoms", want: false},
		{name: "relative path with dot-slash returns true", input: "./atoms.yaml", want: true},
		{name: "parent path returns true", input: "../shared/atoms.yaml", want: true},
		{name: "absolute Unix path returns true", input: "/etc/atoms.yaml", want: true},
		{name: "Windows path with backslash returns true", input: "C:\\sites\\atoms.yaml", want: true},
		{name: "name with dots but no slash returns false", input: "atoms.prod", want: false},
		{name: "empty string returns false", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile - Output writing
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "page.html")
		if err := fileutil.WriteFile(path, []byte("<p>x</p>")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if got := readFile(t, path); got != "<p>x</p>" {
			t.Errorf("content = %q, want %q", got, "<p>x</p>")
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		mustWrite(t, path, "old content that is longer")
		if err := fileutil.WriteFile(path, []byte("new")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if got := readFile(t, path); got != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		mustWrite(t, filepath.Join(dir, "blocker"), "x")
		if err := fileutil.WriteFile(filepath.Join(dir, "blocker", "page.html"), nil); err == nil {
			t.Error("WriteFile() expected error when parent is a file")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRemoveDir - Output cleanup
// ---------------------------------------------------------------------------

func TestRemoveDir(t *testing.T) {
	t.Parallel()

	t.Run("removes tree", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "dist")
		mustWrite(t, filepath.Join(dir, "sub", "x.html"), "x")
		if err := fileutil.RemoveDir(dir); err != nil {
			t.Fatalf("RemoveDir() error = %v", err)
		}
		if fileutil.DirExists(dir) {
			t.Error("directory still exists after RemoveDir")
		}
	})

	t.Run("missing directory is not an error", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.RemoveDir(filepath.Join(t.TempDir(), "none")); err != nil {
			t.Errorf("RemoveDir() error = %v, want nil", err)
		}
	})

	unsafe := []string{"", ".", "/"}
	for _, dir := range unsafe {
		t.Run("rejects "+dir, func(t *testing.T) {
			t.Parallel()

			if err := fileutil.RemoveDir(dir); !errors.Is(err, fileutil.ErrUnsafeRemoval) {
				t.Errorf("RemoveDir(%q) error = %v, want ErrUnsafeRemoval", dir, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCopyDir - Recursive copy
// ---------------------------------------------------------------------------

func TestCopyDir(t *testing.T) {
	t.Parallel()

	t.Run("copies nested files", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		dst := filepath.Join(t.TempDir(), "out")
		mustWrite(t, filepath.Join(src, "robots.txt"), "User-agent: *")
		mustWrite(t, filepath.Join(src, "img", "logo.svg"), "<svg/>")
		if err := os.Mkdir(filepath.Join(src, "empty"), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := fileutil.CopyDir(src, dst); err != nil {
			t.Fatalf("CopyDir() error = %v", err)
		}

		if got := readFile(t, filepath.Join(dst, "robots.txt")); got != "User-agent: *" {
			t.Errorf("robots.txt = %q", got)
		}
		if got := readFile(t, filepath.Join(dst, "img", "logo.svg")); got != "<svg/>" {
			t.Errorf("img/logo.svg = %q", got)
		}
		if !fileutil.DirExists(filepath.Join(dst, "empty")) {
			t.Error("empty directory was not copied")
		}
	})

	t.Run("merges into existing destination", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		dst := t.TempDir()
		mustWrite(t, filepath.Join(src, "a.txt"), "new")
		mustWrite(t, filepath.Join(dst, "a.txt"), "old")
		mustWrite(t, filepath.Join(dst, "keep.txt"), "keep")

		if err := fileutil.CopyDir(src, dst); err != nil {
			t.Fatalf("CopyDir() error = %v", err)
		}
		if got := readFile(t, filepath.Join(dst, "a.txt")); got != "new" {
			t.Errorf("a.txt = %q, want new", got)
		}
		if got := readFile(t, filepath.Join(dst, "keep.txt")); got != "keep" {
			t.Errorf("keep.txt = %q, want keep", got)
		}
	})

	t.Run("follows directory symlinks", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("symlinks require privileges on Windows")
		}

		src := t.TempDir()
		shared := t.TempDir()
		dst := filepath.Join(t.TempDir(), "out")
		mustWrite(t, filepath.Join(shared, "font.woff"), "font")
		if err := os.Symlink(shared, filepath.Join(src, "fonts")); err != nil {
			t.Fatal(err)
		}

		if err := fileutil.CopyDir(src, dst); err != nil {
			t.Fatalf("CopyDir() error = %v", err)
		}
		if got := readFile(t, filepath.Join(dst, "fonts", "font.woff")); got != "font" {
			t.Errorf("fonts/font.woff = %q, want font", got)
		}
	})

	t.Run("source is a directory symlink", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("symlinks require privileges on Windows")
		}

		shared := t.TempDir()
		src := filepath.Join(t.TempDir(), "media")
		dst := filepath.Join(t.TempDir(), "out")
		mustWrite(t, filepath.Join(shared, "logo.svg"), "svg")
		if err := os.Symlink(shared, src); err != nil {
			t.Fatal(err)
		}

		if err := fileutil.CopyDir(src, dst); err != nil {
			t.Fatalf("CopyDir() error = %v", err)
		}
		if got := readFile(t, filepath.Join(dst, "logo.svg")); got != "svg" {
			t.Errorf("logo.svg = %q, want svg", got)
		}
	})

	t.Run("symlink cycle terminates", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("symlinks require privileges on Windows")
		}

		src := t.TempDir()
		dst := filepath.Join(t.TempDir(), "out")
		mustWrite(t, filepath.Join(src, "a.txt"), "a")
		if err := os.Symlink(src, filepath.Join(src, "loop")); err != nil {
			t.Fatal(err)
		}

		if err := fileutil.CopyDir(src, dst); err != nil {
			t.Fatalf("CopyDir() error = %v", err)
		}
		if got := readFile(t, filepath.Join(dst, "a.txt")); got != "a" {
			t.Errorf("a.txt = %q, want a", got)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.CopyDir(filepath.Join(t.TempDir(), "none"), t.TempDir()); err == nil {
			t.Error("CopyDir() expected error for missing source")
		}
	})

	t.Run("source is a file", func(t *testing.T) {
		t.Parallel()

		src := filepath.Join(t.TempDir(), "file")
		mustWrite(t, src, "x")
		if err := fileutil.CopyDir(src, t.TempDir()); !errors.Is(err, fileutil.ErrNotDirectory) {
			t.Errorf("CopyDir() error = %v, want ErrNotDirectory", err)
		}
	})
}
