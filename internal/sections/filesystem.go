// Package sections loads pages and embeddable sections from a project
// directory on disk.
package sections

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-atoms/internal/embed"
)

// Dir is the sections directory name under the project root.
const Dir = "sections"

// FilesystemLoader reads sections from <root>/sections.
// Implements embed.Loader.
type FilesystemLoader struct {
	root     string
	sections string
}

// NewFilesystemLoader creates a loader for the project at root.
// Returns ErrInvalidRoot if root is not a readable directory. A missing
// sections directory is not an error: every lookup then reports not found.
func NewFilesystemLoader(root string) (*FilesystemLoader, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}

	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	// Resolve symlinks so containment checks compare real paths
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidRoot, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidRoot, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidRoot, err)
	}

	return &FilesystemLoader{
		root:     absPath,
		sections: filepath.Join(absPath, Dir),
	}, nil
}

// Root returns the absolute project root.
func (f *FilesystemLoader) Root() string {
	return f.root
}

// LoadSection loads <root>/sections/<name> trying each file type in
// priority order.
func (f *FilesystemLoader) LoadSection(name string) (embed.Source, error) {
	if err := ValidateName(name); err != nil {
		return embed.Source{}, err
	}

	base := filepath.Join(f.sections, filepath.FromSlash(name))
	src, err := f.load(base, f.verifyPathContainment)
	if errors.Is(err, fs.ErrNotExist) {
		return embed.Source{}, fmt.Errorf("%w: %q", embed.ErrSectionNotFound, name)
	}
	return src, err
}

// ReadDir lists <root>/sections/<name>.
func (f *FilesystemLoader) ReadDir(name string) ([]embed.DirEntry, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	dir := filepath.Join(f.sections, filepath.FromSlash(name))
	if err := f.verifyPathContainment(dir + string(filepath.Separator)); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", embed.ErrFolderNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	out := make([]embed.DirEntry, 0, len(entries))
	for _, e := range entries {
		isFile := e.Type().IsRegular()
		if e.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, e.Name())); err == nil {
				isFile = info.Mode().IsRegular()
			}
		}
		out = append(out, embed.DirEntry{Name: e.Name(), IsFile: isFile})
	}
	return out, nil
}

// LoadPage loads a top-level page. The path is used as given, relative to
// the working directory or absolute, and is not confined to the project.
// The extension search is the same as for sections.
func (f *FilesystemLoader) LoadPage(path string) (embed.Source, error) {
	return f.load(path, nil)
}

// load tries base with every file type extension. An extension already
// present on base is not appended again. A non-nil verify vets each
// candidate before it is read.
func (f *FilesystemLoader) load(base string, verify func(string) error) (embed.Source, error) {
	var readErr error
	for _, t := range embed.FileTypes() {
		candidate := base
		if filepath.Ext(base) != t.Extension() {
			candidate = base + t.Extension()
		}
		if verify != nil {
			if err := verify(candidate); err != nil {
				return embed.Source{}, err
			}
		}

		content, err := os.ReadFile(candidate) // #nosec G304 -- caller validated the path
		if err == nil {
			return embed.Source{
				Name:    f.Rel(candidate),
				Type:    t,
				Content: string(content),
			}, nil
		}
		if !os.IsNotExist(err) && readErr == nil {
			readErr = err
		}
	}

	if readErr != nil {
		return embed.Source{}, fmt.Errorf("%w: %v", ErrRead, readErr)
	}
	return embed.Source{}, fmt.Errorf("%w: %s", fs.ErrNotExist, f.Rel(base))
}

// Rel returns path relative to the project root with forward slashes, or
// path unchanged when it lies outside the root.
func (f *FilesystemLoader) Rel(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	if realPath, err := filepath.EvalSymlinks(abs); err == nil {
		abs = realPath
	}
	rel, err := filepath.Rel(f.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// verifyPathContainment ensures the resolved path is within the sections
// directory, following symlinks.
func (f *FilesystemLoader) verifyPathContainment(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// Missing files keep the unresolved path; reading them fails later
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	sectionsDir := f.sections
	if realDir, err := filepath.EvalSymlinks(sectionsDir); err == nil {
		sectionsDir = realDir
	}
	if !strings.HasPrefix(absPath, sectionsDir+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes sections directory", ErrPathTraversal)
	}
	return nil
}

// ValidateName checks that a section name stays inside the sections
// directory. Names may contain '/' to reach nested sections.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsRune(name, 0) || strings.Contains(name, "\\") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: absolute name %q", ErrInvalidName, name)
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return fmt.Errorf("%w: %q climbs out of %s", ErrInvalidName, name, Dir)
		}
	}
	return nil
}

// Compile-time interface check.
var _ embed.Loader = (*FilesystemLoader)(nil)
