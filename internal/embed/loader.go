package embed

import "errors"

// Sentinel errors returned by Loader implementations.
var (
	ErrSectionNotFound = errors.New("section not found")
	ErrFolderNotFound  = errors.New("section folder not found")
)

// Source is a loaded file ready for conversion.
type Source struct {
	// Name is the slash-separated path relative to the project root.
	Name    string
	Type    FileType
	Content string
}

// DirEntry is one entry of a section folder.
type DirEntry struct {
	Name   string
	IsFile bool
}

// Loader resolves logical section names to file content.
type Loader interface {
	// LoadSection loads the section called name. Each FileType is tried in
	// priority order; its extension is appended unless name already has it.
	// Returns ErrSectionNotFound when no candidate exists.
	LoadSection(name string) (Source, error)

	// ReadDir lists the section folder called name.
	// Returns ErrFolderNotFound when the folder does not exist.
	ReadDir(name string) ([]DirEntry, error)
}

// Renderer converts resolved Markdown to HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}
