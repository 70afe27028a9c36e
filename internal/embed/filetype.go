package embed

import "path/filepath"

// FileType identifies a source format the resolver knows how to convert.
type FileType int

const (
	// FileHTML sources are resolved with the HTML marker and emitted as is.
	FileHTML FileType = iota
	// FileMarkdown sources are resolved with the Markdown marker, then rendered.
	FileMarkdown
)

// fileTypes lists every known type in lookup priority order.
var fileTypes = []FileType{FileHTML, FileMarkdown}

// FileTypes returns the known file types in lookup priority order.
func FileTypes() []FileType {
	out := make([]FileType, len(fileTypes))
	copy(out, fileTypes)
	return out
}

// Extension returns the file extension including the leading dot.
func (t FileType) Extension() string {
	switch t {
	case FileHTML:
		return ".html"
	case FileMarkdown:
		return ".md"
	default:
		return ""
	}
}

// Marker returns the embed marker used inside sources of this type.
func (t FileType) Marker() Marker {
	switch t {
	case FileMarkdown:
		return MarkdownMarker
	default:
		return HTMLMarker
	}
}

func (t FileType) String() string {
	switch t {
	case FileHTML:
		return "html"
	case FileMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// TypeOf returns the file type matching the extension of name.
func TypeOf(name string) (FileType, bool) {
	ext := filepath.Ext(name)
	for _, t := range fileTypes {
		if t.Extension() == ext {
			return t, true
		}
	}
	return 0, false
}

// HasValidExtension reports whether name ends with a known extension.
func HasValidExtension(name string) bool {
	_, ok := TypeOf(name)
	return ok
}
