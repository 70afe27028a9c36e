// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-atoms/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/atoms.yaml"

	// Find a user config path (contains .config/go-atoms) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-atoms") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInvalidRoot returns hints for a project root that cannot be used.
func ForInvalidRoot() string {
	return format("use --root or ATOMS_ROOT to point at the project directory")
}

// ForPageNotFound returns hints for a top-level page that cannot be read.
// The layout reminder names the index and pages locations under root.
func ForPageNotFound(root string) string {
	var hints []string
	if root != "" {
		hints = append(hints,
			"the index is read from "+filepath.Join(root, "index.html")+" or index.md",
			"pages are read from "+filepath.Join(root, "pages"))
	}
	hints = append(hints, "inputs must end in .html or .md")
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownEngine returns hints listing the Markdown engines.
func ForUnknownEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available engines: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
