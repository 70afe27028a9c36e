package atoms

import (
	"io"
	"log/slog"
	"maps"

	"github.com/alnah/go-atoms/internal/embed"
)

// MarkdownEngine selects the converter used for Markdown sources.
type MarkdownEngine string

// Markdown engines.
const (
	// EngineBuiltin is the small line-oriented dialect: headings, lists,
	// blockquotes, code, emphasis, links and images.
	EngineBuiltin MarkdownEngine = "builtin"

	// EngineGoldmark is CommonMark with GitHub extensions and footnotes.
	EngineGoldmark MarkdownEngine = "goldmark"
)

// Engines returns the available Markdown engines.
func Engines() []MarkdownEngine {
	return []MarkdownEngine{EngineBuiltin, EngineGoldmark}
}

// Depth limits accepted by WithMaxDepth.
const (
	DefaultMaxDepth = embed.DefaultMaxDepth
	MaxDepthLimit   = 255
)

// BuildResult reports what a build produced.
type BuildResult struct {
	Pages  []PageResult // Pages resolved successfully, in build order
	Failed []string     // Pages that could not be built
	Copied []string     // Asset directories copied into the output
}

// PageResult describes one built page.
type PageResult struct {
	Source string // Page path as discovered
	Output string // Written file, empty on dry runs
	Bytes  int    // Size of the resolved HTML
}

// Option configures a Builder.
type Option func(*builderConfig)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	out            string
	maxDepth       int
	hideExtension  bool
	clean          bool
	dryRun         io.Writer
	inputs         []string
	variables      map[string]string
	engine         MarkdownEngine
	highlight      bool
	highlightStyle string
	logger         *slog.Logger
}

// WithOutput sets the output directory (default <root>/dist).
func WithOutput(dir string) Option {
	return func(c *builderConfig) {
		c.out = dir
	}
}

// WithMaxDepth sets the nested embed limit, between 1 and MaxDepthLimit.
// NewBuilder returns ErrInvalidMaxDepth for values out of range.
func WithMaxDepth(n int) Option {
	return func(c *builderConfig) {
		c.maxDepth = n
	}
}

// WithHideExtension writes "page" instead of "page.html" for pages other
// than index pages, and links them without extension in _PAGES.
func WithHideExtension(hide bool) Option {
	return func(c *builderConfig) {
		c.hideExtension = hide
	}
}

// WithClean removes the output directory before building.
func WithClean(clean bool) Option {
	return func(c *builderConfig) {
		c.clean = clean
	}
}

// WithDryRun prints every resolved page to w instead of writing files.
// Nothing is cleaned, created or copied during a dry run.
func WithDryRun(w io.Writer) Option {
	return func(c *builderConfig) {
		c.dryRun = w
	}
}

// WithInputs restricts the build to the given files and directories.
// Without inputs the index and every file under pages/ are built.
func WithInputs(paths ...string) Option {
	return func(c *builderConfig) {
		c.inputs = append(c.inputs, paths...)
	}
}

// WithVariables adds global variables. They override the built-in ones
// (_VERSION, _APPNAME, ...) and are overridden by page front matter.
func WithVariables(vars map[string]string) Option {
	return func(c *builderConfig) {
		if c.variables == nil {
			c.variables = make(map[string]string, len(vars))
		}
		maps.Copy(c.variables, vars)
	}
}

// WithLogger sets the logger receiving build progress and diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMarkdownEngine selects the Markdown engine (default EngineBuiltin).
// NewBuilder returns ErrUnknownEngine for other values.
func WithMarkdownEngine(e MarkdownEngine) Option {
	return func(c *builderConfig) {
		c.engine = e
	}
}

// WithHighlighting enables syntax highlighting of fenced code blocks with
// the named chroma style. An empty style selects the default one.
func WithHighlighting(style string) Option {
	return func(c *builderConfig) {
		c.highlight = true
		c.highlightStyle = style
	}
}
