package atoms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-atoms/internal/embed"
	"github.com/alnah/go-atoms/internal/fileutil"
	"github.com/alnah/go-atoms/internal/markdown"
	"github.com/alnah/go-atoms/internal/sections"
	"github.com/alnah/go-atoms/internal/site"
)

// Compile-time interface implementation checks.
var (
	_ embed.Loader   = (*sections.FilesystemLoader)(nil)
	_ embed.Renderer = (*markdown.Builtin)(nil)
	_ embed.Renderer = (*markdown.Goldmark)(nil)
)

// Builder resolves and writes the pages of one project.
// Create with NewBuilder, then call Build, or ResolvePage for single pages.
type Builder struct {
	cfg      builderConfig
	loader   *sections.FilesystemLoader
	resolver *embed.Resolver
	logger   *slog.Logger
}

// NewBuilder creates a Builder for the project at root.
// Returns ErrInvalidRoot if root is not a readable directory,
// ErrInvalidMaxDepth or ErrUnknownEngine for invalid options.
func NewBuilder(root string, opts ...Option) (*Builder, error) {
	cfg := builderConfig{
		maxDepth: DefaultMaxDepth,
		engine:   EngineBuiltin,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxDepth < 1 || cfg.maxDepth > MaxDepthLimit {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidMaxDepth, cfg.maxDepth, MaxDepthLimit)
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return nil, err
	}

	loader, err := sections.NewFilesystemLoader(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	if cfg.out == "" {
		cfg.out = filepath.Join(loader.Root(), site.DefaultOutDir)
	}
	if cfg.out, err = filepath.Abs(cfg.out); err != nil {
		return nil, fmt.Errorf("%w: output directory: %v", ErrWriteOutput, err)
	}

	inputs := make([]string, 0, len(cfg.inputs))
	for _, in := range cfg.inputs {
		abs, err := filepath.Abs(in)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrPageNotFound, in, err)
		}
		// Same form as the loader root, so output paths stay relative to it
		if real, err := filepath.EvalSymlinks(abs); err == nil {
			abs = real
		}
		inputs = append(inputs, abs)
	}
	cfg.inputs = inputs

	return &Builder{
		cfg:    cfg,
		loader: loader,
		resolver: embed.NewResolver(loader,
			embed.WithMaxDepth(cfg.maxDepth),
			embed.WithLogger(cfg.logger),
			embed.WithRenderer(renderer),
		),
		logger: cfg.logger,
	}, nil
}

func newRenderer(cfg builderConfig) (embed.Renderer, error) {
	switch cfg.engine {
	case EngineBuiltin:
		var opts []markdown.Option
		if cfg.highlight {
			opts = append(opts, markdown.WithHighlighting(cfg.highlightStyle))
		}
		return markdown.NewBuiltin(opts...), nil
	case EngineGoldmark:
		var opts []markdown.GoldmarkOption
		if cfg.highlight {
			opts = append(opts, markdown.WithGoldmarkHighlighting(cfg.highlightStyle))
		}
		return markdown.NewGoldmark(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.engine)
	}
}

// Root returns the absolute project root.
func (b *Builder) Root() string {
	return b.loader.Root()
}

// OutDir returns the absolute output directory.
func (b *Builder) OutDir() string {
	return b.cfg.out
}

// Pages lists the pages a Build processes, sorted by path.
func (b *Builder) Pages() ([]string, error) {
	return site.DiscoverPages(b.Root(), b.cfg.inputs)
}

// DefaultContext returns the global variables for a build of pages.
func (b *Builder) DefaultContext(pages []string) map[string]string {
	index := site.PagesIndex(b.Root(), pages, b.cfg.hideExtension)
	return site.DefaultContext(Version, index, b.cfg.variables)
}

// ResolvePage loads the page at path and expands it under ctx.
// The path may omit its extension. A leading front matter block is removed
// and its values are added to ctx for this page only.
// Returns ErrPageNotFound if no file exists for path, ErrReadPage if it
// cannot be read. Problems inside the page never fail it.
func (b *Builder) ResolvePage(path string, ctx map[string]string) (string, error) {
	src, err := b.loader.LoadPage(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrPageNotFound, path)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrReadPage, path, err)
	}

	pageCtx := embed.Context(ctx)
	fm, body, skipped, err := site.SplitFrontMatter(src.Content)
	if err != nil {
		b.logger.Warn("front matter ignored", "path", src.Name, "error", err)
	} else {
		src.Content = body
		pageCtx = pageCtx.With(frontMatterParams(fm)...)
		if len(skipped) > 0 {
			b.logger.Debug("front matter keys without scalar value skipped", "path", src.Name, "keys", skipped)
		}
	}

	return b.resolver.ResolveSource(src.Name, src, 0, pageCtx), nil
}

// frontMatterParams orders front matter values by key.
func frontMatterParams(fm site.FrontMatter) []embed.Param {
	params := make([]embed.Param, 0, len(fm))
	for k, v := range fm {
		params = append(params, embed.Param{Key: k, Value: v})
	}
	slices.SortFunc(params, func(a, b embed.Param) int {
		return strings.Compare(a.Key, b.Key)
	})
	return params
}

// Build resolves every page and writes it to the output directory.
//
// Asset directories (root/ and media/) are copied first; copy failures are
// logged and do not fail the build. A page that cannot be loaded is
// skipped: the others are still built and the returned error joins every
// failure. Cancellation is checked between pages.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	result := &BuildResult{}

	pages, err := b.Pages()
	if err != nil {
		return result, fmt.Errorf("%w: discovering pages: %v", ErrReadPage, err)
	}

	if b.cfg.dryRun == nil {
		if err := b.prepareOutput(result); err != nil {
			return result, err
		}
	}

	b.logger.Info("building global context", "pages", len(pages))
	globals := b.DefaultContext(pages)

	var errs []error
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		pr, err := b.buildPage(page, globals)
		if err != nil {
			result.Failed = append(result.Failed, page)
			errs = append(errs, err)
			b.logger.Error("page failed", "page", page, "error", err)
			continue
		}
		result.Pages = append(result.Pages, pr)
	}

	b.logger.Info("build finished",
		"built", len(result.Pages),
		"failed", len(result.Failed),
		"duration", time.Since(start).Round(time.Millisecond))

	return result, errors.Join(errs...)
}

func (b *Builder) buildPage(page string, globals map[string]string) (PageResult, error) {
	b.logger.Info("transforming page", "page", b.loader.Rel(page))

	html, err := b.ResolvePage(page, globals)
	if err != nil {
		return PageResult{}, err
	}
	pr := PageResult{Source: page, Bytes: len(html)}

	if b.cfg.dryRun != nil {
		if _, err := io.WriteString(b.cfg.dryRun, html+"\n"); err != nil {
			return pr, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return pr, nil
	}

	out := site.OutputPath(b.Root(), b.cfg.out, page, b.cfg.hideExtension)
	if err := fileutil.WriteFile(out, []byte(html)); err != nil {
		return pr, fmt.Errorf("%w: %s: %v", ErrWriteOutput, out, err)
	}
	pr.Output = out
	return pr, nil
}

// prepareOutput cleans and creates the output directory, then copies the
// asset directories into it.
func (b *Builder) prepareOutput(result *BuildResult) error {
	if b.cfg.clean {
		b.logger.Info("clearing output directory", "dir", b.cfg.out)
		if err := fileutil.RemoveDir(b.cfg.out); err != nil {
			return fmt.Errorf("%w: %v", ErrCleanOutput, err)
		}
	}

	if err := os.MkdirAll(b.cfg.out, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	copies := []struct{ from, to string }{
		{from: filepath.Join(b.Root(), site.RootDir), to: b.cfg.out},
		{from: filepath.Join(b.Root(), site.MediaDir), to: filepath.Join(b.cfg.out, site.MediaDir)},
	}
	for _, c := range copies {
		if !fileutil.DirExists(c.from) {
			b.logger.Debug("no directory to copy", "dir", c.from)
			continue
		}
		if err := fileutil.CopyDir(c.from, c.to); err != nil {
			b.logger.Warn("copy failed", "from", c.from, "to", c.to,
				"error", fmt.Errorf("%w: %v", ErrCopyAssets, err))
			continue
		}
		b.logger.Info("copied directory", "from", c.from, "to", c.to)
		result.Copied = append(result.Copied, c.from)
	}
	return nil
}
