// Package embed expands the embed syntax of HTML and Markdown sources.
//
// An embed is delimited by an open marker and a close character: "<## ... >"
// in HTML and "[## ... ]" in Markdown. The body is one of four forms:
//
//	name                  a section file
//	{name}                a context variable
//	name(k="v" k2='v2')   a section resolved under extra variables
//	name[] / name[..N]    every section of a folder, optionally capped
//
// Expansion always restarts from the leftmost marker, so markers produced by
// an expansion are expanded in turn until none remain or the depth limit is
// reached. Problems never abort a resolution: they are logged and the
// offending embed is replaced with empty content.
package embed

import (
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/alnah/go-atoms/internal/delim"
	"github.com/alnah/go-atoms/internal/markdown"
)

// DefaultMaxDepth is the default limit of nested file expansions.
const DefaultMaxDepth = 8

// Marker is an embed open marker with its close character.
type Marker struct {
	Open  string
	Close byte
}

// Embed markers.
var (
	HTMLMarker     = Marker{Open: "<##", Close: '>'}
	MarkdownMarker = Marker{Open: "[##", Close: ']'}
)

// Resolver expands embeds against a Loader.
// A Resolver holds no per-call state and is safe for concurrent use when its
// Loader and Renderer are.
type Resolver struct {
	loader   Loader
	renderer Renderer
	maxDepth int
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth sets the nested expansion limit.
func WithMaxDepth(n int) Option {
	return func(r *Resolver) {
		r.maxDepth = n
	}
}

// WithLogger sets the logger receiving diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRenderer sets the Markdown renderer used for Markdown sources.
func WithRenderer(rd Renderer) Option {
	return func(r *Resolver) {
		if rd != nil {
			r.renderer = rd
		}
	}
}

// NewResolver creates a Resolver reading sections from loader.
func NewResolver(loader Loader, opts ...Option) *Resolver {
	r := &Resolver{
		loader:   loader,
		renderer: markdown.NewBuiltin(),
		maxDepth: DefaultMaxDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MaxDepth returns the configured expansion limit.
func (r *Resolver) MaxDepth() int {
	return r.maxDepth
}

// ResolveSource converts src by its file type one level below depth.
// Pages are resolved with depth 0. The path is only used in diagnostics.
func (r *Resolver) ResolveSource(path string, src Source, depth int, ctx Context) string {
	return r.convert(path, src, depth+1, ctx)
}

func (r *Resolver) convert(path string, src Source, depth int, ctx Context) string {
	switch src.Type {
	case FileHTML:
		return r.Resolve(path, src.Content, depth, ctx, HTMLMarker)
	case FileMarkdown:
		text := r.Resolve(path, src.Content, depth, ctx, MarkdownMarker)
		html, err := r.renderer.Render(text)
		if err != nil {
			r.logger.Warn("markdown rendering failed, replacing with empty content",
				"path", path, "error", err)
			return ""
		}
		return html
	default:
		r.logger.Warn("unknown source type, replacing with empty content",
			"path", path, "type", src.Type)
		return ""
	}
}

// Resolve expands every embed of marker m in text.
//
// Each embed is replaced by its expansion and scanning restarts from the
// beginning. An embed without a matching close character stops the
// resolution and the remaining text is returned unchanged. At or beyond
// the maximum depth every embed resolves to empty content.
func (r *Resolver) Resolve(path, text string, depth int, ctx Context, m Marker) string {
	lastIndex, lastLen := -1, -1

	for {
		idx := strings.Index(text, m.Open)
		if idx < 0 {
			return text
		}
		if idx == lastIndex && len(text) == lastLen {
			r.logger.Warn("embed does not converge, aborting (are <>'\"()[] balanced?)",
				"path", path, "index", idx, "embed", preview(text[idx:]))
			return text
		}
		lastIndex, lastLen = idx, len(text)
		r.logger.Debug("found embed marker", "path", path, "index", idx)

		end := delim.Find(text[idx:], m.Close, false)
		if end == delim.NotFound {
			r.logger.Warn("embed is never closed, leaving the rest untouched",
				"path", path, "index", idx, "embed", preview(text[idx:]))
			return text
		}
		token := text[idx : idx+end+1]
		r.logger.Debug("matched embed", "path", path, "length", end+1, "embed", preview(token))

		var expansion string
		if depth < r.maxDepth {
			expansion = r.expand(path, token, depth, ctx, m)
		} else {
			r.logger.Warn("maximum embed depth reached, replacing with empty content",
				"path", path, "maxDepth", r.maxDepth, "embed", preview(token))
		}
		text = text[:idx] + expansion + text[idx+end+1:]
	}
}

func (r *Resolver) expand(path, token string, depth int, ctx Context, m Marker) string {
	body := token[len(m.Open) : len(token)-1]
	tok := ParseToken(body)
	for _, issue := range tok.Issues {
		r.logger.Warn(issue, "path", path, "embed", preview(token))
	}

	switch tok.Kind {
	case TokenVariable:
		v, ok := ctx.Lookup(tok.Name)
		if !ok {
			r.logger.Warn("variable is undefined, replacing with empty content",
				"path", path, "variable", tok.Name)
		}
		return v
	case TokenParametric:
		for _, p := range tok.Params {
			r.logger.Debug("adding context value", "path", path, "key", p.Key, "length", len(p.Value))
		}
		return r.section(path, tok.Name, depth, ctx.With(tok.Params...))
	case TokenFolder:
		return r.folder(path, tok, depth, ctx)
	case TokenSimple:
		return r.section(path, tok.Name, depth, ctx)
	default:
		return ""
	}
}

func (r *Resolver) section(parent, name string, depth int, ctx Context) string {
	src, err := r.loader.LoadSection(name)
	if err != nil {
		r.logger.Warn("section not found, replacing with empty content",
			"path", parent, "section", name, "error", err)
		return ""
	}
	return r.ResolveSource(src.Name+" >> "+parent, src, depth, ctx)
}

func (r *Resolver) folder(parent string, tok Token, depth int, ctx Context) string {
	entries, err := r.loader.ReadDir(tok.Name)
	if err != nil {
		r.logger.Warn("section folder not found, replacing with empty content",
			"path", parent, "folder", tok.Name, "error", err)
		return ""
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsFile && HasValidExtension(e.Name) {
			names = append(names, e.Name)
		}
	}
	slices.Sort(names)
	if tok.Limit != Unbounded && tok.Limit < len(names) {
		names = names[:tok.Limit]
	}

	var b strings.Builder
	for _, n := range names {
		b.WriteString(r.section(parent, path.Join(tok.Name, n), depth, ctx))
	}
	return b.String()
}

// preview shortens long embeds for log output.
func preview(s string) string {
	const (
		maxRunes = 50
		head     = 35
		tail     = 8
	)
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:head]) + ".." + string(runes[len(runes)-tail:])
}
