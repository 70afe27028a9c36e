package markdown

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender indicates the goldmark engine failed to convert a document.
var ErrRender = errors.New("markdown rendering failed")

// Goldmark renders CommonMark with GitHub extensions through goldmark.
type Goldmark struct {
	md goldmark.Markdown
}

// GoldmarkOption configures a Goldmark renderer.
type GoldmarkOption func(*goldmarkConfig)

type goldmarkConfig struct {
	highlight bool
	style     string
}

// WithGoldmarkHighlighting enables chroma highlighting of fenced code with
// the named style.
func WithGoldmarkHighlighting(style string) GoldmarkOption {
	return func(c *goldmarkConfig) {
		c.highlight = true
		c.style = style
	}
}

// NewGoldmark creates a goldmark-backed renderer.
func NewGoldmark(opts ...GoldmarkOption) *Goldmark {
	cfg := goldmarkConfig{style: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	exts := []goldmark.Extender{
		extension.GFM,      // tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if cfg.highlight {
		if cfg.style == "" {
			cfg.style = DefaultHighlightStyle
		}
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(cfg.style),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			gmparser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Embeds expand to raw HTML before rendering.
			html.WithUnsafe(),
			html.WithXHTML(),
		),
	)
	return &Goldmark{md: md}
}

// Render converts src to an HTML fragment.
func (g *Goldmark) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}
