// Package markdown converts Markdown to HTML.
//
// Builtin is a small line-oriented dialect: paragraphs, headings h1 to h5,
// block quotes, ordered and unordered lists, indented and fenced code,
// horizontal rules, and the inline forms handled by FormatInline. It is not
// CommonMark; the Goldmark renderer is available when compliance matters.
package markdown

// tagPair wraps paragraphs at the current nesting level.
type tagPair struct {
	open  string
	close string
}

var (
	paragraphTags = tagPair{open: "<p>", close: "</p>"}
	bareTags      = tagPair{}
)

// Builtin renders the built-in Markdown dialect.
type Builtin struct {
	hl *highlighter
}

// Option configures a Builtin renderer.
type Option func(*Builtin)

// WithHighlighting highlights fenced code blocks that carry a language tag,
// using the named chroma style.
func WithHighlighting(style string) Option {
	return func(b *Builtin) {
		b.hl = newHighlighter(style)
	}
}

// NewBuiltin creates a built-in dialect renderer.
func NewBuiltin(opts ...Option) *Builtin {
	b := &Builtin{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Render converts src to HTML. It never fails.
func (b *Builtin) Render(src string) (string, error) {
	return b.convert(src, paragraphTags, false), nil
}

// ToHTML converts src with the default built-in renderer.
func ToHTML(src string) string {
	return NewBuiltin().convert(src, paragraphTags, false)
}

// convert parses src as a sequence of blocks. Nested list items are parsed
// with mergeUnordered so that mixed bullet characters form one list.
func (b *Builtin) convert(src string, tags tagPair, mergeUnordered bool) string {
	p := &parser{
		renderer:       b,
		tags:           tags,
		mergeUnordered: mergeUnordered,
	}
	for _, line := range splitLines(src) {
		p.line(line)
	}
	p.flush()
	return p.out.String()
}
