package markdown

import (
	"strconv"
	"strings"
	"unicode"
)

type blockKind int

const (
	blockNone blockKind = iota
	blockParagraph
	blockIndentedCode
	blockFencedCode
	blockQuote
	blockList
)

// block is the single open block of a parser.
type block struct {
	kind blockKind
	text string

	// fenced code
	fenceIndent int
	fenceLines  int
	lang        string

	list *list
}

type parser struct {
	renderer       *Builtin
	tags           tagPair
	mergeUnordered bool

	out       strings.Builder
	cur       block
	prevBlank bool
}

// splitLines splits on '\n', drops a trailing '\r' from each line and
// ignores the empty string after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func (p *parser) line(line string) {
	noPrefix := strings.TrimLeftFunc(line, unicode.IsSpace)
	trimmed := strings.TrimRightFunc(noPrefix, unicode.IsSpace)
	indent := len(line) - len(noPrefix)

	if p.cur.kind == blockList && p.continueList(line, noPrefix, trimmed, indent) {
		return
	}

	if p.cur.kind != blockList && p.cur.kind != blockFencedCode {
		if item, ok := parseListItem(noPrefix, trimmed, p.mergeUnordered); ok {
			p.flush()
			p.cur = block{kind: blockList, list: &list{
				indent: indent,
				kind:   item.kind,
				start:  item.start,
				items:  []string{item.text + "\n"},
			}}
			p.prevBlank = false
			return
		}
	}

	if strings.HasPrefix(line, "    ") && p.cur.kind != blockFencedCode && p.cur.kind != blockList {
		if p.cur.kind == blockIndentedCode {
			p.cur.text += "\n" + line[4:]
		} else {
			p.flush()
			p.cur = block{kind: blockIndentedCode, text: line[4:]}
		}
		p.prevBlank = false
		return
	}

	if strings.HasPrefix(noPrefix, "```") {
		switch {
		case p.cur.kind != blockFencedCode:
			p.flush()
			p.cur = block{
				kind:        blockFencedCode,
				fenceIndent: indent,
				lang:        strings.TrimSpace(noPrefix[3:]),
			}
			p.prevBlank = false
			return
		case trimmed == "```":
			p.flush()
			p.prevBlank = false
			return
		}
	}

	if p.cur.kind == blockFencedCode {
		if p.cur.fenceLines > 0 {
			p.cur.text += "\n"
		}
		p.cur.text += strings.Repeat(" ", max(indent-p.cur.fenceIndent, 0)) + trimmed
		p.cur.fenceLines++
		return
	}

	if trimmed == "" {
		p.flush()
		p.prevBlank = true
		return
	}
	p.prevBlank = false

	if isHorizontalRule(trimmed) {
		p.flush()
		p.out.WriteString("</hr>")
		return
	}

	if level, text, ok := parseHeading(trimmed); ok {
		p.flush()
		h := strconv.Itoa(level)
		p.out.WriteString("<h" + h + ">" + FormatInline(text) + "</h" + h + ">")
		return
	}

	if rest, ok := strings.CutPrefix(trimmed, ">"); ok {
		if p.cur.kind == blockQuote {
			p.cur.text += rest + "\n"
		} else {
			p.flush()
			p.cur = block{kind: blockQuote, text: rest + "\n"}
		}
		return
	}

	switch p.cur.kind {
	case blockParagraph:
		p.cur.text += " " + trimmed
	case blockList:
		p.cur.list.appendText(" " + trimmed)
	default:
		p.flush()
		p.cur = block{kind: blockParagraph, text: trimmed}
	}
}

// flush writes the open block and closes it.
func (p *parser) flush() {
	switch p.cur.kind {
	case blockNone:
		return
	case blockParagraph:
		p.out.WriteString(p.tags.open + FormatInline(p.cur.text) + p.tags.close)
	case blockIndentedCode:
		p.out.WriteString("<pre><code>" + p.cur.text + "</code></pre>")
	case blockFencedCode:
		p.out.WriteString(p.renderer.fencedCode(p.cur.text, p.cur.lang))
	case blockQuote:
		p.out.WriteString("<blockquote>")
		p.out.WriteString(p.renderer.convert(p.cur.text, paragraphTags, false))
		p.out.WriteString("</blockquote>")
	case blockList:
		p.out.WriteString(p.renderer.renderList(p.cur.list))
	}
	p.cur = block{}
}

func (b *Builtin) fencedCode(code, lang string) string {
	open := "<pre><code>"
	if lang != "" {
		open = `<pre><code class="language-` + lang + `">`
		if b.hl != nil {
			if highlighted, ok := b.hl.highlight(code, lang); ok {
				code = highlighted
			}
		}
	}
	return open + code + "</code></pre>"
}

// isHorizontalRule reports a run of three or more identical '*', '_' or '-'.
func isHorizontalRule(s string) bool {
	if len(s) < 3 || !strings.ContainsRune("*_-", rune(s[0])) {
		return false
	}
	return strings.Count(s, s[:1]) == len(s)
}

// parseHeading recognises one to five leading '#' followed by whitespace or
// the end of the line.
func parseHeading(s string) (int, string, bool) {
	level := 0
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level == 0 || level > 5 {
		return 0, "", false
	}
	rest := s[level:]
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return 0, "", false
	}
	return level, strings.TrimSpace(rest), true
}
