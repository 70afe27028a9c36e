package markdown

import (
	"strconv"
	"strings"
)

type listKind int

const (
	listAsterisk listKind = iota
	listPlus
	listDash
	listOrderedDot
	listOrderedParen
)

func (k listKind) ordered() bool {
	return k == listOrderedDot || k == listOrderedParen
}

// list is an open list block. Items hold raw Markdown that is parsed again
// when the list is flushed.
type list struct {
	indent    int
	kind      listKind
	start     int
	wrapItems bool
	items     []string
}

func (l *list) appendText(s string) {
	l.items[len(l.items)-1] += s
}

type listItem struct {
	kind  listKind
	start int
	text  string
}

// parseListItem matches "* ", "+ ", "- " or a digit run followed by '.' or
// ')' and whitespace. noPrefix is the line without leading whitespace;
// trimmed also lacks trailing whitespace and supplies the item text.
func parseListItem(noPrefix, trimmed string, mergeUnordered bool) (listItem, bool) {
	if len(noPrefix) >= 2 && noPrefix[1] == ' ' {
		kind := listAsterisk
		switch noPrefix[0] {
		case '*':
		case '+':
			kind = listPlus
		case '-':
			kind = listDash
		default:
			return parseOrderedItem(noPrefix, trimmed)
		}
		if mergeUnordered {
			kind = listAsterisk
		}
		return listItem{kind: kind, text: from(trimmed, 2)}, true
	}
	return parseOrderedItem(noPrefix, trimmed)
}

func parseOrderedItem(noPrefix, trimmed string) (listItem, bool) {
	digits := 0
	for digits < len(noPrefix) && noPrefix[digits] >= '0' && noPrefix[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits+1 >= len(noPrefix) {
		return listItem{}, false
	}

	var kind listKind
	switch noPrefix[digits] {
	case '.':
		kind = listOrderedDot
	case ')':
		kind = listOrderedParen
	default:
		return listItem{}, false
	}
	if !isASCIISpace(noPrefix[digits+1]) {
		return listItem{}, false
	}

	start, err := strconv.Atoi(noPrefix[:digits])
	if err != nil {
		return listItem{}, false
	}
	return listItem{kind: kind, start: start, text: from(trimmed, digits+1)}, true
}

// continueList feeds a line to the open list. It reports whether the line
// was consumed; otherwise the caller keeps processing it.
func (p *parser) continueList(line, noPrefix, trimmed string, indent int) bool {
	l := p.cur.list
	if trimmed == "" {
		l.appendText("\n")
		p.prevBlank = true
		return true
	}

	item, ok := parseListItem(noPrefix, trimmed, p.mergeUnordered)
	if !ok {
		if p.prevBlank {
			p.flush()
		}
		return false
	}

	if p.prevBlank {
		l.wrapItems = true
	}
	if indent <= l.indent+1 {
		if item.kind != l.kind {
			p.flush()
			return false
		}
		l.indent = indent
		l.items = append(l.items, item.text+"\n")
		p.prevBlank = false
		return true
	}

	l.appendText(from(line, l.indent) + "\n")
	p.prevBlank = false
	return true
}

func (b *Builtin) renderList(l *list) string {
	var sb strings.Builder
	switch {
	case !l.kind.ordered():
		sb.WriteString("<ul>")
	case l.start != 1:
		sb.WriteString(`<ol start="` + strconv.Itoa(l.start) + `">`)
	default:
		sb.WriteString("<ol>")
	}

	tags := bareTags
	if l.wrapItems {
		tags = paragraphTags
	}
	for _, item := range l.items {
		sb.WriteString("<li>")
		sb.WriteString(b.convert(item, tags, true))
		sb.WriteString("</li>")
	}

	if l.kind.ordered() {
		sb.WriteString("</ol>")
	} else {
		sb.WriteString("</ul>")
	}
	return sb.String()
}

// from returns s[i:], or "" when s is shorter than i.
func from(s string, i int) string {
	if i >= len(s) {
		return ""
	}
	return s[i:]
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}
