package markdown

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-atoms/internal/delim"
)

// edit replaces n bytes at pos with repl.
type edit struct {
	pos  int
	repl string
	n    int
}

// span is an inclusive byte range.
type span struct {
	start, end int
}

func inSpans(spans []span, pos int) bool {
	for _, s := range spans {
		if pos >= s.start && pos <= s.end {
			return true
		}
	}
	return false
}

// FormatInline converts code spans, links, images, bold and emphasis.
//
// Every pass scans the original text and records edits; the edits are then
// applied from the end of the text backwards so earlier positions stay
// valid. Bold and emphasis markers inside a code span are ignored. Markers
// inside link targets are not excluded.
func FormatInline(text string) string {
	code := codeSpans(text)

	var edits []edit
	for _, s := range code {
		edits = append(edits,
			edit{pos: s.start, repl: "<code>", n: 1},
			edit{pos: s.end, repl: "</code>", n: 1},
		)
	}
	edits = append(edits, linkEdits(text, code)...)
	edits = append(edits, pairEdits(doubleMarkers(text, "**", code), "<strong>", "</strong>", 2)...)
	edits = append(edits, pairEdits(doubleMarkers(text, "__", code), "<strong>", "</strong>", 2)...)
	edits = append(edits, pairEdits(singleMarkers(text, '*', code), "<em>", "</em>", 1)...)
	edits = append(edits, pairEdits(singleMarkers(text, '_', code), "<em>", "</em>", 1)...)

	return applyEdits(text, edits)
}

func applyEdits(text string, edits []edit) string {
	slices.SortStableFunc(edits, func(a, b edit) int {
		return cmp.Compare(a.pos, b.pos)
	})
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		end := min(e.pos+e.n, len(text))
		text = text[:e.pos] + e.repl + text[end:]
	}
	return text
}

// codeSpans pairs isolated backticks in order. A backtick touching another
// backtick never opens or closes a span.
func codeSpans(text string) []span {
	ticks := indexAll(text, '`')
	var solo []int
	for i, pos := range ticks {
		prevAdj := i > 0 && ticks[i-1] == pos-1
		nextAdj := i+1 < len(ticks) && ticks[i+1] == pos+1
		if !prevAdj && !nextAdj {
			solo = append(solo, pos)
		}
	}

	spans := make([]span, 0, len(solo)/2)
	for i := 0; i+1 < len(solo); i += 2 {
		spans = append(spans, span{start: solo[i], end: solo[i+1]})
	}
	return spans
}

// linkEdits finds [text](url "title") and ![alt](url "title").
func linkEdits(text string, code []span) []edit {
	var edits []edit
	for _, i := range indexAll(text, '[') {
		if inSpans(code, i) {
			continue
		}
		closeRel := delim.Find(text[i:], ']', false)
		if closeRel == delim.NotFound {
			continue
		}
		paren := i + closeRel + 1
		if paren >= len(text) || text[paren] != '(' {
			continue
		}
		targetLen := delim.Find(text[paren+1:], ')', false, '(')
		if targetLen == delim.NotFound {
			continue
		}

		url, title := splitTarget(text[paren+1 : paren+1+targetLen])
		titleAttr := ""
		if title != "" {
			titleAttr = ` title="` + title + `"`
		}

		if i > 0 && text[i-1] == '!' {
			alt := text[i+1 : i+closeRel]
			edits = append(edits, edit{
				pos:  i - 1,
				repl: `<img src="` + url + `" alt="` + alt + `"` + titleAttr + ">",
				n:    closeRel + targetLen + 4,
			})
			continue
		}
		edits = append(edits,
			edit{pos: i, repl: `<a href="` + url + `"` + titleAttr + ">", n: 1},
			edit{pos: i + closeRel, repl: "</a>", n: targetLen + 3},
		)
	}
	return edits
}

// splitTarget separates `url "title"`.
func splitTarget(target string) (url, title string) {
	q := strings.Index(target, ` "`)
	if q < 0 {
		return target, ""
	}
	end := strings.IndexByte(target[q+2:], '"')
	if end < 0 {
		return target, ""
	}
	return target[:q], target[q+2 : q+2+end]
}

// doubleMarkers returns non-overlapping positions of marker outside code
// spans. "__" between two alphanumeric characters is not a marker.
func doubleMarkers(text, marker string, code []span) []int {
	var out []int
	for off := 0; ; {
		i := strings.Index(text[off:], marker)
		if i < 0 {
			return out
		}
		pos := off + i
		off = pos + len(marker)
		if inSpans(code, pos) {
			continue
		}
		if marker == "__" && alnumBefore(text, pos) && alnumAfter(text, pos+len(marker)) {
			continue
		}
		out = append(out, pos)
	}
}

// singleMarkers returns positions of c that are not doubled and not inside
// code spans. '_' between two alphanumeric characters is not a marker.
func singleMarkers(text string, c byte, code []span) []int {
	var out []int
	for _, pos := range indexAll(text, c) {
		if pos > 0 && text[pos-1] == c || pos+1 < len(text) && text[pos+1] == c {
			continue
		}
		if inSpans(code, pos) {
			continue
		}
		if c == '_' && alnumBefore(text, pos) && alnumAfter(text, pos+1) {
			continue
		}
		out = append(out, pos)
	}
	return out
}

// pairEdits turns consecutive markers into open and close tags. A trailing
// unmatched marker is left as is.
func pairEdits(positions []int, open, close string, n int) []edit {
	edits := make([]edit, 0, len(positions))
	for i := 0; i+1 < len(positions); i += 2 {
		edits = append(edits,
			edit{pos: positions[i], repl: open, n: n},
			edit{pos: positions[i+1], repl: close, n: n},
		)
	}
	return edits
}

func indexAll(s string, c byte) []int {
	var out []int
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			out = append(out, i)
		}
	}
	return out
}

func alnumBefore(s string, pos int) bool {
	r, size := utf8.DecodeLastRuneInString(s[:pos])
	return size > 0 && isAlnum(r)
}

func alnumAfter(s string, pos int) bool {
	r, size := utf8.DecodeRuneInString(s[pos:])
	return size > 0 && isAlnum(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
