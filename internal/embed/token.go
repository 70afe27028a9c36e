package embed

import (
	"strconv"
	"strings"

	"github.com/alnah/go-atoms/internal/delim"
)

// TokenKind is the syntactic form of an embed.
type TokenKind int

const (
	// TokenSimple is a bare section name: name.
	TokenSimple TokenKind = iota
	// TokenVariable reads the context: {name}.
	TokenVariable
	// TokenParametric binds variables for a section: name(k="v").
	TokenParametric
	// TokenFolder concatenates a directory of sections: name[] or name[..N].
	TokenFolder
)

func (k TokenKind) String() string {
	switch k {
	case TokenSimple:
		return "simple"
	case TokenVariable:
		return "variable"
	case TokenParametric:
		return "parametric"
	case TokenFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// Unbounded is the folder limit meaning "every entry".
const Unbounded = -1

// Param is one key="value" assignment of a parametric embed.
type Param struct {
	Key   string
	Value string
}

// Token is a classified embed body.
type Token struct {
	Kind TokenKind
	// Name is the section, folder or variable name.
	Name string
	// Params holds parametric assignments in source order.
	Params []Param
	// Limit caps folder entries; Unbounded for no cap.
	Limit int
	// Issues lists recoverable syntax problems met while classifying.
	Issues []string
}

// ParseToken classifies an embed body, the trimmed text between the open
// marker and the close character.
//
// Forms are probed in order: folder, parametric, variable, simple. A form
// that is only partly present is reported in Issues and the next form is
// tried.
func ParseToken(body string) Token {
	body = strings.TrimSpace(body)
	var issues []string

	if tok, ok, issue := parseFolder(body); ok {
		tok.Issues = append(issues, tok.Issues...)
		return tok
	} else if issue != "" {
		issues = append(issues, issue)
	}

	if tok, ok, issue := parseParametric(body); ok {
		tok.Issues = append(issues, tok.Issues...)
		return tok
	} else if issue != "" {
		issues = append(issues, issue)
	}

	lbrace := strings.IndexByte(body, '{')
	rbrace := strings.IndexByte(body, '}')
	if lbrace == 0 && rbrace > 0 {
		return Token{Kind: TokenVariable, Name: strings.TrimSpace(body[1:rbrace]), Limit: Unbounded, Issues: issues}
	}
	if lbrace >= 0 || rbrace >= 0 {
		issues = append(issues, "variable embed incomplete or malformed")
	}

	return Token{Kind: TokenSimple, Name: body, Limit: Unbounded, Issues: issues}
}

func parseFolder(body string) (Token, bool, string) {
	lbrack := strings.IndexByte(body, '[')
	rbrack := strings.IndexByte(body, ']')
	if lbrack < 0 && rbrack < 0 {
		return Token{}, false, ""
	}
	if lbrack < 0 || rbrack < 0 {
		return Token{}, false, "folder embed incomplete"
	}
	// Brackets inside parametric values are not a folder.
	if rbrack < lbrack || !strings.HasSuffix(body, "]") {
		return Token{}, false, ""
	}

	tok := Token{Kind: TokenFolder, Name: strings.TrimSpace(body[:lbrack]), Limit: Unbounded}
	inner := body[lbrack+1 : rbrack]
	if inner == "" {
		return tok, true, ""
	}
	count, ok := strings.CutPrefix(inner, "..")
	if !ok {
		tok.Issues = append(tok.Issues, "folder limit has the wrong format, use name[..N]")
		return tok, true, ""
	}
	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || n < 0 {
		tok.Issues = append(tok.Issues, "folder limit is not a valid number")
		return tok, true, ""
	}
	tok.Limit = n
	return tok, true, ""
}

func parseParametric(body string) (Token, bool, string) {
	lparen := strings.IndexByte(body, '(')
	rparen := delim.Find(body, ')', false)
	if lparen < 0 && rparen == delim.NotFound {
		return Token{}, false, ""
	}
	if lparen < 0 || rparen < lparen {
		return Token{}, false, "parametric embed incomplete"
	}

	name := strings.TrimSpace(body[:lparen])
	if rparen-lparen == 1 {
		return Token{Kind: TokenSimple, Name: name, Limit: Unbounded}, true, ""
	}

	tok := Token{Kind: TokenParametric, Name: name, Limit: Unbounded}
	params, rest := parseParams(body[lparen+1 : rparen])
	tok.Params = params
	if strings.TrimSpace(rest) != "" {
		tok.Issues = append(tok.Issues, "parameters could not be parsed completely, unparsed: "+rest)
	}
	return tok, true, ""
}

// parseParams reads key="value" pairs until no '=' or no closed quote is
// left. Whichever quote character comes first delimits the value.
func parseParams(s string) ([]Param, string) {
	s = strings.TrimSpace(s)
	var params []Param
	for {
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			break
		}
		q := strings.IndexAny(s, `"'`)
		if q < 0 {
			break
		}
		end := strings.IndexByte(s[q+1:], s[q])
		if end < 0 {
			break
		}
		end += q + 1
		params = append(params, Param{
			Key:   strings.TrimSpace(s[:eq]),
			Value: s[q+1 : end],
		})
		s = s[end+1:]
	}
	return params, s
}
