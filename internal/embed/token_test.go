package embed

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		want       Token
		wantIssues int
	}{
		{
			name: "simple",
			body: " nav ",
			want: Token{Kind: TokenSimple, Name: "nav", Limit: Unbounded},
		},
		{
			name: "nested simple",
			body: "blog/card",
			want: Token{Kind: TokenSimple, Name: "blog/card", Limit: Unbounded},
		},
		{
			name: "variable",
			body: "{ title }",
			want: Token{Kind: TokenVariable, Name: "title", Limit: Unbounded},
		},
		{
			name:       "variable without closing brace",
			body:       "{title",
			want:       Token{Kind: TokenSimple, Name: "{title", Limit: Unbounded},
			wantIssues: 1,
		},
		{
			name:       "brace not at start",
			body:       "a{b}",
			want:       Token{Kind: TokenSimple, Name: "a{b}", Limit: Unbounded},
			wantIssues: 1,
		},
		{
			name: "empty parentheses",
			body: "nav()",
			want: Token{Kind: TokenSimple, Name: "nav", Limit: Unbounded},
		},
		{
			name: "parametric",
			body: `card(title="Hi" href='/x')`,
			want: Token{
				Kind:   TokenParametric,
				Name:   "card",
				Limit:  Unbounded,
				Params: []Param{{Key: "title", Value: "Hi"}, {Key: "href", Value: "/x"}},
			},
		},
		{
			name: "parametric value with brackets",
			body: `card(title="[x]")`,
			want: Token{
				Kind:   TokenParametric,
				Name:   "card",
				Limit:  Unbounded,
				Params: []Param{{Key: "title", Value: "[x]"}},
			},
		},
		{
			name: "parametric unparsed rest",
			body: `card(title="Hi" oops)`,
			want: Token{
				Kind:   TokenParametric,
				Name:   "card",
				Limit:  Unbounded,
				Params: []Param{{Key: "title", Value: "Hi"}},
			},
			wantIssues: 1,
		},
		{
			name:       "parametric without closing parenthesis",
			body:       `card(title="Hi"`,
			want:       Token{Kind: TokenSimple, Name: `card(title="Hi"`, Limit: Unbounded},
			wantIssues: 1,
		},
		{
			name: "folder unbounded",
			body: "list[]",
			want: Token{Kind: TokenFolder, Name: "list", Limit: Unbounded},
		},
		{
			name: "folder limited",
			body: "list[..3]",
			want: Token{Kind: TokenFolder, Name: "list", Limit: 3},
		},
		{
			name:       "folder bad number",
			body:       "list[..three]",
			want:       Token{Kind: TokenFolder, Name: "list", Limit: Unbounded},
			wantIssues: 1,
		},
		{
			name:       "folder wrong format",
			body:       "list[3]",
			want:       Token{Kind: TokenFolder, Name: "list", Limit: Unbounded},
			wantIssues: 1,
		},
		{
			name:       "folder incomplete",
			body:       "list[",
			want:       Token{Kind: TokenSimple, Name: "list[", Limit: Unbounded},
			wantIssues: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseToken(tt.body)
			if len(got.Issues) != tt.wantIssues {
				t.Errorf("ParseToken(%q) issues = %q, want %d", tt.body, got.Issues, tt.wantIssues)
			}
			got.Issues = nil
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseToken(%q) mismatch (-want +got):\n%s", tt.body, diff)
			}
		})
	}
}

func TestContext_With(t *testing.T) {
	t.Parallel()

	parent := Context{"a": "1", "b": "2"}
	child := parent.With(Param{Key: "b", Value: "3"}, Param{Key: "c", Value: "4"})

	if diff := cmp.Diff(Context{"a": "1", "b": "2"}, parent); diff != "" {
		t.Errorf("parent changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Context{"a": "1", "b": "3", "c": "4"}, child); diff != "" {
		t.Errorf("child mismatch (-want +got):\n%s", diff)
	}

	var empty Context
	if got := empty.With(Param{Key: "k", Value: "v"}); got["k"] != "v" {
		t.Errorf("nil Context.With() = %v, want k=v", got)
	}
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		file   string
		want   FileType
		wantOK bool
	}{
		{name: "html", file: "a.html", want: FileHTML, wantOK: true},
		{name: "markdown", file: "dir/b.md", want: FileMarkdown, wantOK: true},
		{name: "text", file: "c.txt", wantOK: false},
		{name: "no extension", file: "d", wantOK: false},
		{name: "upper case", file: "E.HTML", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := TypeOf(tt.file)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("TypeOf(%q) = (%v, %v), want (%v, %v)", tt.file, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
