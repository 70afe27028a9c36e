package markdown

import (
	"strings"
	"testing"
)

func TestBuiltin_Highlighting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:  "known language gets chroma classes",
			input: "```go\nfunc main() {}\n```",
			wantContains: []string{
				`<pre><code class="language-go">`,
				`<span class="`,
				"</code></pre>",
			},
			wantExcludes: []string{"<pre class="},
		},
		{
			name:         "unknown language kept raw",
			input:        "```nosuchlanguage\nfunc main() {}\n```",
			wantContains: []string{`<pre><code class="language-nosuchlanguage">func main() {}</code></pre>`},
			wantExcludes: []string{`<span class="`},
		},
		{
			name:         "no language kept raw",
			input:        "```\nfunc main() {}\n```",
			wantContains: []string{"<pre><code>func main() {}</code></pre>"},
			wantExcludes: []string{`<span class="`},
		},
		{
			name:         "indented code is never highlighted",
			input:        "    func main() {}",
			wantContains: []string{"<pre><code>func main() {}</code></pre>"},
			wantExcludes: []string{`<span class="`},
		},
	}

	r := NewBuiltin(WithHighlighting(""))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Render(tt.input)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) = %q, want to contain %q", tt.input, got, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("Render(%q) = %q, should not contain %q", tt.input, got, exclude)
				}
			}
		})
	}
}
