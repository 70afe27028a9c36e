package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverPages - Page lookup
// ---------------------------------------------------------------------------

func TestDiscoverPages(t *testing.T) {
	t.Parallel()

	t.Run("default layout", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		touch(t, filepath.Join(root, "index.html"))
		touch(t, filepath.Join(root, "pages", "b.md"))
		touch(t, filepath.Join(root, "pages", "a.html"))
		touch(t, filepath.Join(root, "pages", "blog", "post.md"))
		touch(t, filepath.Join(root, "pages", "notes.txt"))
		touch(t, filepath.Join(root, "sections", "nav.html"))

		got, err := DiscoverPages(root, nil)
		if err != nil {
			t.Fatalf("DiscoverPages() error = %v", err)
		}

		want := []string{
			filepath.Join(root, "index"),
			filepath.Join(root, "pages", "a.html"),
			filepath.Join(root, "pages", "b.md"),
			filepath.Join(root, "pages", "blog", "post.md"),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("DiscoverPages() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing pages directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		got, err := DiscoverPages(root, nil)
		if err != nil {
			t.Fatalf("DiscoverPages() error = %v", err)
		}
		if diff := cmp.Diff([]string{filepath.Join(root, "index")}, got); diff != "" {
			t.Errorf("DiscoverPages() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("explicit inputs", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		file := filepath.Join(root, "pages", "about.md")
		dir := filepath.Join(root, "pages", "blog")
		missing := filepath.Join(root, "pages", "contact")
		ignored := filepath.Join(root, "notes.txt")
		touch(t, file)
		touch(t, filepath.Join(dir, "one.md"))
		touch(t, filepath.Join(dir, "two.html"))
		touch(t, filepath.Join(dir, "draft.txt"))
		touch(t, ignored)

		got, err := DiscoverPages(root, []string{missing, dir, file, ignored, file})
		if err != nil {
			t.Fatalf("DiscoverPages() error = %v", err)
		}

		want := []string{
			file,
			filepath.Join(dir, "one.md"),
			filepath.Join(dir, "two.html"),
			missing,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("DiscoverPages() mismatch (-want +got):\n%s", diff)
		}
	})
}

// ---------------------------------------------------------------------------
// TestOutputPath - Output naming
// ---------------------------------------------------------------------------

func TestOutputPath(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/site")
	out := filepath.FromSlash("/site/dist")

	tests := []struct {
		name string
		page string
		hide bool
		want string
	}{
		{name: "index without extension", page: "/site/index", want: "/site/dist/index.html"},
		{name: "markdown page", page: "/site/pages/about.md", want: "/site/dist/pages/about.html"},
		{name: "html page", page: "/site/pages/a.html", want: "/site/dist/pages/a.html"},
		{name: "hidden extension", page: "/site/pages/about.md", hide: true, want: "/site/dist/pages/about"},
		{name: "hidden extension keeps index", page: "/site/index.md", hide: true, want: "/site/dist/index.html"},
		{name: "hidden extension keeps nested index", page: "/site/pages/blog/index.md", hide: true, want: "/site/dist/pages/blog/index.html"},
		{name: "outside root", page: "/elsewhere/x.md", want: "/site/dist/x.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := OutputPath(root, out, filepath.FromSlash(tt.page), tt.hide)
			if want := filepath.FromSlash(tt.want); got != want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.page, got, want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPagesIndex / TestDefaultContext - Global variables
// ---------------------------------------------------------------------------

func TestPagesIndex(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/site")
	pages := []string{
		filepath.FromSlash("/site/index"),
		filepath.FromSlash("/site/pages/about.md"),
		filepath.FromSlash("/site/pages/blog/index.html"),
	}

	tests := []struct {
		name string
		hide bool
		want string
	}{
		{
			name: "with extensions",
			want: `<ul class="siteindex">` +
				`<li><a href="/">index.html</a></li>` +
				`<li><a href="/pages/about.html">pages/about.html</a></li>` +
				`<li><a href="/pages/blog">pages/blog/index.html</a></li>` +
				`</ul>`,
		},
		{
			name: "hidden extensions",
			hide: true,
			want: `<ul class="siteindex">` +
				`<li><a href="/">index.html</a></li>` +
				`<li><a href="/pages/about">pages/about</a></li>` +
				`<li><a href="/pages/blog">pages/blog/index.html</a></li>` +
				`</ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, PagesIndex(root, pages, tt.hide)); diff != "" {
				t.Errorf("PagesIndex() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		if got := PagesIndex(root, nil, false); got != `<ul class="siteindex"></ul>` {
			t.Errorf("PagesIndex(nil) = %q", got)
		}
	})
}

func TestDefaultContext(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext("1.2.3", "<ul></ul>", map[string]string{"title": "Home", VarAppName: "mysite"})

	want := map[string]string{
		VarVersion: "1.2.3",
		VarAppName: "mysite",
		VarAppLink: `<a href="https://github.com/alnah/go-atoms">go-atoms</a>`,
		VarPages:   "<ul></ul>",
		"title":    "Home",
	}
	if diff := cmp.Diff(want, map[string]string(ctx)); diff != "" {
		t.Errorf("DefaultContext() mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestSplitFrontMatter - Page metadata
// ---------------------------------------------------------------------------

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		wantFM      FrontMatter
		wantBody    string
		wantSkipped []string
	}{
		{
			name:     "no front matter",
			content:  "<p>hello</p>\n",
			wantBody: "<p>hello</p>\n",
		},
		{
			name:     "yaml scalars",
			content:  "---\ntitle: Home\norder: 3\ndraft: false\nratio: 1.5\n---\n# Hi\n",
			wantFM:   FrontMatter{"title": "Home", "order": "3", "draft": "false", "ratio": "1.5"},
			wantBody: "# Hi\n",
		},
		{
			name:        "non-scalar values skipped",
			content:     "---\ntitle: Post\ntags: [a, b]\nauthor:\n  name: Ann\n---\nbody",
			wantFM:      FrontMatter{"title": "Post"},
			wantBody:    "body",
			wantSkipped: []string{"author", "tags"},
		},
		{
			name:     "empty yaml block",
			content:  "---\n---\nbody",
			wantBody: "body",
		},
		{
			name:     "json",
			content:  ";;;\n{\"title\": \"Json\", \"n\": 2}\n;;;\nbody",
			wantFM:   FrontMatter{"title": "Json", "n": "2"},
			wantBody: "body",
		},
		{
			name:     "toml",
			content:  "+++\ntitle = \"Toml\"\n+++\nbody",
			wantFM:   FrontMatter{"title": "Toml"},
			wantBody: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, skipped, err := SplitFrontMatter(tt.content)
			if err != nil {
				t.Fatalf("SplitFrontMatter() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantFM, fm); diff != "" {
				t.Errorf("front matter mismatch (-want +got):\n%s", diff)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if diff := cmp.Diff(tt.wantSkipped, skipped); diff != "" {
				t.Errorf("skipped mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScalarString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{name: "nil", in: nil, want: "", wantOK: true},
		{name: "int64", in: int64(42), want: "42", wantOK: true},
		{name: "uint64", in: uint64(7), want: "7", wantOK: true},
		{name: "float", in: 2.0, want: "2", wantOK: true},
		{name: "slice", in: []any{"a"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := scalarString(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("scalarString(%v) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
