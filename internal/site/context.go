package site

import (
	"html"
	"maps"
	"path"
	"strings"

	"github.com/alnah/go-atoms/internal/embed"
)

// Application metadata exposed to pages.
const (
	AppName = "go-atoms"
	AppHome = "https://github.com/alnah/go-atoms"
)

// Global variable names.
const (
	VarVersion = "_VERSION"
	VarAppName = "_APPNAME"
	VarAppLink = "_APPLINK"
	VarPages   = "_PAGES"
)

// DefaultContext returns the variables every page starts with. Entries of
// extra override the built-in ones.
func DefaultContext(version, pagesIndex string, extra map[string]string) embed.Context {
	ctx := embed.Context{
		VarVersion: version,
		VarAppName: AppName,
		VarAppLink: `<a href="` + AppHome + `">` + AppName + `</a>`,
		VarPages:   pagesIndex,
	}
	maps.Copy(ctx, extra)
	return ctx
}

// PagesIndex renders the site index: one link per page in a
// <ul class="siteindex"> list. An index page links to its directory.
func PagesIndex(root string, pages []string, hideExtension bool) string {
	var b strings.Builder
	b.WriteString(`<ul class="siteindex">`)
	for _, p := range pages {
		label := htmlName(relativeTo(root, p), hideExtension)
		href := label
		if isIndex(strings.TrimSuffix(label, ".html")) {
			href = path.Dir(label)
			if href == "." {
				href = ""
			}
		}
		b.WriteString(`<li><a href="/`)
		b.WriteString(html.EscapeString(href))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(label))
		b.WriteString(`</a></li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}
