// Package atoms builds static sites from templated HTML and Markdown files.
//
// # Quick Start
//
// Create a builder for a project directory and build it:
//
//	b, err := atoms.NewBuilder("site")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err) // every page that failed, joined
//	}
//	fmt.Println(len(result.Pages), "pages written")
//
// # Project Layout
//
//	site/
//	├── index.html      top-level page (or index.md)
//	├── pages/          pages, recursively
//	├── sections/       embeddable sections
//	├── media/          copied to <out>/media
//	└── root/           copied verbatim into <out>
//
// # Embeds
//
// HTML sources embed with "<## ... >" and Markdown sources with "[## ... ]":
//
//	<## nav>                     sections/nav.html or sections/nav.md
//	<## {title}>                 a variable of the page context
//	<## card(title="Hi")>        a section under extra variables
//	<## posts[]> <## posts[..3]> every section of a folder, optionally capped
//
// Expansion is recursive up to the maximum depth (WithMaxDepth). Missing
// sections, undefined variables and malformed embeds are logged and replaced
// with empty content; they never fail a page.
//
// # Global Variables
//
// Every page is resolved with _VERSION, _APPNAME, _APPLINK and _PAGES (an
// index of all pages), the variables passed with WithVariables, and the
// page's own front matter.
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	b, err := atoms.NewBuilder("site",
//	    atoms.WithOutput("public"),
//	    atoms.WithHideExtension(true),
//	    atoms.WithMarkdownEngine(atoms.EngineGoldmark),
//	    atoms.WithHighlighting("monokai"),
//	)
package atoms
