// Package site holds the project layout conventions of a go-atoms site:
// where pages live, where they are written, and the global variables every
// page is resolved with.
package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-atoms/internal/embed"
)

// Project layout under the root directory.
const (
	IndexName     = "index"
	PagesDir      = "pages"
	MediaDir      = "media"
	RootDir       = "root"
	DefaultOutDir = "dist"
)

// DiscoverPages lists the pages to build, sorted by path.
//
// Without inputs, the pages are <root>/index and every file below
// <root>/pages. The index is listed even when missing so that building it
// reports the error. With inputs, each file is taken as is and each
// directory is walked recursively. Files found while walking are kept only
// when their extension is a valid file type; explicit files that do not
// exist are kept so the loader can try the extension search on them.
func DiscoverPages(root string, inputs []string) ([]string, error) {
	var pages []string

	if len(inputs) == 0 {
		pages = append(pages, filepath.Join(root, IndexName))
		found, err := walkPages(filepath.Join(root, PagesDir))
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		pages = append(pages, found...)
	}

	for _, in := range inputs {
		info, err := os.Stat(in)
		switch {
		case err != nil && os.IsNotExist(err):
			pages = append(pages, in)
		case err != nil:
			return nil, fmt.Errorf("reading input %s: %w", in, err)
		case info.IsDir():
			found, err := walkPages(in)
			if err != nil {
				return nil, err
			}
			pages = append(pages, found...)
		case embed.HasValidExtension(in):
			pages = append(pages, in)
		}
	}

	slices.Sort(pages)
	return slices.Compact(pages), nil
}

func walkPages(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	var pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if embed.HasValidExtension(path) {
			pages = append(pages, path)
		}
		return nil
	})
	return pages, err
}

// OutputPath returns where page is written under out. The page keeps its
// path relative to root, with its extension replaced by ".html". With
// hideExtension the extension is dropped, except for index pages. Pages
// outside root are written directly under out.
func OutputPath(root, out, page string, hideExtension bool) string {
	rel := relativeTo(root, page)
	return filepath.Join(out, filepath.FromSlash(htmlName(rel, hideExtension)))
}

// htmlName swaps a valid extension of the slash path rel for the output one.
func htmlName(rel string, hideExtension bool) string {
	stem := rel
	if _, ok := embed.TypeOf(rel); ok {
		stem = strings.TrimSuffix(rel, filepath.Ext(rel))
	}
	if hideExtension && !isIndex(stem) {
		return stem
	}
	return stem + ".html"
}

func isIndex(stem string) bool {
	return stem == IndexName || strings.HasSuffix(stem, "/"+IndexName)
}

// relativeTo returns page relative to root as a slash path. Pages outside
// root are reduced to their base name.
func relativeTo(root, page string) string {
	rel, err := filepath.Rel(root, page)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(page)
	}
	return filepath.ToSlash(rel)
}
