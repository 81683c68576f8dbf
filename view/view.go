/*
view compiles a project directory into a fixed set of rendered HTML pages.

A project consists of two entry files at the root, "home.html" and "404.html",
a theme stylesheet, a header fragment, and a content folder (usually "pages")
holding one fragment per page. Each fragment is wrapped in a document that
carries the theme inline, a title, and the header, and is given a URL path
derived from its file name:

	pages/about.html   ->  /about
	pages/notes.md     ->  /notes
	home.html          ->  /home
	404.html           ->  /404

Fragments ending in ".md" are converted from Markdown to HTML first. Every
other fragment is inserted verbatim; nothing is escaped.

The content folder is not searched recursively. Subfolders, links to
folders, and hidden files (those starting with ".") are skipped. Paths that
climb above the project root, like "../theme.css", cannot be read.

Compilation happens once. The resulting PageSet is read-only and may be
shared by any number of goroutines.
*/
package view

// Names of the entry files at the root of a project.
const (
	HomeFile     = "home.html"
	NotFoundFile = "404.html"
)

// Page is a compiled, fully rendered HTML document.
type Page struct {
	URLPath string // Canonical path, like "/about"
	Body    string // Rendered document
}

// PageSet holds the pages produced by one compilation. Slot 0 is the home
// page and slot 1 is the not-found page; content pages follow in directory order.
type PageSet struct {
	pages []Page
	index map[string]int
}

// newPageSet indexes pages by URL path. When two pages share a path the
// later one wins.
func newPageSet(pages []Page) *PageSet {
	ps := &PageSet{
		pages: pages,
		index: make(map[string]int, len(pages)),
	}
	for i, p := range pages {
		ps.index[p.URLPath] = i
	}
	return ps
}

// Home returns the home page.
func (ps *PageSet) Home() Page {
	return ps.pages[0]
}

// NotFound returns the page served for unknown paths.
func (ps *PageSet) NotFound() Page {
	return ps.pages[1]
}

// Len returns the number of pages, including home and not-found.
func (ps *PageSet) Len() int {
	return len(ps.pages)
}

// At returns the page in slot i.
func (ps *PageSet) At(i int) Page {
	return ps.pages[i]
}

// Lookup finds the page whose URL path is exactly urlPath.
func (ps *PageSet) Lookup(urlPath string) (Page, bool) {
	i, ok := ps.index[urlPath]
	if !ok {
		return Page{}, false
	}
	return ps.pages[i], true
}

// Pages returns a copy of all pages in slot order.
func (ps *PageSet) Pages() []Page {
	r := make([]Page, len(ps.pages))
	copy(r, ps.pages)
	return r
}
