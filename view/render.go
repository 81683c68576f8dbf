package view

import (
	"bytes"
	_ "embed"
	"fmt"
	"io/fs"
	"path"
	"text/template"
	"unicode/utf8"

	"github.com/russross/blackfriday/v2"
)

//go:embed page.html
var pageHTML string

// pageTemplate only substitutes values; text/template does no escaping.
var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// data is what is passed to the page template.
type data struct {
	Theme   string // stylesheet contents
	Title   string // "{page} on {site}"
	Header  string // header fragment
	Content string // page fragment, already converted from Markdown if needed
}

// BuildPage compiles a single source file into a Page. Paths are relative
// to fsys; contentDir decides how the URL path is derived.
func BuildPage(fsys fs.FS, filePath, contentDir, themePath, siteTitle, headerPath string) (Page, error) {
	urlPath := URLPath(filePath, contentDir)

	content, err := readText(fsys, filePath)
	if err != nil {
		return Page{}, err
	}
	theme, err := readText(fsys, themePath)
	if err != nil {
		return Page{}, err
	}
	header, err := readText(fsys, headerPath)
	if err != nil {
		return Page{}, err
	}

	if path.Ext(filePath) == ".md" {
		content = string(markdown([]byte(content)))
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, data{
		Theme:   theme,
		Title:   fmt.Sprintf("%s on %s", pageName(urlPath), siteTitle),
		Header:  header,
		Content: content,
	})
	if err != nil {
		return Page{}, fmt.Errorf("BuildPage: %w", err)
	}

	return Page{URLPath: urlPath, Body: buf.String()}, nil
}

// readText reads the whole file and checks that it is UTF-8.
func readText(fsys fs.FS, name string) (string, error) {
	name = cleanPath(name)
	if !fs.ValidPath(name) {
		return "", &BuildError{Kind: ReadFailed, Path: name, Err: fs.ErrInvalid}
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", &BuildError{Kind: ReadFailed, Path: name, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &BuildError{Kind: NotUTF8, Path: name}
	}
	return string(b), nil
}

// markdown renders a Markdown fragment into HTML.
func markdown(b []byte) []byte {
	return blackfriday.Run(b, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes))
}
