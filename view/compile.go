package view

import (
	"io/fs"
	"log"
	"path"
)

// Compile builds the home page, the not-found page, and one page for each
// file directly inside contentDir. Any failure aborts the whole compilation.
func Compile(fsys fs.FS, contentDir, themePath, siteTitle, headerPath string) (*PageSet, error) {
	contentDir = cleanPath(contentDir)

	pages := make([]Page, 0, 2)
	for _, entry := range []string{HomeFile, NotFoundFile} {
		p, err := BuildPage(fsys, entry, contentDir, themePath, siteTitle, headerPath)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	entries, err := fs.ReadDir(fsys, contentDir)
	if err != nil {
		return nil, &BuildError{Kind: DirUnreadable, Path: contentDir, Err: err}
	}
	seen := make(map[string]string, len(entries)+2)
	seen[pages[0].URLPath] = HomeFile
	seen[pages[1].URLPath] = NotFoundFile
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		name := path.Join(contentDir, entry.Name())
		isDir, err := isFolder(fsys, name, entry)
		if err != nil {
			return nil, &BuildError{Kind: ReadFailed, Path: name, Err: err}
		}
		if isDir {
			log.Printf("Compile: skipping folder %q", name)
			continue
		}
		p, err := BuildPage(fsys, name, contentDir, themePath, siteTitle, headerPath)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[p.URLPath]; ok {
			log.Printf("Compile: %q replaces %q at %s", name, prev, p.URLPath)
		}
		seen[p.URLPath] = name
		pages = append(pages, p)
	}

	return newPageSet(pages), nil
}

// isFolder reports whether entry is a folder, following symbolic links.
func isFolder(fsys fs.FS, name string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	fi, err := fs.Stat(fsys, name)
	if err != nil {
		return false, err
	}
	return fi.IsDir(), nil
}
