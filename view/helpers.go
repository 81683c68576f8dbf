package view

import (
	"path"
	"strings"
)

// cleanPath converts a configured path into an fs.FS name. Leading "./"
// and "/" are dropped. Names that climb above the root keep their ".."
// so that reading them fails.
func cleanPath(name string) string {
	return path.Clean(strings.TrimLeft(name, "/"))
}

// URLPath derives the URL path for a source file. Files inside contentDir
// are addressed relative to it; any other file is addressed relative to the
// project root. The extension is removed in both cases.
func URLPath(filePath, contentDir string) string {
	name := cleanPath(filePath)
	if dir := cleanPath(contentDir); dir != "." {
		name = strings.TrimPrefix(name, dir+"/")
	}
	return "/" + strings.TrimSuffix(name, path.Ext(name))
}

// pageName is the URL path without the leading slash, used in titles.
func pageName(urlPath string) string {
	return strings.TrimPrefix(urlPath, "/")
}

// isHidden reports whether name starts with a period.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
