// Package project creates the files for a new site.
package project

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ancientlore/fbws/config"
	"github.com/ancientlore/fbws/view"
)

//go:embed skeleton
var skeletonFS embed.FS

// DefaultPort is written to the configuration of new projects.
const DefaultPort = 8080

// Init creates the folder dir and fills it with a working site: entry
// pages, a theme, a header, an empty pages folder, and project.toml.
// The site title is the base name of dir. It is an error if dir exists.
func Init(dir string) error {
	dir = filepath.Clean(dir)
	if err := os.Mkdir(dir, 0o755); err != nil {
		return fmt.Errorf("Init: %w", err)
	}

	err := fs.WalkDir(skeletonFS, "skeleton", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		b, err := fs.ReadFile(skeletonFS, p)
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(p, "skeleton/")))
		return os.WriteFile(dst, b, 0o644)
	})
	if err != nil {
		return fmt.Errorf("Init: %w", err)
	}

	cfg := config.Config{
		Title:  filepath.Base(dir),
		Theme:  "theme.css",
		Header: "header.html",
		Port:   DefaultPort,
	}
	b, err := cfg.Encode()
	if err != nil {
		return fmt.Errorf("Init: %w", err)
	}
	if err = os.WriteFile(filepath.Join(dir, config.FileName), b, 0o644); err != nil {
		return fmt.Errorf("Init: %w", err)
	}

	if err = os.Mkdir(filepath.Join(dir, config.DefaultPages), 0o755); err != nil {
		return fmt.Errorf("Init: %w", err)
	}
	return nil
}

// Files lists the files Init writes, relative to the project folder.
func Files() []string {
	return []string{view.HomeFile, view.NotFoundFile, "theme.css", "header.html", config.FileName}
}
