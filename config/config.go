/*
Package config reads the project.toml file at the root of a site.

	title  = "My Site"      # required
	theme  = "theme.css"    # required
	header = "header.html"  # required
	port   = 8080           # required
	pages  = "pages"        # optional, folder holding content fragments
	expires = "1h"          # optional, sets an Expires header on responses

	[headers]               # optional, added to every response
	Cache-Control = "public"

Paths are relative to the project root.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the configuration file created for new projects.
const FileName = "project.toml"

// DefaultPages is the content folder used when none is configured.
const DefaultPages = "pages"

var (
	ErrMissingOption = errors.New("missing required option")
	ErrInvalidPort   = errors.New("invalid port")
)

// Config contains configuration data from the project.toml file.
type Config struct {
	Title   string            `toml:"title"`
	Theme   string            `toml:"theme"`
	Header  string            `toml:"header"`
	Port    int               `toml:"port"`
	Pages   string            `toml:"pages,omitempty"`
	Expires Duration          `toml:"expires,omitempty"`
	Headers map[string]string `toml:"headers,omitempty"`
}

// Load reads and validates the named configuration file from fsys.
func Load(fsys fs.FS, name string) (*Config, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("Cannot read config file: %w", err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Parse decodes TOML data, applies defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	var cfg Config
	err := toml.Unmarshal(b, &cfg)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse config file: %w", err)
	}
	if cfg.Pages == "" {
		cfg.Pages = DefaultPages
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every required option is present.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Theme == "":
		return fmt.Errorf("%w: theme", ErrMissingOption)
	case cfg.Title == "":
		return fmt.Errorf("%w: title", ErrMissingOption)
	case cfg.Header == "":
		return fmt.Errorf("%w: header", ErrMissingOption)
	case cfg.Port == 0:
		return fmt.Errorf("%w: port", ErrMissingOption)
	case cfg.Port < 0 || cfg.Port > 65535:
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}
	return nil
}

// Encode renders the configuration as TOML.
func (cfg *Config) Encode() ([]byte, error) {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("Cannot encode config: %w", err)
	}
	return b, nil
}
