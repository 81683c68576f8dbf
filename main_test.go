package main

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ancientlore/cachefs"
	"github.com/ancientlore/fbws/config"
	"github.com/ancientlore/fbws/project"
	"github.com/ancientlore/fbws/view"
)

// newSite creates a project with one content page and returns its folder.
func newSite(t *testing.T, about string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "demo")
	if err := project.Init(dir); err != nil {
		t.Fatal(err)
	}
	err := os.WriteFile(filepath.Join(dir, "pages", "about.html"), []byte(about), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := newSite(t, "<p>About us</p>")
	cfg, pages, err := load(cachefs.New(os.DirFS(dir), nil), config.FileName)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != project.DefaultPort {
		t.Errorf("Unexpected port %d", cfg.Port)
	}
	p, ok := pages.Lookup("/about")
	if !ok {
		t.Fatal("No /about page")
	}
	if !strings.Contains(p.Body, "about on demo") {
		t.Errorf("Unexpected body:\n%s", p.Body)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := newSite(t, "<p>About us</p>")
	if err := os.Remove(filepath.Join(dir, "theme.css")); err != nil {
		t.Fatal(err)
	}
	_, _, err := load(os.DirFS(dir), config.FileName)
	if !errors.Is(err, view.ErrReadFailed) {
		t.Errorf("Expected ErrReadFailed, got %v", err)
	}

	_, _, err = load(os.DirFS(dir), "missing.toml")
	if err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestHandler(t *testing.T) {
	about := "<p>" + strings.Repeat("About us. ", 500) + "</p>"
	dir := newSite(t, about)
	cfg, pages, err := load(os.DirFS(dir), config.FileName)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Headers = map[string]string{"X-Site": "demo"}
	srv := httptest.NewServer(handler(cfg, pages))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/about", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Content-Encoding") != "gzip" {
		t.Fatalf("Expected a gzip response, got headers %v", resp.Header)
	}
	if resp.Header.Get("X-Site") != "demo" {
		t.Errorf("Missing configured header")
	}
	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), about) {
		t.Error("Decompressed body does not contain the page")
	}

	resp2, err := http.Get(srv.URL + "/missing")
	if err != nil {
		t.Fatal(err)
	}
	b, _ = io.ReadAll(resp2.Body)
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp2.StatusCode)
	}
	if string(b) != pages.NotFound().Body {
		t.Errorf("Unexpected not-found body:\n%s", b)
	}
}

func TestLoadLogs(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	dir := newSite(t, "<p>About us</p>")
	if _, _, err := load(os.DirFS(dir), config.FileName); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{`Loaded config "project.toml"`, `Compiled 3 pages for "demo"`} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("Expected log to contain %q:\n%s", s, buf.String())
		}
	}
}
