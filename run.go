package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/ancientlore/fbws/config"
	"github.com/ancientlore/fbws/view"
	"github.com/ancientlore/fbws/web"
	"github.com/golang/groupcache"
)

// options holds the command line settings for the run command.
type options struct {
	Root              string
	Config            string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	CacheSize         int64
}

// load reads the configuration and compiles every page of the site.
func load(fsys fs.FS, cfgName string) (*config.Config, *view.PageSet, error) {
	cfg, err := config.Load(fsys, cfgName)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Loaded config %q", cfgName)
	pages, err := view.Compile(fsys, cfg.Pages, cfg.Theme, cfg.Title, cfg.Header)
	if err != nil {
		return nil, nil, fmt.Errorf("Cannot build pages: %w", err)
	}
	log.Printf("Compiled %d pages for %q", pages.Len(), cfg.Title)
	return cfg, pages, nil
}

// handler wraps the page router with the configured headers and compression.
func handler(cfg *config.Config, pages *view.PageSet) http.Handler {
	return web.HeaderHandler(
		web.ExpiresHandler(
			gziphandler.GzipHandler(
				web.Handler(pages),
			),
			time.Duration(cfg.Expires),
		),
		cfg.Headers)
}

// run builds the site and serves it until interrupted.
func run(opts options) error {
	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	// The theme and header are read for every page, so reads go through a cache.
	fsys := cachefs.New(os.DirFS(opts.Root), &cachefs.Config{GroupName: "fbws", SizeInBytes: opts.CacheSize})

	cfg, pages, err := load(fsys, opts.Config)
	if err != nil {
		return err
	}

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.Port),
		Handler:           handler(cfg, pages),
		ReadTimeout:       opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Printf("Serving on http://%s", srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server: %w", err)
	}
	log.Print("Goodbye.")
	return nil
}
