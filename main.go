package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ancientlore/fbws/config"
	"github.com/ancientlore/fbws/project"
	"github.com/facebookgo/flagenv"
)

const usageText = `Usage: fbws [flags] <command>

Commands:
  run          Build the site in -root and serve it
  new <name>   Create a new project folder

Flags:
`

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fRoot              = flag.String("root", ".", "Root of web site.")
		fConfig            = flag.String("config", config.FileName, "Configuration file within the root.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size in bytes of the file cache used while building pages.")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usageText)
		flag.PrintDefaults()
	}
	flag.Parse()
	flagenv.Parse()

	switch flag.Arg(0) {
	case "run":
		err := run(options{
			Root:              *fRoot,
			Config:            *fConfig,
			ReadTimeout:       *fReadTimeout,
			ReadHeaderTimeout: *fReadHeaderTimeout,
			WriteTimeout:      *fWriteTimeout,
			CacheSize:         *fCacheSize,
		})
		if err != nil {
			log.Print(err)
			os.Exit(1)
		}
	case "new":
		name := flag.Arg(1)
		if name == "" {
			fmt.Fprintln(os.Stderr, "Usage: fbws new <project-name>")
			os.Exit(2)
		}
		if err := project.Init(name); err != nil {
			log.Printf("Cannot create project: %s", err)
			os.Exit(1)
		}
		log.Printf("Project created at %s/", name)
	default:
		flag.Usage()
		os.Exit(2)
	}
}
