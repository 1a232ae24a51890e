package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-transform/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help before dispatching
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-transform %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-transform - apply a single transform to raster images")
			fmt.Println()
			fmt.Print(cli.Usage("image-transform"))
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_TRANSFORM_LOG_LEVEL=debug    Enable debug logging")
			return
		}
	}

	// Logs go to stderr; stdout carries inspection output
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("IMAGE_TRANSFORM_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("image-transform v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	r := cli.New(os.Stdout, debug)
	if err := r.Run(os.Args[1:]); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, cli.Usage("image-transform"))
			os.Exit(2)
		}
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
