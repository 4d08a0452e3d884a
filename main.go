package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/queueboard/internal/config"
	"github.com/mrlokans/queueboard/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg, err := config.NewConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		entrypoint.Run(cfg, Version)
		return
	}

	switch os.Args[1] {
	case "version", "--version":
		fmt.Printf("queueboard %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve      Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  version    Print the version and exit\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from the environment and from ENV_FILE (default .env).\n")
}
