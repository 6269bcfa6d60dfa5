// Package main provides the CLI for rendering the parent/child view tree.
//
// Usage:
//
//	view render [options]    Render the tree as html, json, text, or tree
//	view preview [options]   Show the tree in an interactive terminal preview
//	view help                Show help
//
// Examples:
//
//	view render                          HTML on stdout
//	view render -format tree             Outline of the element tree
//	view render -format html,json -o out Write out/view.html and out/view.json
//	view preview -style sheet.yaml       Preview with a custom stylesheet
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-view/internal/debug"
)

const version = "0.1.0"

const usage = `view - render the parent/child view tree

Usage:
  view <command> [options]

Commands:
  render      Render the tree to stdout or files
  preview     Show the tree in an interactive terminal preview
  version     Print version information
  help        Show this help message

Render options:
  -format     Comma-separated formats: html, json, text, tree (default html)
  -style      YAML stylesheet layered over the built-in one
  -width      Maximum width for text output (default: terminal width)
  -o          Output file, or directory when several formats are given

Environment:
  VIEW_DEBUG                    Append debug logs to this file
  OTEL_EXPORTER_OTLP_ENDPOINT   Export render traces over OTLP/HTTP
  OTEL_SERVICE_NAME             Service name for exported traces
`

func main() {
	code := run(os.Args[1:])
	debug.Close()
	os.Exit(code)
}

// run dispatches a subcommand and returns the process exit code.
func run(argv []string) int {
	if len(argv) < 1 {
		fmt.Print(usage)
		return 1
	}

	command := argv[0]
	args := argv[1:]

	switch command {
	case "render":
		if err := runRender(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "preview":
		if err := runPreview(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "version":
		fmt.Printf("view version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		return 1
	}
	return 0
}
