package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-view/components"
	"github.com/grindlemire/go-view/host"
	"github.com/grindlemire/go-view/internal/telemetry"
	"github.com/grindlemire/go-view/internal/termsize"
	"github.com/grindlemire/go-view/style"
)

// runRender implements the render subcommand.
func runRender(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	formatList := fs.String("format", "html", "comma-separated output formats")
	stylePath := fs.String("style", "", "YAML stylesheet")
	width := fs.Int("width", -1, "maximum width for text output")
	output := fs.String("o", "", "output file, or directory for several formats")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	formats, err := parseFormats(*formatList)
	if err != nil {
		return err
	}

	sheet, err := loadSheet(*stylePath)
	if err != nil {
		return err
	}

	if *width < 0 {
		*width = termsize.Width(int(os.Stdout.Fd()))
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, telemetry.ConfigFromEnv())
	if err != nil {
		return err
	}
	defer shutdown(ctx)

	h := host.New(components.Parent{},
		host.WithSheet(sheet),
		host.WithWidth(*width),
	)

	targets, closeAll, err := openTargets(formats, *output, stdout)
	if err != nil {
		return err
	}
	renderErr := h.RenderAll(ctx, targets)
	if err := closeAll(); err != nil && renderErr == nil {
		renderErr = err
	}
	return renderErr
}

func parseFormats(list string) ([]host.Format, error) {
	var formats []host.Format
	seen := map[host.Format]bool{}
	for _, name := range strings.Split(list, ",") {
		f, err := host.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// loadSheet returns the built-in sheet with the file at path layered on top.
func loadSheet(path string) (style.Sheet, error) {
	sheet := style.Default()
	if path == "" {
		return sheet, nil
	}
	custom, err := style.Load(path)
	if err != nil {
		return nil, err
	}
	return sheet.Merge(custom), nil
}

var extensions = map[host.Format]string{
	host.FormatHTML: ".html",
	host.FormatJSON: ".json",
	host.FormatText: ".txt",
	host.FormatTree: ".tree",
}

// openTargets maps each format to its writer. A single format goes to
// output (or stdout when empty); several formats need output to name a
// directory and are written to view.<ext> inside it.
func openTargets(formats []host.Format, output string, stdout io.Writer) (map[host.Format]io.Writer, func() error, error) {
	noop := func() error { return nil }

	if len(formats) == 1 {
		if output == "" {
			return map[host.Format]io.Writer{formats[0]: stdout}, noop, nil
		}
		f, err := os.Create(output)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output: %w", err)
		}
		return map[host.Format]io.Writer{formats[0]: f}, f.Close, nil
	}

	if output == "" {
		return nil, nil, fmt.Errorf("-o directory is required for %d formats", len(formats))
	}
	if err := os.MkdirAll(output, 0755); err != nil {
		return nil, nil, fmt.Errorf("creating output directory: %w", err)
	}

	targets := make(map[host.Format]io.Writer, len(formats))
	var files []*os.File
	closeAll := func() error {
		var firstErr error
		for _, f := range files {
			if err := f.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
	for _, format := range formats {
		f, err := os.Create(filepath.Join(output, "view"+extensions[format]))
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("creating output: %w", err)
		}
		files = append(files, f)
		targets[format] = f
	}
	return targets, closeAll, nil
}
