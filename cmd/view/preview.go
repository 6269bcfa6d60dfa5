package main

import (
	"flag"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grindlemire/go-view/components"
	"github.com/grindlemire/go-view/preview"
)

// runPreview implements the preview subcommand.
func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	stylePath := fs.String("style", "", "YAML stylesheet")

	if err := fs.Parse(args); err != nil {
		return err
	}

	sheet, err := loadSheet(*stylePath)
	if err != nil {
		return err
	}
	return preview.Run(components.Parent{}, sheet, tea.WithAltScreen())
}
