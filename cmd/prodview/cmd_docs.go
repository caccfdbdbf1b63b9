package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed usage.md
var usageDoc string

// docsCmd renders the usage document in the terminal.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the usage guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		style := "light"
		if cfg.UI.Theme == "dark" {
			style = "dark"
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := renderer.Render(usageDoc)
		if err != nil {
			return fmt.Errorf("failed to render docs: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}
