// prodview is a terminal browser for a remote product catalog: it fetches
// the product list from a JSON endpoint and lets you search, filter, sort,
// and paginate it in an interactive table.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"prodview/cmd/prodview/ui"
	"prodview/internal/config"
	"prodview/internal/logging"
	"prodview/internal/source"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	// Global flags
	workspace string
	endpoint  string
	themeName string
	pageSize  int
	debugMode bool

	// Resolved configuration, available to every command after PreRun.
	cfg config.Config
)

// rootCmd launches the interactive browser.
var rootCmd = &cobra.Command{
	Use:   "prodview",
	Short: "prodview - browse a remote product catalog in your terminal",
	Long: `prodview fetches a product catalog from a remote JSON endpoint and lets
you search, filter by category/brand/price range, sort, and paginate the
results in an interactive table.

Run without arguments to start the interactive browser. Use "prodview fetch"
for non-interactive output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if workspace == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve workspace: %w", err)
			}
			workspace = cwd
		}

		var err error
		cfg, err = config.Load(workspace)
		if err != nil {
			return err
		}

		// Flags beat config and environment.
		if endpoint != "" {
			cfg.Source.Endpoint = endpoint
		}
		if themeName != "" {
			cfg.UI.Theme = themeName
		}
		if pageSize > 0 {
			cfg.UI.PageSize = pageSize
		}
		if debugMode {
			cfg.Logging.Debug = true
		}

		return logging.Initialize(workspace, cfg.LoggingSettings())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser()
	},
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prodview version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("prodview %s\n", Version)
	},
}

func runBrowser() error {
	logging.Get(logging.CategoryBoot).Info("starting interactive browser")

	client := source.New(cfg.Source.Endpoint, source.WithLimit(cfg.Source.Limit))
	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	page := ui.NewBrowsePage(client, cfg.UI.PageSize, styles)

	p := tea.NewProgram(page, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser exited with error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "workspace directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "catalog endpoint URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme: light or dark (default: auto-detect)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "table page size (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging to the workspace logs directory")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(docsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
