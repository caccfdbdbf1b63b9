package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prodview/cmd/prodview/ui"
	"prodview/internal/catalog"
	"prodview/internal/source"
)

var (
	fetchQuery    string
	fetchCategory string
	fetchBrand    string
	fetchMinPrice string
	fetchMaxPrice string
	fetchSort     string
	fetchAll      bool
	fetchJSON     bool
)

// fetchCmd pulls the catalog once and prints it, filtered through the same
// pipeline the interactive browser uses.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the catalog and print it non-interactively",
	Long: `Fetches the product catalog and prints it as a table (or JSON).
The same filter pipeline as the interactive browser applies: category and
brand are case-insensitive equality, the price bounds are inclusive, and the
free-text query matches title, brand, or category.

Sort with --sort <id|title|brand|category|price>; prefix with "-" for
descending, e.g. --sort -price.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	client := source.New(cfg.Source.Endpoint, source.WithLimit(cfg.Source.Limit))

	ctx := context.Background()
	var (
		listing *catalog.Listing
		err     error
	)
	if fetchAll {
		listing, err = client.FetchAll(ctx)
	} else {
		listing, err = client.Fetch(ctx)
	}
	if err != nil {
		return err
	}

	criteria := catalog.Criteria{
		Query:    fetchQuery,
		Category: fetchCategory,
		Brand:    fetchBrand,
		MinPrice: fetchMinPrice,
		MaxPrice: fetchMaxPrice,
	}
	products := catalog.Apply(listing.Products, criteria)

	order, err := parseSort(fetchSort)
	if err != nil {
		return err
	}
	products = order.Apply(products)

	if fetchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	title := fmt.Sprintf("Products (%d of %d)", len(products), listing.Total)
	table := ui.NewSimpleTable(title, "ID", "Title", "Brand", "Category", "Price")
	table.AlignColumn(0, ui.AlignRight)
	table.AlignColumn(4, ui.AlignRight)
	for _, p := range products {
		table.AddRow(
			fmt.Sprintf("%d", p.ID),
			p.Title,
			p.Brand,
			p.Category,
			fmt.Sprintf("%.2f", p.Price),
		)
	}
	fmt.Print(table.View(styles))
	return nil
}

// parseSort turns a --sort value like "price" or "-title" into an Order.
func parseSort(raw string) (catalog.Order, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return catalog.Order{}, nil
	}

	dir := catalog.Ascending
	if strings.HasPrefix(raw, "-") {
		dir = catalog.Descending
		raw = raw[1:]
	}

	var col catalog.Column
	switch raw {
	case "id":
		col = catalog.ColumnID
	case "title":
		col = catalog.ColumnTitle
	case "brand":
		col = catalog.ColumnBrand
	case "category":
		col = catalog.ColumnCategory
	case "price":
		col = catalog.ColumnPrice
	default:
		return catalog.Order{}, fmt.Errorf("unknown sort column %q (want id, title, brand, category, or price)", raw)
	}
	return catalog.Order{Column: col, Direction: dir}, nil
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchQuery, "query", "q", "", "free-text search over title, brand, category")
	fetchCmd.Flags().StringVar(&fetchCategory, "category", "", "category filter (case-insensitive equality)")
	fetchCmd.Flags().StringVar(&fetchBrand, "brand", "", "brand filter (case-insensitive equality)")
	fetchCmd.Flags().StringVar(&fetchMinPrice, "min-price", "", "minimum price (inclusive)")
	fetchCmd.Flags().StringVar(&fetchMaxPrice, "max-price", "", "maximum price (inclusive)")
	fetchCmd.Flags().StringVar(&fetchSort, "sort", "", "sort column, '-' prefix for descending")
	fetchCmd.Flags().BoolVar(&fetchAll, "all", false, "walk every page of the source, not just the first")
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "print JSON instead of a table")
}
