package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asaantaqreeb/taqreeb/internal/catalog"
	"github.com/asaantaqreeb/taqreeb/internal/metrics"
	"github.com/asaantaqreeb/taqreeb/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "vendors [text]",
		Short: "Search the vendor catalog",
		Long: "Filter vendors by free text (name, location or category) and optional bounds. " +
			"Numeric flags are lenient: anything that is not a positive number is ignored.",
		Run: runVendors,
	}

	cmd.Flags().StringP("category", "c", "", "Category: all, banquet, catering, photo, parlor")
	cmd.Flags().StringP("location", "l", "", "Location substring")
	cmd.Flags().String("min-price", "", "Minimum price")
	cmd.Flags().String("max-price", "", "Maximum price")
	cmd.Flags().String("min-rating", "", "Minimum rating")
	cmd.Flags().String("min-guests", "", "Minimum guest count")
	cmd.Flags().String("max-guests", "", "Maximum guest count")

	RootCmd.AddCommand(cmd)
}

func runVendors(cmd *cobra.Command, args []string) {
	q := catalog.Query{Text: strings.Join(args, " ")}
	q.Category, _ = cmd.Flags().GetString("category")
	q.Location, _ = cmd.Flags().GetString("location")
	q.MinPrice, _ = cmd.Flags().GetString("min-price")
	q.MaxPrice, _ = cmd.Flags().GetString("max-price")
	q.MinRating, _ = cmd.Flags().GetString("min-rating")
	q.MinGuests, _ = cmd.Flags().GetString("min-guests")
	q.MaxGuests, _ = cmd.Flags().GetString("max-guests")

	vendors, err := loadVendors(cmd.Context())
	if err != nil {
		exitErr("load catalog", err)
	}

	c := q.Criteria()
	if c.Category != "" && c.Category != model.CategoryAll && !model.ValidCategories[c.Category] {
		exitErr("vendors", fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, c.Category))
	}
	label := string(c.Category)
	if label == "" {
		label = string(model.CategoryAll)
	}
	metrics.VendorSearches.WithLabelValues(label).Inc()

	results := catalog.Listings(catalog.Filter(vendors, c))
	out := cmd.OutOrStdout()

	if formatFlag == "text" {
		for _, v := range results {
			fmt.Fprintf(out, "%-24s %-9s PKR %-10.0f %.1f★  %s\n", v.Name, v.Category, v.Price, v.Rating, v.Location)
		}
		return
	}

	printJSON(out, results)
}
