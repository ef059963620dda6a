package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asaantaqreeb/taqreeb/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List vendor categories",
		Run:   runCategories,
	}

	RootCmd.AddCommand(cmd)
}

func runCategories(cmd *cobra.Command, args []string) {
	if formatFlag == "text" {
		for _, c := range model.Categories {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", c.Key, c.Title)
		}
		return
	}
	printJSON(cmd.OutOrStdout(), model.Categories)
}
