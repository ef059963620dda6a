package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export conversations as JSON",
		Long:  "Export every conversation with its messages as JSON, in storage order.",
		Run:   runExport,
	}

	chatCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	svc, c, err := openChat()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	printJSON(cmd.OutOrStdout(), svc.Store().ExportAll(cmd.Context(), time.Now().UTC()))
}
