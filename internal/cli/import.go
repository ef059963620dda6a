package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/asaantaqreeb/taqreeb/internal/chat"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import conversations from JSON",
		Long:  "Import conversations from JSON on stdin. Expects the format produced by export; messages already present are skipped.",
		Run:   runImport,
	}

	chatCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		exitErr("read stdin", err)
	}

	var exp chat.Export
	if err := json.Unmarshal(data, &exp); err != nil {
		exitErr("parse json", err)
	}

	svc, c, err := openChat()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	imported := svc.Store().Import(cmd.Context(), exp.Conversations)
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}

