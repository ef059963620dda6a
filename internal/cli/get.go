package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one conversation with all messages",
		Args:  cobra.ExactArgs(1),
		Run:   runChatShow,
	}

	chatCmd.AddCommand(cmd)
}

func runChatShow(cmd *cobra.Command, args []string) {
	svc, c, err := openChat()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	conv := svc.Store().GetByID(cmd.Context(), args[0])
	if conv == nil {
		exitErr("show", fmt.Errorf("conversation not found: %s", args[0]))
	}

	if formatFlag == "text" {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", conv.Name, conv.ID)
		for _, m := range conv.Messages {
			fmt.Fprintf(out, "  [%s] %-6s %s\n", m.Timestamp.Local().Format("Jan 2 15:04"), m.Sender, m.Text)
		}
		return
	}

	printJSON(cmd.OutOrStdout(), conv)
}
