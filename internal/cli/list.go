package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/asaantaqreeb/taqreeb/internal/chat"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations, most recent first",
		Run:   runChatList,
	}

	cmd.Flags().Bool("ids-only", false, "Only output conversation ids")

	chatCmd.AddCommand(cmd)
}

func runChatList(cmd *cobra.Command, args []string) {
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	svc, c, err := openChat()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	convs := svc.Store().Recent(cmd.Context())
	out := cmd.OutOrStdout()

	if idsOnly {
		for _, conv := range convs {
			fmt.Fprintln(out, conv.ID)
		}
		return
	}

	if formatFlag == "text" {
		now := time.Now()
		for _, conv := range convs {
			fmt.Fprintf(out, "%-28s %-10s %q\n", conv.Name, chat.RelativeTime(conv.LastMessageTime, now), conv.LastMessage)
		}
		return
	}

	printJSON(out, convs)
}
