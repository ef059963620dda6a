package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Conversations with vendors and the assistant",
}

func init() {
	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count stored conversations",
		Run:   runChatCount,
	}

	chatCmd.AddCommand(countCmd)
	RootCmd.AddCommand(chatCmd)
}

func runChatCount(cmd *cobra.Command, args []string) {
	svc, c, err := openChat()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	fmt.Fprintf(cmd.OutOrStdout(), `{"count":%d}`+"\n", svc.Store().Count(cmd.Context()))
}
