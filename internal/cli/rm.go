package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a conversation",
		Args:  cobra.ExactArgs(1),
		Run:   runChatRm,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every conversation",
		Run:   runChatClear,
	}
	clearCmd.Flags().Bool("confirm", false, "Required; clearing is irreversible")

	chatCmd.AddCommand(rmCmd, clearCmd)
}

func runChatRm(cmd *cobra.Command, args []string) {
	svc, c, err := openChat()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	svc.Store().DeleteChat(cmd.Context(), args[0])
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q}`+"\n", args[0])
}

func runChatClear(cmd *cobra.Command, args []string) {
	confirm, _ := cmd.Flags().GetBool("confirm")
	if !confirm {
		exitErr("clear", errors.New("refusing to clear without --confirm"))
	}

	svc, c, err := openChat()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	svc.Store().ClearAll(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
}
