package cli

import (
	"github.com/spf13/cobra"

	"github.com/asaantaqreeb/taqreeb/internal/chat"
	"github.com/asaantaqreeb/taqreeb/internal/kv"
)

type statsOutput struct {
	*kv.Stats
	Conversations int `json:"conversations"`
	Messages      int `json:"messages"`
	Unread        int `json:"unread"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache and conversation statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	c, err := openCache()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	st, err := c.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	out := statsOutput{Stats: st}
	for _, conv := range chat.NewStore(c, log).GetAll(cmd.Context()) {
		out.Conversations++
		out.Messages += len(conv.Messages)
		out.Unread += conv.UnreadCount
	}

	printJSON(cmd.OutOrStdout(), out)
}
