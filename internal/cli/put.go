package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asaantaqreeb/taqreeb/internal/model"
)

func init() {
	sendCmd := &cobra.Command{
		Use:   "send [text]",
		Short: "Send a message",
		Long: "Send a message to a vendor (--vendor) or an existing thread (--id). " +
			"Without either the message goes to the assistant. Text can be a positional arg or piped via stdin.",
		Run: runChatSend,
	}
	addTargetFlags(sendCmd)
	sendCmd.Flags().BoolP("reply", "r", false, "Also store the thread's automatic reply")

	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open a thread, writing its welcome message if it is new",
		Run:   runChatOpen,
	}
	addTargetFlags(openCmd)

	chatCmd.AddCommand(sendCmd, openCmd)
}

func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Conversation id")
	cmd.Flags().StringP("vendor", "v", "", "Vendor name")
	cmd.Flags().StringP("category", "c", "", "Vendor category, used when the thread is new")
	cmd.Flags().StringP("location", "l", "", "Vendor location, used when the thread is new")
}

// target resolves the conversation id and creation metadata from flags.
func target(cmd *cobra.Command) (string, model.ChatInfo) {
	id, _ := cmd.Flags().GetString("id")
	vendor, _ := cmd.Flags().GetString("vendor")
	category, _ := cmd.Flags().GetString("category")
	location, _ := cmd.Flags().GetString("location")

	switch {
	case vendor != "":
		if id == "" {
			id = model.VendorChatID(vendor)
		}
		return id, model.ChatInfo{Type: model.ChatVendor, Name: vendor, Category: category, Location: location}
	case id != "" && id != model.AIChatID:
		return id, model.ChatInfo{Category: category, Location: location}
	}
	return model.AIChatID, model.AIChatInfo()
}

func runChatSend(cmd *cobra.Command, args []string) {
	reply, _ := cmd.Flags().GetBool("reply")

	// Get text: positional arg first, then check stdin
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			text = string(b)
		}
	}

	id, info := target(cmd)

	svc, c, err := openChat()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	msg, answer, err := svc.Send(cmd.Context(), id, text, info, reply)
	if err != nil {
		exitErr("send", err)
	}

	printJSON(cmd.OutOrStdout(), map[string]any{
		"chat_id": id,
		"message": msg,
		"reply":   answer,
	})
}

func runChatOpen(cmd *cobra.Command, args []string) {
	id, info := target(cmd)

	svc, c, err := openChat()
	if err != nil {
		exitErr("open cache", err)
	}
	defer c.Close()

	printJSON(cmd.OutOrStdout(), svc.Open(cmd.Context(), id, info))
}
