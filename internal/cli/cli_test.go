package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asaantaqreeb/taqreeb/internal/catalog"
	"github.com/asaantaqreeb/taqreeb/internal/model"
)

// run executes the root command. Flag values persist between runs, so every
// call spells out the flags it depends on.
func run(t *testing.T, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(io.Discard)
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute())
	return out.Bytes()
}

func TestVendorsCommand(t *testing.T) {
	t.Setenv("TAQREEB_CATALOG", "")
	db := filepath.Join(t.TempDir(), "cache.db")

	out := run(t, "vendors", "--db", db, "-f", "json", "--catalog", "", "--category", "",
		"--min-price", "100000", "--max-price", "200000")

	var got []catalog.Listing
	require.NoError(t, json.Unmarshal(out, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Karachi Foods", got[0].Name)
	assert.Equal(t, 120000.0, got[0].Price)

	out = run(t, "vendors", "--db", db, "-f", "json", "--catalog", "", "--category", "banquet",
		"--min-price", "", "--max-price", "")
	require.NoError(t, json.Unmarshal(out, &got))
	for _, v := range got {
		assert.Equal(t, model.CategoryBanquet, v.Category)
	}
}

func TestChatCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cache.db")
	send := func(text string) {
		run(t, "chat", "send", "--db", db, "-f", "json", "--id", "", "--vendor", "Royal Banquet Hall",
			"--category", "banquet", "--location", "Clifton", "--reply=false", text)
	}

	send("Is March 3 free?")
	send("For 400 guests")

	var conv model.Conversation
	require.NoError(t, json.Unmarshal(run(t, "chat", "show", "--db", db, "-f", "json", "vendor-royal-banquet-hall"), &conv))
	assert.Len(t, conv.Messages, 2)
	assert.Equal(t, "For 400 guests", conv.LastMessage)
	assert.Equal(t, "Clifton", conv.Location)

	var convs []model.Conversation
	require.NoError(t, json.Unmarshal(run(t, "chat", "list", "--db", db, "-f", "json", "--ids-only=false"), &convs))
	assert.Len(t, convs, 1)

	assert.JSONEq(t, `{"count":1}`, string(run(t, "chat", "count", "--db", db)))

	run(t, "chat", "rm", "--db", db, "vendor-royal-banquet-hall")
	assert.JSONEq(t, `{"count":0}`, string(run(t, "chat", "count", "--db", db)))
}

func TestExportImportCommands(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.db")
	dst := filepath.Join(t.TempDir(), "dst.db")

	run(t, "chat", "send", "--db", src, "-f", "json", "--id", "", "--vendor", "", "--reply=true", "need a photographer")
	dump := run(t, "chat", "export", "--db", src, "-f", "json")

	RootCmd.SetIn(bytes.NewReader(dump))
	defer RootCmd.SetIn(nil)
	assert.JSONEq(t, `{"ok":true,"imported":2}`, string(run(t, "chat", "import", "--db", dst)))

	var conv model.Conversation
	require.NoError(t, json.Unmarshal(run(t, "chat", "show", "--db", dst, "-f", "json", model.AIChatID), &conv))
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, model.SenderAI, conv.Messages[1].Sender)
}
