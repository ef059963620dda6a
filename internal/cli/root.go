// Package cli implements the taqreeb CLI commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/asaantaqreeb/taqreeb/internal/catalog"
	"github.com/asaantaqreeb/taqreeb/internal/chat"
	"github.com/asaantaqreeb/taqreeb/internal/config"
	"github.com/asaantaqreeb/taqreeb/internal/kv"
	"github.com/asaantaqreeb/taqreeb/internal/logger"
	"github.com/asaantaqreeb/taqreeb/internal/model"
)

const serviceName = "taqreeb"

var (
	dbPath      string
	formatFlag  string
	catalogPath string

	cfg *config.Config
	log = logger.Default(serviceName)
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "taqreeb",
	Short: "Event vendor marketplace",
	Long:  "Browse event vendors and keep conversations with them and the planning assistant. SQLite-backed, single binary.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		l, err := logger.New(serviceName, cmd.ErrOrStderr(), c.LogLevel, c.LogFormat)
		if err != nil {
			return err
		}
		cfg, log = c, l
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Cache database path (default: $TAQREEB_DB or ~/.taqreeb/cache.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Vendor catalog file, YAML or JSON (default: $TAQREEB_CATALOG or built-in)")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if cfg != nil {
		return cfg.DBPath()
	}
	return (&config.Config{}).DBPath()
}

func openCache() (*kv.SQLiteCache, error) {
	return kv.Open(getDBPath())
}

// openChat opens the cache and wraps it in a chat service. Close the
// returned cache when done.
func openChat() (*chat.Service, *kv.SQLiteCache, error) {
	c, err := openCache()
	if err != nil {
		return nil, nil, err
	}
	return chat.NewService(chat.NewStore(c, log), nil, nil), c, nil
}

// loadVendors reads the catalog named by --catalog or the config, falling
// back to the built-in one.
func loadVendors(ctx context.Context) ([]model.Vendor, error) {
	path := catalogPath
	if path == "" && cfg != nil {
		path = cfg.Catalog
	}

	var src catalog.Source = catalog.Seed()
	if path != "" {
		src = catalog.FileSource{Path: path}
	}
	vendors, err := src.Vendors(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("catalog", path).Int("vendors", len(vendors)).Msg("catalog loaded")
	return vendors, nil
}

func printJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func exitErr(msg string, err error) {
	log.Debug().Err(err).Str("op", msg).Msg("command failed")
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
