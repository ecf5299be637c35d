package main

import (
	"github.com/spf13/cobra"

	"github.com/jwulff/whisper-export/internal/export"
	"github.com/jwulff/whisper-export/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the exporter over MCP on stdio",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	engine := export.New(store, cfg.OutputDir, cfg.StatePath, nil)
	return mcp.Serve(mcp.NewServer(engine, version))
}
