package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwulff/whisper-export/internal/export"
)

var exportVerbose bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run one export of new and updated sessions",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportVerbose, "verbose", false, "Log each file written")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var logger *log.Logger
	if exportVerbose {
		logger = log.New(os.Stderr, "", 0)
	}

	engine := export.New(store, cfg.OutputDir, cfg.StatePath, logger)
	stats, err := engine.Run()
	if err != nil {
		return err
	}

	fmt.Println(stats.Summary())
	return nil
}
