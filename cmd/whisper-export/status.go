package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwulff/whisper-export/internal/export"
	"github.com/jwulff/whisper-export/internal/note"
)

var statusVerbose bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the next export would do, without writing anything",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusVerbose, "verbose", false, "Show one line per session")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	engine := export.New(store, cfg.OutputDir, cfg.StatePath, nil)
	decisions, err := engine.Review()
	if err != nil {
		return err
	}

	var newCount, updatedCount, skippedCount int
	for _, d := range decisions {
		switch d.Action {
		case export.ActionNew:
			newCount++
		case export.ActionUpdate:
			updatedCount++
		case export.ActionSkip:
			skippedCount++
		}

		if statusVerbose {
			fmt.Printf("%-8s %s  %s\n",
				strings.ToUpper(d.Action.String()),
				note.Date(d.Session),
				note.Title(d.Session))
		}
	}

	fmt.Printf("Pending: %d new, %d updated, %d up to date (total %d sessions)\n",
		newCount, updatedCount, skippedCount, len(decisions))
	return nil
}
