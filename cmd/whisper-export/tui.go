package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwulff/whisper-export/internal/app"
	"github.com/jwulff/whisper-export/internal/export"

	tea "github.com/charmbracelet/bubbletea"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse sessions and run exports interactively",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	engine := export.New(store, cfg.OutputDir, cfg.StatePath, nil)

	p := tea.NewProgram(app.New(engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
