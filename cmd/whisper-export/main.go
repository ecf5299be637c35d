// whisper-export exports MacWhisper transcription sessions to markdown
// notes, tracking what was already exported so re-runs only touch new or
// changed sessions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwulff/whisper-export/internal/config"
	"github.com/jwulff/whisper-export/internal/db"
)

const version = "0.2.0"

var (
	flagDB     string
	flagOutput string
	flagState  string
)

var rootCmd = &cobra.Command{
	Use:   "whisper-export",
	Short: "Export MacWhisper transcription sessions to markdown notes",
	Long: `whisper-export reads the MacWhisper SQLite database and writes one
markdown note per transcription session into an output directory. A state
file records what was exported, so re-runs only write sessions that are
new or changed since the last run.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "MacWhisper SQLite database path")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "Output directory for notes")
	rootCmd.PersistentFlags().StringVar(&flagState, "state", "", "Export state file path")
}

// loadConfig resolves the effective configuration: environment (and .env)
// values, overridden by any flags the user set.
func loadConfig() config.Config {
	cfg := config.Load()
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagOutput != "" {
		cfg.OutputDir = flagOutput
	}
	if flagState != "" {
		cfg.StatePath = flagState
	}
	return cfg
}

// openStore opens the source database read-only.
func openStore(cfg config.Config) (*db.Store, error) {
	return db.Open(cfg.DBPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
