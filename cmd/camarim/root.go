// Root command for the camarim CLI.
package main

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"camarim/pkg/camarim"
	"camarim/pkg/logging"
	"camarim/pkg/memory"
)

// flagConfigDir is set by the --config-dir flag.
var flagConfigDir string

var rootCmd = &cobra.Command{
	Use:   "camarim",
	Short: "Camarim is an in-memory dressing-room inventory tool",
	Long: `Camarim tracks performers, dressing rooms, a shared item catalog,
warehouse stock, purchase orders, and shopping lists for a theater.
Running the command without arguments starts the interactive menu.
All data is kept in memory for the session only.`,
	Version: camarim.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		logging.Setup(logging.ParseLevel(cfg.GetString(cfgKeyLogLevel)))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		session := uuid.NewString()
		slog.Info("session started", "session_id", session)

		reg := memory.NewRegistry()
		runMenu(reg, newPrompter())

		slog.Info("session ended", "session_id", session)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")

	rootCmd.AddCommand(versionCmd)
}
