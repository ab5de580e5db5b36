// Root command for the shringar CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/shringar-studio/shringar/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// sysError marks a failure of the environment (store, config, filesystem)
// as opposed to a mistake in the user's input. main maps it to
// exitSysError.
type sysError struct{ err error }

func (e sysError) Error() string { return e.err.Error() }
func (e sysError) Unwrap() error { return e.err }

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "shringar",
	Short:   "Shringar manages a beauty salon from the terminal",
	Long:    "Shringar keeps salon services, clients, appointments, staff, and\njewelry inventory in a local store and manages them with CRUD commands.",
	Version: version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return sysError{err}
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return sysError{err}
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.shringar-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(newServiceCmd())
	rootCmd.AddCommand(newClientCmd())
	rootCmd.AddCommand(newAppointmentCmd())
	rootCmd.AddCommand(newStaffCmd())
	rootCmd.AddCommand(newJewelryCmd())
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > SHRINGAR_DATA_DIR env > default
// $(CWD)/.shringar-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > SHRINGAR_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
