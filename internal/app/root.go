// Package app wires the jbinventory commands.
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/jbinventory/internal/backup"
	"github.com/blackwell-systems/jbinventory/internal/scanner"
)

var (
	configRoot string
	dataRoot   string
	backupRoot string

	// RootCmd is the root command for jbinventory
	RootCmd = &cobra.Command{
		Use:   "jbinventory",
		Short: "Inventory JetBrains IDE installs and back up their settings",
		Long: `jbinventory finds JetBrains IDE installs under the per-user config
directory, shows each install's license status, and keeps timestamped
snapshots of its options directory.

Examples:
  # List installs
  jbinventory scan

  # Snapshot every install's settings
  jbinventory backup create

  # Restore a snapshot into an install
  jbinventory backup restore <backup> <config-dir>`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&configRoot, "config-root", "", "user config directory (default: platform config dir)")
	RootCmd.PersistentFlags().StringVar(&dataRoot, "data-root", "", "user data directory (default: platform data dir)")
	RootCmd.PersistentFlags().StringVar(&backupRoot, "backup-root", "", "backup directory (default: ~/.jbinventory/backups)")

	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(scanCmd)
	RootCmd.AddCommand(backupCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// resolveRoots applies flag overrides on top of the platform defaults.
func resolveRoots() (scanner.Roots, error) {
	if configRoot != "" && dataRoot != "" {
		return scanner.Roots{Config: configRoot, Data: dataRoot}, nil
	}
	roots, err := scanner.DefaultRoots()
	if err != nil {
		return scanner.Roots{}, err
	}
	if configRoot != "" {
		roots.Config = configRoot
	}
	if dataRoot != "" {
		roots.Data = dataRoot
	}
	return roots, nil
}

func newBackupManager() (*backup.Manager, error) {
	if backupRoot != "" {
		return backup.New(backupRoot), nil
	}
	root, err := backup.DefaultRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve backup directory: %w", err)
	}
	return backup.New(root), nil
}
