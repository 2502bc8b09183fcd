package app

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/jbinventory/internal/output"
	"github.com/blackwell-systems/jbinventory/internal/scanner"
)

var (
	backupCmd = &cobra.Command{
		Use:   "backup",
		Short: "Manage settings snapshots",
	}

	backupCreateCmd = &cobra.Command{
		Use:   "create [config-dir-name...]",
		Short: "Snapshot the options and eval directories of installs",
		Long: `Snapshot every detected install, or only the installs whose config
directory names are given. Each snapshot is named <product>_<version>_<timestamp>.`,
		RunE: runBackupCreate,
	}

	backupListCmd = &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE:  runBackupList,
	}

	backupDeleteCmd = &cobra.Command{
		Use:   "delete <backup>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  runBackupDelete,
	}

	backupRestoreCmd = &cobra.Command{
		Use:   "restore <backup> <config-dir>",
		Short: "Replace a config directory's options with a snapshot's copy",
		Args:  cobra.ExactArgs(2),
		RunE:  runBackupRestore,
	}
)

func init() {
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupDeleteCmd, backupRestoreCmd)
}

func runBackupCreate(cmd *cobra.Command, args []string) error {
	roots, err := resolveRoots()
	if err != nil {
		return err
	}
	mgr, err := newBackupManager()
	if err != nil {
		return err
	}

	installs, err := scanner.New(roots).Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	scanner.SortInstalls(installs)

	wanted := make(map[string]bool, len(args))
	for _, a := range args {
		wanted[a] = true
	}

	var created, failed int
	for _, inst := range installs {
		if len(wanted) > 0 && !wanted[filepath.Base(inst.ConfigPath)] {
			continue
		}
		path, err := mgr.CreateBackup(inst.ConfigPath, inst.Label())
		if err != nil {
			log.Printf("backup of %s failed: %v", inst.ConfigPath, err)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", inst.Product.Icon(), inst.Label(), path)
		created++
	}

	if created == 0 && failed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No installs matched.")
	}
	if failed > 0 {
		return fmt.Errorf("%d backup(s) failed", failed)
	}
	return nil
}

func runBackupList(cmd *cobra.Command, args []string) error {
	mgr, err := newBackupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderBackupTable(backups))
	return nil
}

// backupPath accepts either a snapshot name or a path.
func backupPath(root, arg string) string {
	if filepath.IsAbs(arg) || filepath.Base(arg) != arg {
		return arg
	}
	return filepath.Join(root, arg)
}

func runBackupDelete(cmd *cobra.Command, args []string) error {
	mgr, err := newBackupManager()
	if err != nil {
		return err
	}
	path := backupPath(mgr.Root(), args[0])
	if err := mgr.DeleteBackup(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", path)
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	mgr, err := newBackupManager()
	if err != nil {
		return err
	}
	path := backupPath(mgr.Root(), args[0])
	if err := mgr.RestoreBackup(path, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Restored %s into %s\n", path, args[1])
	return nil
}
