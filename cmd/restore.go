package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"actlog/internal/storage"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore the log snapshot from a backup",
	Long: `Restore the log snapshot from a backup.

Backups are taken automatically before wholesale-replace operations
('actlog import'). By default the most recent backup (.bak.1) is restored;
optionally specify a backup number (1-3). Use --categories to restore the
taxonomy snapshot instead.

Examples:
  actlog restore                  Restore logs from most recent backup
  actlog restore 2                Restore logs from backup #2
  actlog restore --categories     Restore the taxonomy from its backup`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asCategories, _ := cmd.Flags().GetBool("categories")
		restoreFromBackup(args, asCategories)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().Bool("categories", false, "restore the taxonomy snapshot instead of the logs")
}

// restoreFromBackup handles the restore command logic
func restoreFromBackup(args []string, asCategories bool) {
	d := deps()

	pathFunc := d.LogsPath
	if asCategories {
		pathFunc = d.CategoriesPath
	}

	snapshotPath, err := pathFunc()
	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: Failed to resolve snapshot path: %v\n", err)
		d.Exit(1)
		return
	}

	backups, err := storage.ListBackups(snapshotPath)
	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: Failed to list backups: %v\n", err)
		d.Exit(1)
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintln(d.Stdout, "No backups available")
		d.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(d.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(d.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(d.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
	_, _ = fmt.Fprintln(d.Stdout)

	backupNum := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(d.Stderr, "Error: Invalid backup number '%s'\n", args[0])
			d.Exit(1)
			return
		}
		if num < 1 || num > storage.MaxBackupCount {
			_, _ = fmt.Fprintf(d.Stderr, "Error: Backup number must be between 1 and %d (got %d)\n", storage.MaxBackupCount, num)
			d.Exit(1)
			return
		}
		backupNum = num
	}

	backupExists := false
	for _, backup := range backups {
		if backup.Number == backupNum {
			backupExists = true
			break
		}
	}

	if !backupExists {
		_, _ = fmt.Fprintf(d.Stderr, "Error: Backup %d does not exist\n", backupNum)
		d.Exit(1)
		return
	}

	if err := storage.RestoreBackup(snapshotPath, backupNum); err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: Failed to restore backup: %v\n", err)
		d.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(d.Stdout, "Successfully restored from backup %d\n", backupNum)
}
