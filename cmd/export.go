package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/profile"
	"github.com/byterings/ghswitch/internal/ui"
)

var exportFlagFormat string

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all profiles to a single file",
	Long:  `Write all profiles and the active-profile pointer to one file, for backup or transfer to another machine.`,
	Args:  cobra.ExactArgs(1),
	Example: `  ghswitch export profiles-backup.json
  ghswitch export profiles-backup.toml
  ghswitch export backup --format toml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFlagFormat, "format", "", "File format: json or toml (default: by extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := flagOrExtFormat(exportFlagFormat, path)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Export(path, format); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	ui.Success(fmt.Sprintf("Configuration exported to %s", path))
	return nil
}

// flagOrExtFormat resolves the export/import format from an explicit flag
// or the file extension
func flagOrExtFormat(flag, path string) (profile.Format, error) {
	if flag != "" {
		return profile.ParseFormat(flag)
	}
	return profile.FormatForPath(path), nil
}
