package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/profile"
	"github.com/byterings/ghswitch/internal/ui"
)

var (
	importFlagFormat string
	importFlagForce  bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import profiles from an exported file",
	Long: `Replace all configured profiles with the contents of an export file.
The existing configuration is overwritten, not merged.`,
	Args: cobra.ExactArgs(1),
	Example: `  ghswitch import profiles-backup.json
  ghswitch import profiles-backup.toml --force`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importFlagFormat, "format", "", "File format: json or toml (default: by extension)")
	importCmd.Flags().BoolVarP(&importFlagForce, "force", "f", false, "Skip the confirmation prompt")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := flagOrExtFormat(importFlagFormat, path)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if existing := len(store.Load().Profiles); existing > 0 && !importFlagForce {
		confirmed, err := ui.PromptConfirmation(
			fmt.Sprintf("Importing replaces %d existing profile(s). Continue?", existing))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := store.Import(path, format); err != nil {
		if errors.Is(err, profile.ErrInvalidFormat) {
			return fmt.Errorf("%s is not a valid profile export: %w", path, err)
		}
		return fmt.Errorf("failed to import: %w", err)
	}

	set := store.Load()
	ui.Success(fmt.Sprintf("Imported %d profile(s) from %s", len(set.Profiles), path))
	if set.Current != "" {
		ui.Info(fmt.Sprintf("Active profile: %s (run 'ghswitch use %s' to apply it)", set.Current, set.Current))
	}
	return nil
}
