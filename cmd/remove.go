package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/platform"
	"github.com/byterings/ghswitch/internal/profile"
	"github.com/byterings/ghswitch/internal/ui"
)

var removeFlagForce bool

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a profile",
	Long:    `Remove a profile from the configuration and optionally delete its SSH key files.`,
	Args:    cobra.ExactArgs(1),
	Example: `  ghswitch remove work
  ghswitch remove old-client --force`,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeFlagForce, "force", "f", false, "Skip confirmation prompts")
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}

	set := store.Load()
	p, ok := set.Get(name)
	if !ok {
		return fmt.Errorf("profile '%s' not found", name)
	}

	if !removeFlagForce {
		confirmed, err := ui.PromptConfirmation(fmt.Sprintf("Remove profile '%s' (%s)?", p.Name, p.Email))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	// Offer to delete key files too
	deleteKeys := false
	if p.SSHKeyPath != "" && !removeFlagForce {
		deleteKeys, err = ui.PromptConfirmation(fmt.Sprintf("Also delete SSH key files (%s)?", p.SSHKeyPath))
		if err != nil {
			return err
		}
	}

	wasCurrent := set.Current == name
	if err := store.Remove(name); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return fmt.Errorf("profile '%s' not found", name)
		}
		return fmt.Errorf("failed to remove profile: %w", err)
	}
	if wasCurrent {
		ui.Info("Active profile cleared")
	}

	if deleteKeys {
		keyPath, err := platform.ExpandTilde(p.SSHKeyPath)
		if err != nil {
			keyPath = p.SSHKeyPath
		}
		for _, path := range []string{keyPath, keyPath + ".pub"} {
			if err := os.Remove(path); err != nil {
				ui.Warning(fmt.Sprintf("Could not delete %s: %v", path, err))
			} else {
				ui.Success(fmt.Sprintf("Deleted: %s", path))
			}
		}
	}

	ui.Success(fmt.Sprintf("Profile '%s' removed", name))

	if len(store.Load().Profiles) == 0 {
		fmt.Println("\nNo profiles remaining. Add one with: ghswitch add")
	}
	return nil
}
