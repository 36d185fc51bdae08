package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/git"
	"github.com/byterings/ghswitch/internal/ui"
)

var currentCmd = &cobra.Command{
	Use:     "current",
	Aliases: []string{"active"},
	Short:   "Show the currently active profile",
	RunE:    runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

func runCurrent(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	p, ok := store.Current()
	if !ok {
		fmt.Println("No active profile")
		fmt.Println("\nSet one with: ghswitch use <name>")
		return nil
	}

	ui.PrintProfile(p, true)

	// Show drift between the stored profile and the actual git config
	if git.IsInstalled() {
		name, email, err := git.GlobalIdentity()
		if err == nil && email != "" && p.Email != "" && email != p.Email {
			fmt.Println()
			ui.Warning(fmt.Sprintf("git config has %s <%s>, which doesn't match this profile", name, email))
			ui.Info(fmt.Sprintf("Re-apply with: ghswitch use %s", p.Name))
		}
	}

	return nil
}
