package cmd

import (
	"errors"
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/activate"
	"github.com/byterings/ghswitch/internal/git"
	"github.com/byterings/ghswitch/internal/profile"
	"github.com/byterings/ghswitch/internal/ui"
)

var useFlagNotify bool

var useCmd = &cobra.Command{
	Use:     "use <name>",
	Aliases: []string{"switch"},
	Short:   "Switch to a different profile",
	Long: `Switch to the named profile: apply its identity to the global git
configuration and load its SSH key into the agent. The profile becomes
the active one only when the identity configuration fully succeeds.`,
	Args: cobra.ExactArgs(1),
	Example: `  ghswitch use work
  ghswitch use personal --notify`,
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.Flags().BoolVar(&useFlagNotify, "notify", false, "Send a desktop notification after switching")
}

func runUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	fmt.Printf("Switching to: %s\n", name)

	report, err := newSwitcher(store).Switch(name)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return fmt.Errorf("profile '%s' not found\nRun: ghswitch list", name)
		}
		return err
	}

	printReport(report)

	if !report.OK() {
		return fmt.Errorf("failed to switch profile: identity configuration incomplete")
	}

	ui.Success(fmt.Sprintf("Switched to profile '%s'", name))

	if useFlagNotify {
		if err := beeep.Notify("ghswitch", fmt.Sprintf("Switched to profile %s", name), ""); err != nil {
			ui.Info("Desktop notification could not be sent")
		}
	}

	return nil
}

// printReport prints the per-step outcomes of an activation
func printReport(report *activate.Report) {
	for _, step := range report.Steps {
		switch {
		case step.Skipped:
			continue
		case step.Err == nil:
			ui.Success(string(step.Step))
		case errors.Is(step.Err, activate.ErrAgentUnavailable):
			ui.Warning(fmt.Sprintf("%s: %v (key not loaded, agent may be down)", step.Step, step.Err))
		default:
			ui.Error(fmt.Sprintf("%s: %v", step.Step, step.Err))
		}
	}
}
