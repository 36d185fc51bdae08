package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/agent"
	"github.com/byterings/ghswitch/internal/ui"
)

var testSSHCmd = &cobra.Command{
	Use:   "test-ssh",
	Short: "Test the SSH connection to GitHub",
	Long:  `Probe github.com over SSH to verify the currently loaded key authenticates.`,
	RunE:  runTestSSH,
}

func init() {
	rootCmd.AddCommand(testSSHCmd)
}

func runTestSSH(cmd *cobra.Command, args []string) error {
	fmt.Println("Testing SSH connection to github.com...")

	banner, err := agent.TestConnection("github.com", agent.DefaultTimeout)
	if err != nil {
		if banner != "" {
			fmt.Println(banner)
		}
		ui.Error("SSH connection failed")
		return err
	}

	if banner != "" {
		fmt.Println(banner)
	}
	ui.Success("SSH connection to GitHub successful")
	return nil
}
