package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ghswitch",
	Short: "Switch between multiple GitHub identities",
	Long: `ghswitch manages named GitHub profiles (name, email, SSH key,
preferences) and switches the global git configuration and SSH agent
between them.

Profiles are stored in ~/.ghswitch. Switching applies the profile's
identity to git config --global and loads its SSH key into the agent.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
