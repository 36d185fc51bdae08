package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/sshkey"
	"github.com/byterings/ghswitch/internal/ui"
)

var (
	editFlagUsername string
	editFlagEmail    string
	editFlagBranch   string
	editFlagSSHKey   string
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit an existing profile",
	Long:  `Update fields of an existing profile. Without flags, all fields are prompted interactively.`,
	Args:  cobra.ExactArgs(1),
	Example: `  ghswitch edit work
  ghswitch edit work --email alice@newcorp.com`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editFlagUsername, "username", "", "GitHub username")
	editCmd.Flags().StringVar(&editFlagEmail, "email", "", "Email address for Git commits")
	editCmd.Flags().StringVar(&editFlagBranch, "branch", "", "Default branch (init.defaultBranch)")
	editCmd.Flags().StringVar(&editFlagSSHKey, "ssh-key", "", "Path to an SSH private key")
}

func runEdit(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}

	p, ok := store.Load().Get(name)
	if !ok {
		return fmt.Errorf("profile '%s' not found", name)
	}

	if cmd.Flags().NFlag() == 0 {
		// Interactive mode, with current values as defaults
		updated, err := ui.PromptProfileInfo(p)
		if err != nil {
			return fmt.Errorf("failed to read profile info: %w", err)
		}
		updated.Name = name
		updated.SSHKeyPath = p.SSHKeyPath
		p = updated
	} else {
		if editFlagUsername != "" {
			p.Username = editFlagUsername
		}
		if editFlagEmail != "" {
			p.Email = editFlagEmail
		}
		if editFlagBranch != "" {
			p.DefaultBranch = editFlagBranch
		}
		if editFlagSSHKey != "" {
			expanded, insecure, err := sshkey.Validate(editFlagSSHKey)
			if err != nil {
				return err
			}
			if insecure {
				ui.Warning(fmt.Sprintf("Key file has loose permissions. Run: chmod 600 %s", expanded))
			}
			p.SSHKeyPath = expanded
		}
	}

	if err := store.Update(name, p); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	ui.Success(fmt.Sprintf("Profile '%s' updated", name))

	if cur, ok := store.Current(); ok && cur.Name == name {
		ui.Info(fmt.Sprintf("This profile is active; re-apply with: ghswitch use %s", name))
	}
	return nil
}
