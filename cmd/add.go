package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/platform"
	"github.com/byterings/ghswitch/internal/profile"
	"github.com/byterings/ghswitch/internal/sshkey"
	"github.com/byterings/ghswitch/internal/ui"
)

var (
	addFlagUsername string
	addFlagEmail    string
	addFlagBranch   string
	addFlagSSHKey   string
	addFlagAutoPush bool
	addFlagSign     bool
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new GitHub profile",
	Long:  `Add a new named GitHub profile with username, email, default branch and SSH key.`,
	Args:  cobra.MaximumNArgs(1),
	Example: `  # Interactive mode
  ghswitch add

  # Using flags
  ghswitch add work --username alice-work --email alice@work.com
  ghswitch add work --username alice-work --email alice@work.com --ssh-key ~/.ssh/work`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addFlagUsername, "username", "", "GitHub username")
	addCmd.Flags().StringVar(&addFlagEmail, "email", "", "Email address for Git commits")
	addCmd.Flags().StringVar(&addFlagBranch, "branch", "", "Default branch (init.defaultBranch)")
	addCmd.Flags().StringVar(&addFlagSSHKey, "ssh-key", "", "Path to an existing SSH private key, or 'skip'")
	addCmd.Flags().BoolVar(&addFlagAutoPush, "auto-push", false, "Auto-push after commit")
	addCmd.Flags().BoolVar(&addFlagSign, "sign-commits", false, "Sign commits")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	var p profile.Profile

	if len(args) == 1 && (addFlagUsername != "" || addFlagEmail != "") {
		// Flag mode
		p = profile.Profile{
			Name:          args[0],
			Username:      addFlagUsername,
			Email:         addFlagEmail,
			DefaultBranch: addFlagBranch,
			AutoPush:      addFlagAutoPush,
			SignCommits:   addFlagSign,
		}
		if err := resolveSSHKeyFlag(&p); err != nil {
			return err
		}
	} else {
		// Interactive mode
		fmt.Println("Adding a new profile")
		fmt.Println()

		defaults := profile.Profile{}
		if len(args) == 1 {
			defaults.Name = args[0]
		}
		p, err = ui.PromptProfileInfo(defaults)
		if err != nil {
			return fmt.Errorf("failed to read profile info: %w", err)
		}
		if err := promptSSHKey(&p); err != nil {
			return err
		}
	}

	if err := store.Add(p.Name, p); err != nil {
		return fmt.Errorf("failed to add profile: %w", err)
	}

	fmt.Println()
	ui.Success(fmt.Sprintf("Profile '%s' added", p.Name))
	fmt.Printf("\nNext: ghswitch use %s\n", p.Name)
	return nil
}

// resolveSSHKeyFlag validates the --ssh-key flag value
func resolveSSHKeyFlag(p *profile.Profile) error {
	switch addFlagSSHKey {
	case "", "skip":
		return nil
	default:
		expanded, insecure, err := sshkey.Validate(addFlagSSHKey)
		if err != nil {
			return err
		}
		if insecure {
			ui.Warning(fmt.Sprintf("Key file has loose permissions. Run: chmod 600 %s", expanded))
		}
		p.SSHKeyPath = expanded
		return nil
	}
}

// promptSSHKey runs the interactive SSH key setup flow
func promptSSHKey(p *profile.Profile) error {
	choice, err := ui.PromptSSHKeyOption()
	if err != nil {
		return fmt.Errorf("failed to read SSH key option: %w", err)
	}

	switch choice {
	case ui.SSHKeyGenerate:
		privateKey, _, err := sshkey.Generate(keyNameFor(p))
		if err != nil {
			return fmt.Errorf("failed to generate SSH key: %w", err)
		}
		p.SSHKeyPath = privateKey
		ui.Success(fmt.Sprintf("SSH key generated: %s", privateKey))

		if pubKey, err := sshkey.PublicKeyContent(privateKey); err == nil {
			fmt.Println("\n" + strings.Repeat("-", 70))
			fmt.Println("Add this public key to your GitHub account:")
			fmt.Println("https://github.com/settings/keys")
			fmt.Println(strings.Repeat("-", 70))
			fmt.Print(pubKey)
			fmt.Println(strings.Repeat("-", 70))
		}

	case ui.SSHKeyImport:
		keyPath, err := ui.PromptExistingKeyPath()
		if err != nil {
			return fmt.Errorf("failed to read key path: %w", err)
		}
		expanded, insecure, err := sshkey.Validate(keyPath)
		if err != nil {
			return err
		}
		if insecure {
			ui.Warning(fmt.Sprintf("Key file has loose permissions. Run: chmod 600 %s", expanded))
		}
		p.SSHKeyPath = expanded
		ui.Success(fmt.Sprintf("Using existing key: %s", expanded))

	default:
		ui.Info("SSH key setup skipped")
		example := platform.GetExampleSSHKeyPath(keyNameFor(p))
		fmt.Println("\nTo add an SSH key later:")
		fmt.Printf("  1. Generate one: ssh-keygen -t ed25519 -f %s\n", example)
		fmt.Printf("  2. Attach it: ghswitch edit %s --ssh-key %s\n", p.Name, example)
	}

	return nil
}

// keyNameFor picks the name a profile's generated key file is derived from
func keyNameFor(p *profile.Profile) string {
	if p.Username != "" {
		return p.Username
	}
	return p.Name
}
