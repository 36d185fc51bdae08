package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/agent"
	"github.com/byterings/ghswitch/internal/git"
	"github.com/byterings/ghswitch/internal/platform"
	"github.com/byterings/ghswitch/internal/profile"
	"github.com/byterings/ghswitch/internal/ui"
)

var (
	doctorNetwork bool
	doctorFix     bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Check the ghswitch configuration and diagnose common issues.

Runs checks on:
- Config file validity
- SSH key existence and permissions
- SSH agent status
- Git config alignment with the active profile

Examples:
  ghswitch doctor              # Run basic diagnostics
  ghswitch doctor --network    # Include GitHub connectivity test
  ghswitch doctor --fix        # Auto-fix key permission issues`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVarP(&doctorNetwork, "network", "n", false, "Test GitHub SSH connectivity")
	doctorCmd.Flags().BoolVarP(&doctorFix, "fix", "f", false, "Auto-fix permission issues")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Printf("Checking ghswitch configuration (%s)...\n", platform.GetPlatformName())
	fmt.Println()

	warnings := 0

	store, err := openStore()
	if err != nil {
		return err
	}
	set := store.Load()

	// Config
	fmt.Println("Config")
	fmt.Println("──────")
	if _, err := os.Stat(filepath.Join(store.Dir(), profile.ProfilesFileName)); err != nil {
		ui.Info("No profiles file yet (created on first add)")
	} else {
		ui.Success(fmt.Sprintf("Config directory: %s", store.Dir()))
	}
	ui.Success(fmt.Sprintf("%d profile(s) configured", len(set.Profiles)))
	if set.Current != "" {
		ui.Success(fmt.Sprintf("Active profile: %s", set.Current))
	} else {
		ui.Info("No active profile")
	}

	// Git
	fmt.Println()
	fmt.Println("Git")
	fmt.Println("───")
	if !git.IsInstalled() {
		ui.Error("git not found in PATH")
		warnings++
	} else {
		ui.Success("git is installed")
		if p, ok := set.CurrentProfile(); ok {
			name, email, err := git.GlobalIdentity()
			if err != nil {
				ui.Warning(fmt.Sprintf("Could not read git config: %v", err))
				warnings++
			} else if p.Email != "" && email != p.Email {
				ui.Warning(fmt.Sprintf("git identity is %s <%s> but active profile expects <%s>", name, email, p.Email))
				ui.Info(fmt.Sprintf("Fix with: ghswitch use %s", p.Name))
				warnings++
			} else {
				ui.Success("git identity matches the active profile")
			}
		}
	}

	// SSH keys
	fmt.Println()
	fmt.Println("SSH keys")
	fmt.Println("────────")
	for _, name := range set.Names() {
		p := set.Profiles[name]
		if p.SSHKeyPath == "" {
			continue
		}
		keyPath, err := platform.ExpandTilde(p.SSHKeyPath)
		if err != nil {
			keyPath = p.SSHKeyPath
		}
		if _, err := os.Stat(keyPath); err != nil {
			ui.Warning(fmt.Sprintf("%s: key file missing: %s", name, keyPath))
			warnings++
			continue
		}
		ok, err := platform.CheckFilePermissions(keyPath)
		if err == nil && !ok {
			if doctorFix {
				if err := platform.FixFilePermissions(keyPath); err != nil {
					ui.Warning(fmt.Sprintf("%s: could not fix permissions: %v", name, err))
					warnings++
				} else {
					ui.Success(fmt.Sprintf("%s: fixed key permissions", name))
				}
			} else {
				ui.Warning(fmt.Sprintf("%s: insecure key permissions. Run: %s", name, platform.GetPermissionFixCommand(keyPath)))
				warnings++
			}
			continue
		}
		ui.Success(fmt.Sprintf("%s: %s", name, keyPath))
	}

	// SSH agent
	fmt.Println()
	fmt.Println("SSH agent")
	fmt.Println("─────────")
	sshAgent := &agent.SSHAgent{}
	listing, err := sshAgent.ListKeys()
	switch {
	case err != nil:
		ui.Warning("SSH agent is not reachable")
		warnings++
	case listing == "":
		ui.Info("SSH agent is running but holds no keys")
	default:
		ui.Success("SSH agent is running with keys loaded")
	}

	if doctorNetwork {
		fmt.Println()
		fmt.Println("Network")
		fmt.Println("───────")
		if _, err := agent.TestConnection("github.com", agent.DefaultTimeout); err != nil {
			ui.Warning(fmt.Sprintf("GitHub SSH connectivity failed: %v", err))
			warnings++
		} else {
			ui.Success("GitHub SSH authentication works")
		}
	}

	fmt.Println()
	if warnings == 0 {
		ui.Success("Everything looks good")
	} else {
		ui.Warning(fmt.Sprintf("%d issue(s) found", warnings))
	}
	return nil
}
