// Package git wraps the global git configuration as an opaque external
// collaborator: values go in and out through `git config --global`.
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// ConfigWriter applies identity settings to the global git config.
// The zero value is ready to use.
type ConfigWriter struct{}

// SetName sets the global user.name
func (ConfigWriter) SetName(name string) error {
	return setGlobal("user.name", name)
}

// SetEmail sets the global user.email
func (ConfigWriter) SetEmail(email string) error {
	return setGlobal("user.email", email)
}

// SetDefaultBranch sets the global init.defaultBranch
func (ConfigWriter) SetDefaultBranch(branch string) error {
	return setGlobal("init.defaultBranch", branch)
}

// SetSignCommits sets the global commit.gpgsign flag
func (ConfigWriter) SetSignCommits(enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return setGlobal("commit.gpgsign", value)
}

// GlobalIdentity returns the current global user.name and user.email.
// Unset keys come back as empty strings, not errors.
func GlobalIdentity() (name, email string, err error) {
	name, err = getGlobal("user.name")
	if err != nil {
		return "", "", fmt.Errorf("failed to get git user.name: %w", err)
	}

	email, err = getGlobal("user.email")
	if err != nil {
		return "", "", fmt.Errorf("failed to get git user.email: %w", err)
	}

	return name, email, nil
}

// GlobalValue returns a single global git config value ("" when unset)
func GlobalValue(key string) (string, error) {
	return getGlobal(key)
}

// setGlobal runs git config --global to set a value
func setGlobal(key, value string) error {
	cmd := exec.Command("git", "config", "--global", key, value)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git config %s failed: %s: %w", key, strings.TrimSpace(string(output)), err)
	}
	return nil
}

// getGlobal gets a git config value
func getGlobal(key string) (string, error) {
	cmd := exec.Command("git", "config", "--global", "--get", key)
	output, err := cmd.Output()
	if err != nil {
		// Exit code 1 means the key doesn't exist
		if exitError, ok := err.(*exec.ExitError); ok && exitError.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// IsInstalled checks if git is installed
func IsInstalled() bool {
	cmd := exec.Command("git", "--version")
	return cmd.Run() == nil
}
