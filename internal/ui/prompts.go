package ui

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"

	"github.com/byterings/ghswitch/internal/profile"
)

// SSH key setup choices offered when adding a profile interactively
const (
	SSHKeyGenerate = "Generate new key pair (Recommended)"
	SSHKeyImport   = "Import existing key"
	SSHKeySkip     = "Skip for now (add manually later)"
)

// PromptProfileInfo prompts for the core profile fields interactively.
// Existing values are offered as defaults when editing.
func PromptProfileInfo(defaults profile.Profile) (profile.Profile, error) {
	p := defaults

	namePrompt := &survey.Input{
		Message: "Profile name (e.g., work, personal):",
		Default: defaults.Name,
		Help:    "Short unique name for switching - use lowercase, no spaces",
	}
	if err := survey.AskOne(namePrompt, &p.Name, survey.WithValidator(survey.Required)); err != nil {
		return profile.Profile{}, err
	}

	usernamePrompt := &survey.Input{
		Message: "GitHub username:",
		Default: defaults.Username,
		Help:    "Your GitHub account name (e.g., johndoe)",
	}
	if err := survey.AskOne(usernamePrompt, &p.Username); err != nil {
		return profile.Profile{}, err
	}

	emailPrompt := &survey.Input{
		Message: "Email address:",
		Default: defaults.Email,
		Help:    "Your email for Git commits (e.g., john@example.com)",
	}
	emailValidator := func(val interface{}) error {
		if str, ok := val.(string); ok && str != "" {
			if !isValidEmail(str) {
				return fmt.Errorf("invalid email format")
			}
		}
		return nil
	}
	if err := survey.AskOne(emailPrompt, &p.Email, survey.WithValidator(emailValidator)); err != nil {
		return profile.Profile{}, err
	}

	branchDefault := defaults.DefaultBranch
	if branchDefault == "" {
		branchDefault = profile.DefaultBranch
	}
	branchPrompt := &survey.Input{
		Message: "Default branch:",
		Default: branchDefault,
		Help:    "Used as init.defaultBranch when this profile is active",
	}
	if err := survey.AskOne(branchPrompt, &p.DefaultBranch); err != nil {
		return profile.Profile{}, err
	}

	autoPushPrompt := &survey.Confirm{
		Message: "Auto-push after commit?",
		Default: defaults.AutoPush,
	}
	if err := survey.AskOne(autoPushPrompt, &p.AutoPush); err != nil {
		return profile.Profile{}, err
	}

	signPrompt := &survey.Confirm{
		Message: "Sign commits?",
		Default: defaults.SignCommits,
	}
	if err := survey.AskOne(signPrompt, &p.SignCommits); err != nil {
		return profile.Profile{}, err
	}

	return p, nil
}

// PromptSSHKeyOption prompts for the SSH key setup option
func PromptSSHKeyOption() (string, error) {
	var choice string
	prompt := &survey.Select{
		Message: "How do you want to set up the SSH key?",
		Options: []string{SSHKeyGenerate, SSHKeyImport, SSHKeySkip},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

// PromptExistingKeyPath prompts for an existing SSH key path
func PromptExistingKeyPath() (string, error) {
	var path string
	prompt := &survey.Input{
		Message: "Path to existing SSH private key:",
		Help:    "Full path to your private key file (e.g., ~/.ssh/id_ed25519)",
	}
	if err := survey.AskOne(prompt, &path, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return path, nil
}

// PromptConfirmation prompts for yes/no confirmation
func PromptConfirmation(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// isValidEmail checks if email format is valid
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}
