package ui

import (
	"fmt"
	"io"

	"github.com/mattn/go-colorable"
	"github.com/mgutz/ansi"

	"github.com/byterings/ghswitch/internal/profile"
)

var out io.Writer = colorable.NewColorableStdout()

var (
	green  = ansi.ColorFunc("green")
	red    = ansi.ColorFunc("red")
	yellow = ansi.ColorFunc("yellow")
	cyan   = ansi.ColorFunc("cyan")
)

// Success prints a success message with checkmark
func Success(message string) {
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// Error prints an error message
func Error(message string) {
	fmt.Fprintf(out, "%s %s\n", red("✗"), message)
}

// Info prints an info message
func Info(message string) {
	fmt.Fprintf(out, "%s %s\n", cyan("ℹ"), message)
}

// Warning prints a warning message
func Warning(message string) {
	fmt.Fprintf(out, "%s %s\n", yellow("⚠"), message)
}

// PrintProfileList prints all profiles and highlights the active one
func PrintProfileList(set *profile.Set) {
	if len(set.Profiles) == 0 {
		fmt.Fprintln(out, "No profiles configured yet.")
		fmt.Fprintln(out, "\nAdd your first profile with: ghswitch add")
		return
	}

	fmt.Fprintln(out, "\nConfigured profiles:")
	fmt.Fprintln(out)

	for _, name := range set.Names() {
		p := set.Profiles[name]
		indicator := " "
		if name == set.Current {
			indicator = green("→")
		}
		fmt.Fprintf(out, "%s %-20s %-20s %s\n", indicator, name, p.Username, p.Email)
	}

	fmt.Fprintln(out)
	if set.Current == "" {
		fmt.Fprintln(out, "No active profile. Use 'ghswitch use <name>' to activate one.")
	}
}

// PrintProfile prints one profile in detail
func PrintProfile(p profile.Profile, active bool) {
	name := p.Name
	if active {
		name += " " + green("(active)")
	}
	fmt.Fprintf(out, "Profile: %s\n", name)
	if p.Username != "" {
		fmt.Fprintf(out, "  GitHub:   %s\n", p.Username)
	}
	if p.Email != "" {
		fmt.Fprintf(out, "  Email:    %s\n", p.Email)
	}
	fmt.Fprintf(out, "  Branch:   %s\n", p.DefaultBranch)
	if p.SSHKeyPath != "" {
		fmt.Fprintf(out, "  SSH Key:  %s\n", p.SSHKeyPath)
	}
	if p.AutoPush {
		fmt.Fprintln(out, "  Auto-push: on")
	}
	if p.SignCommits {
		fmt.Fprintln(out, "  Signed commits: on")
	}
}
