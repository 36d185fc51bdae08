package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/platform"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the active profile's GitHub page",
	RunE:  runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	url := "https://github.com"
	if p, ok := store.Current(); ok && p.Username != "" {
		url = fmt.Sprintf("https://github.com/%s", p.Username)
	}

	fmt.Printf("Opening %s\n", url)
	return platform.OpenBrowser(url)
}
