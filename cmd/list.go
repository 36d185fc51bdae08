package cmd

import (
	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all configured profiles",
	Long:    `Display all configured GitHub profiles and highlight the active one.`,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	ui.PrintProfileList(store.Load())
	return nil
}
