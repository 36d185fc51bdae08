package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/byterings/ghswitch/internal/profile"
	"github.com/byterings/ghswitch/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ghswitch configuration",
	Long:  `Create the configuration directory. This is optional - ghswitch initializes itself on first use.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(store.Dir(), profile.ProfilesFileName)); err == nil {
		fmt.Printf("ghswitch is already initialized at: %s\n", store.Dir())
		return nil
	}

	if err := store.Save(profile.NewSet()); err != nil {
		return fmt.Errorf("failed to write initial config: %w", err)
	}

	ui.Success(fmt.Sprintf("ghswitch initialized at: %s", store.Dir()))
	fmt.Println("\nNext: ghswitch add")
	return nil
}
