package cmd

import (
	"fmt"

	"github.com/byterings/ghswitch/internal/activate"
	"github.com/byterings/ghswitch/internal/agent"
	"github.com/byterings/ghswitch/internal/git"
	"github.com/byterings/ghswitch/internal/platform"
	"github.com/byterings/ghswitch/internal/profile"
)

// openStore creates the profile store and makes sure its directory exists
func openStore() (*profile.Store, error) {
	store, err := profile.DefaultStore()
	if err != nil {
		return nil, err
	}
	if err := platform.MkdirSecure(store.Dir()); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return store, nil
}

// newSwitcher wires the store to the real git config and ssh-agent
func newSwitcher(store *profile.Store) *activate.Switcher {
	return &activate.Switcher{
		Store:     store,
		Activator: activate.New(git.ConfigWriter{}, &agent.SSHAgent{}),
	}
}
