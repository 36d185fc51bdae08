// Package activate applies a profile to ambient global state: the git
// identity configuration and the SSH agent. The ambient mechanisms are
// injected as capability interfaces so tests can record calls instead of
// mutating real global state.
package activate

import (
	"errors"
	"fmt"
	"os"

	"github.com/byterings/ghswitch/internal/platform"
	"github.com/byterings/ghswitch/internal/profile"
)

// Sentinel errors that can be checked with errors.Is()
var (
	// ErrIdentityWrite indicates a git identity setting could not be applied
	ErrIdentityWrite = errors.New("identity write failed")

	// ErrAgentUnavailable indicates the SSH agent could not be reached;
	// this never fails an activation overall
	ErrAgentUnavailable = errors.New("ssh agent unavailable")
)

// IdentityWriter applies identity settings to the ambient global
// configuration
type IdentityWriter interface {
	SetName(name string) error
	SetEmail(email string) error
	SetDefaultBranch(branch string) error
	SetSignCommits(enabled bool) error
}

// KeyAgent registers private keys with the ambient SSH agent
type KeyAgent interface {
	AddKey(path string) error
}

// Step identifies one activation sub-step
type Step string

const (
	StepName          Step = "user.name"
	StepEmail         Step = "user.email"
	StepDefaultBranch Step = "init.defaultBranch"
	StepSignCommits   Step = "commit.gpgsign"
	StepSSHKey        Step = "ssh-key"
)

// StepResult records the outcome of a single activation step
type StepResult struct {
	Step    Step
	Skipped bool  // the profile field was empty, nothing to apply
	Err     error // nil on success or skip
}

// Report aggregates the per-step outcomes of one activation
type Report struct {
	Steps []StepResult
}

// OK reports overall success: every identity step succeeded. SSH key
// registration is best-effort and never affects the result.
func (r *Report) OK() bool {
	for _, s := range r.Steps {
		if s.Step == StepSSHKey {
			continue
		}
		if s.Err != nil {
			return false
		}
	}
	return true
}

// Failed returns the steps that ended in an error
func (r *Report) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Activator applies profiles to the ambient environment
type Activator struct {
	identity IdentityWriter
	agent    KeyAgent
}

// New creates an Activator using the given ambient capabilities
func New(identity IdentityWriter, agent KeyAgent) *Activator {
	return &Activator{identity: identity, agent: agent}
}

// Activate applies the profile's settings step by step. Steps run in a
// fixed order and later steps still run after earlier failures, since
// each is an independent external effect. Partially applied settings are
// not rolled back.
func (a *Activator) Activate(p profile.Profile) *Report {
	report := &Report{}

	report.add(StepName, p.Username != "", func() error {
		return a.identity.SetName(p.Username)
	})
	report.add(StepEmail, p.Email != "", func() error {
		return a.identity.SetEmail(p.Email)
	})
	report.add(StepDefaultBranch, p.DefaultBranch != "", func() error {
		return a.identity.SetDefaultBranch(p.DefaultBranch)
	})
	report.add(StepSignCommits, p.SignCommits, func() error {
		return a.identity.SetSignCommits(true)
	})

	a.registerKey(report, p.SSHKeyPath)

	return report
}

// add runs one identity step and records its outcome
func (r *Report) add(step Step, wanted bool, apply func() error) {
	if !wanted {
		r.Steps = append(r.Steps, StepResult{Step: step, Skipped: true})
		return
	}
	var err error
	if applyErr := apply(); applyErr != nil {
		err = fmt.Errorf("%w: %v", ErrIdentityWrite, applyErr)
	}
	r.Steps = append(r.Steps, StepResult{Step: step, Err: err})
}

// registerKey loads the profile's key into the agent. An empty path or a
// path that doesn't exist on disk skips the step entirely; an unreachable
// agent is a soft failure.
func (a *Activator) registerKey(report *Report, keyPath string) {
	if keyPath == "" {
		report.Steps = append(report.Steps, StepResult{Step: StepSSHKey, Skipped: true})
		return
	}

	expanded, err := platform.ExpandTilde(keyPath)
	if err == nil {
		keyPath = expanded
	}
	if _, statErr := os.Stat(keyPath); statErr != nil {
		report.Steps = append(report.Steps, StepResult{Step: StepSSHKey, Skipped: true})
		return
	}

	var stepErr error
	if addErr := a.agent.AddKey(keyPath); addErr != nil {
		stepErr = fmt.Errorf("%w: %v", ErrAgentUnavailable, addErr)
	}
	report.Steps = append(report.Steps, StepResult{Step: StepSSHKey, Err: stepErr})
}
