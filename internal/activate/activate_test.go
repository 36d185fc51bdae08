package activate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/byterings/ghswitch/internal/profile"
)

// fakeIdentity records identity writes and fails selected operations
type fakeIdentity struct {
	names    []string
	emails   []string
	branches []string
	signs    []bool

	failName   bool
	failEmail  bool
	failBranch bool
}

func (f *fakeIdentity) SetName(name string) error {
	if f.failName {
		return errors.New("boom")
	}
	f.names = append(f.names, name)
	return nil
}

func (f *fakeIdentity) SetEmail(email string) error {
	if f.failEmail {
		return errors.New("boom")
	}
	f.emails = append(f.emails, email)
	return nil
}

func (f *fakeIdentity) SetDefaultBranch(branch string) error {
	if f.failBranch {
		return errors.New("boom")
	}
	f.branches = append(f.branches, branch)
	return nil
}

func (f *fakeIdentity) SetSignCommits(enabled bool) error {
	f.signs = append(f.signs, enabled)
	return nil
}

// fakeAgent records key registrations and optionally simulates a dead agent
type fakeAgent struct {
	keys []string
	down bool
}

func (f *fakeAgent) AddKey(path string) error {
	if f.down {
		return errors.New("connection refused")
	}
	f.keys = append(f.keys, path)
	return nil
}

// tempKey creates a file standing in for a private key
func tempKey(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("fake key"), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func stepByName(t *testing.T, r *Report, step Step) StepResult {
	t.Helper()
	for _, s := range r.Steps {
		if s.Step == step {
			return s
		}
	}
	t.Fatalf("report has no step %q", step)
	return StepResult{}
}

func TestActivateAppliesAllFields(t *testing.T) {
	identity := &fakeIdentity{}
	agent := &fakeAgent{}
	key := tempKey(t)

	p := profile.Profile{
		Name:          "work",
		Username:      "alice",
		Email:         "a@x.com",
		DefaultBranch: "main",
		SSHKeyPath:    key,
	}

	report := New(identity, agent).Activate(p)
	if !report.OK() {
		t.Fatalf("expected success, failed steps: %+v", report.Failed())
	}

	if len(identity.names) != 1 || identity.names[0] != "alice" {
		t.Errorf("SetName calls = %v", identity.names)
	}
	if len(identity.emails) != 1 || identity.emails[0] != "a@x.com" {
		t.Errorf("SetEmail calls = %v", identity.emails)
	}
	if len(identity.branches) != 1 || identity.branches[0] != "main" {
		t.Errorf("SetDefaultBranch calls = %v", identity.branches)
	}
	if len(agent.keys) != 1 || agent.keys[0] != key {
		t.Errorf("AddKey calls = %v", agent.keys)
	}
}

func TestActivateSkipsEmptyFields(t *testing.T) {
	identity := &fakeIdentity{}
	agent := &fakeAgent{down: true}

	report := New(identity, agent).Activate(profile.Profile{Name: "blank"})
	if !report.OK() {
		t.Fatal("activation of an all-empty profile should succeed")
	}

	for _, s := range report.Steps {
		if !s.Skipped {
			t.Errorf("step %q should be skipped", s.Step)
		}
	}
	if len(identity.names)+len(identity.emails)+len(identity.branches) != 0 {
		t.Error("no identity writes expected for empty profile")
	}
}

func TestActivateEmptyKeyNeverTouchesAgent(t *testing.T) {
	// A dead agent must be unobservable when there is no key to register
	agent := &fakeAgent{down: true}
	report := New(&fakeIdentity{}, agent).Activate(profile.Profile{Username: "alice"})

	step := stepByName(t, report, StepSSHKey)
	if !step.Skipped || step.Err != nil {
		t.Errorf("expected skipped ssh-key step, got %+v", step)
	}
}

func TestActivateMissingKeyFileSkips(t *testing.T) {
	agent := &fakeAgent{}
	p := profile.Profile{SSHKeyPath: "/nonexistent/path/key"}

	report := New(&fakeIdentity{}, agent).Activate(p)
	step := stepByName(t, report, StepSSHKey)
	if !step.Skipped {
		t.Errorf("expected skip for missing key file, got %+v", step)
	}
	if len(agent.keys) != 0 {
		t.Error("agent should not be called for a missing key file")
	}
}

func TestActivateAgentDownIsSoftFailure(t *testing.T) {
	identity := &fakeIdentity{}
	agent := &fakeAgent{down: true}
	key := tempKey(t)

	p := profile.Profile{Username: "alice", Email: "a@x.com", DefaultBranch: "main", SSHKeyPath: key}
	report := New(identity, agent).Activate(p)

	if !report.OK() {
		t.Error("agent failure must not fail activation overall")
	}
	step := stepByName(t, report, StepSSHKey)
	if !errors.Is(step.Err, ErrAgentUnavailable) {
		t.Errorf("expected ErrAgentUnavailable, got %v", step.Err)
	}
}

func TestActivateContinuesAfterIdentityFailure(t *testing.T) {
	identity := &fakeIdentity{failName: true}
	agent := &fakeAgent{}
	key := tempKey(t)

	p := profile.Profile{Username: "alice", Email: "a@x.com", DefaultBranch: "main", SSHKeyPath: key}
	report := New(identity, agent).Activate(p)

	if report.OK() {
		t.Error("expected overall failure when an identity step fails")
	}

	// Later independent steps still run
	if len(identity.emails) != 1 {
		t.Error("email step should still run after name failure")
	}
	if len(identity.branches) != 1 {
		t.Error("branch step should still run after name failure")
	}
	if len(agent.keys) != 1 {
		t.Error("key registration should still run after name failure")
	}

	step := stepByName(t, report, StepName)
	if !errors.Is(step.Err, ErrIdentityWrite) {
		t.Errorf("expected ErrIdentityWrite, got %v", step.Err)
	}
}

func TestOverallSuccessIndependentOfAgent(t *testing.T) {
	key := tempKey(t)
	tests := []struct {
		name      string
		identity  *fakeIdentity
		agentDown bool
		wantOK    bool
	}{
		{"all good", &fakeIdentity{}, false, true},
		{"agent down only", &fakeIdentity{}, true, true},
		{"email fails, agent up", &fakeIdentity{failEmail: true}, false, false},
		{"branch fails, agent down", &fakeIdentity{failBranch: true}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile.Profile{Username: "a", Email: "e@x", DefaultBranch: "main", SSHKeyPath: key}
			report := New(tt.identity, &fakeAgent{down: tt.agentDown}).Activate(p)
			if report.OK() != tt.wantOK {
				t.Errorf("OK() = %v, want %v (failed: %+v)", report.OK(), tt.wantOK, report.Failed())
			}
		})
	}
}
