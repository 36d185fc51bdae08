// Package agent talks to the ambient SSH agent and to GitHub's SSH endpoint
// through the system ssh tooling. Every call is bounded: an agent that never
// answers reads the same as one that isn't running.
package agent

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds every agent interaction
const DefaultTimeout = 10 * time.Second

// ErrUnavailable indicates the SSH agent could not be reached in time
var ErrUnavailable = errors.New("ssh agent unavailable")

// SSHAgent registers keys with the system ssh-agent via ssh-add
type SSHAgent struct {
	// Timeout bounds each ssh-add invocation; DefaultTimeout when zero
	Timeout time.Duration
}

func (a *SSHAgent) timeout() time.Duration {
	if a.Timeout > 0 {
		return a.Timeout
	}
	return DefaultTimeout
}

// AddKey registers the private key at path with the agent
func (a *SSHAgent) AddKey(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, "ssh-add", path)
	output, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: ssh-add timed out", ErrUnavailable)
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, strings.TrimSpace(string(output)))
	}
	return nil
}

// ListKeys returns the raw ssh-add -l listing. An empty string with no
// error means the agent is running but holds no keys.
func (a *SSHAgent) ListKeys() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, "ssh-add", "-l")
	output, err := cmd.Output()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%w: ssh-add timed out", ErrUnavailable)
	}
	if err != nil {
		// Exit code 1 means no identities, which is not a failure
		if exitError, ok := err.(*exec.ExitError); ok && exitError.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// HasKey reports whether the agent listing mentions the given key path
func (a *SSHAgent) HasKey(path string) bool {
	listing, err := a.ListKeys()
	if err != nil {
		return false
	}
	return strings.Contains(listing, path)
}

// TestConnection probes the authenticated SSH endpoint of the given host
// (e.g. github.com). GitHub always closes the connection with a non-zero
// exit code, so success is judged by the authentication banner.
func TestConnection(host string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ssh", "-T", "-o", "StrictHostKeyChecking=accept-new", "git@"+host)
	output, err := cmd.CombinedOutput()
	banner := strings.TrimSpace(string(output))
	if ctx.Err() == context.DeadlineExceeded {
		return banner, fmt.Errorf("ssh connection to %s timed out", host)
	}
	if strings.Contains(banner, "successfully authenticated") {
		return banner, nil
	}
	if err != nil {
		return banner, fmt.Errorf("ssh connection to %s failed: %w", host, err)
	}
	return banner, nil
}
