// Package sshkey validates, generates and inspects the SSH keys that
// profiles point at.
package sshkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/crypto/ssh"

	"github.com/byterings/ghswitch/internal/platform"
)

// Validate checks that an SSH private key exists and is a regular file.
// It returns the tilde-expanded path. Insecure permissions are reported
// through the insecure flag rather than as an error.
func Validate(path string) (expanded string, insecure bool, err error) {
	expanded, err = platform.ExpandTilde(path)
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, fmt.Errorf("key file does not exist: %s", expanded)
		}
		return "", false, fmt.Errorf("failed to access key file: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("path is a directory, not a file: %s", expanded)
	}

	ok, err := platform.CheckFilePermissions(expanded)
	if err != nil {
		return "", false, err
	}
	return expanded, !ok, nil
}

// Generate creates a new Ed25519 key pair named after the profile.
// ssh-keygen is preferred; a built-in generator is the fallback.
func Generate(name string) (privateKeyPath, publicKeyPath string, err error) {
	if platform.HasCommand("ssh-keygen") {
		return generateSystem(name)
	}
	return generateBuiltin(name)
}

func keyPaths(name string) (string, string, error) {
	sshDir, err := platform.GetSSHDir()
	if err != nil {
		return "", "", err
	}
	if err := platform.MkdirSecure(sshDir); err != nil {
		return "", "", fmt.Errorf("failed to create .ssh directory: %w", err)
	}
	private := filepath.Join(sshDir, fmt.Sprintf("ghswitch_%s", name))
	return private, private + ".pub", nil
}

// generateSystem uses system ssh-keygen for reliable key generation
func generateSystem(name string) (string, string, error) {
	privateKeyPath, publicKeyPath, err := keyPaths(name)
	if err != nil {
		return "", "", err
	}
	if _, err := os.Stat(privateKeyPath); err == nil {
		return "", "", fmt.Errorf("key already exists at %s", privateKeyPath)
	}

	cmd := exec.Command("ssh-keygen", "-t", "ed25519", "-f", privateKeyPath, "-N", "", "-C", name+"@ghswitch")
	if err := cmd.Run(); err != nil {
		return "", "", fmt.Errorf("failed to generate SSH key: %w", err)
	}
	return privateKeyPath, publicKeyPath, nil
}

// generateBuiltin creates the key pair without external tooling
func generateBuiltin(name string) (string, string, error) {
	privateKeyPath, publicKeyPath, err := keyPaths(name)
	if err != nil {
		return "", "", err
	}
	if _, err := os.Stat(privateKeyPath); err == nil {
		return "", "", fmt.Errorf("key already exists at %s", privateKeyPath)
	}

	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate key: %w", err)
	}

	block, err := ssh.MarshalPrivateKey(privKey, name+"@ghswitch")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal private key: %w", err)
	}
	if err := platform.CreateFileSecure(privateKeyPath, pem.EncodeToMemory(block)); err != nil {
		return "", "", fmt.Errorf("failed to write private key: %w", err)
	}

	sshPubKey, err := ssh.NewPublicKey(pubKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to convert public key: %w", err)
	}
	if err := os.WriteFile(publicKeyPath, ssh.MarshalAuthorizedKey(sshPubKey), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write public key: %w", err)
	}

	return privateKeyPath, publicKeyPath, nil
}

// PublicKeyContent reads the public key next to a private key
func PublicKeyContent(privateKeyPath string) (string, error) {
	content, err := os.ReadFile(privateKeyPath + ".pub")
	if err != nil {
		return "", fmt.Errorf("failed to read public key: %w", err)
	}
	return string(content), nil
}

// Fingerprint returns the SHA256 fingerprint of the public key next to a
// private key
func Fingerprint(privateKeyPath string) (string, error) {
	content, err := os.ReadFile(privateKeyPath + ".pub")
	if err != nil {
		return "", fmt.Errorf("failed to read public key: %w", err)
	}
	pub, _, _, _, err := ssh.ParseAuthorizedKey(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse public key: %w", err)
	}
	return ssh.FingerprintSHA256(pub), nil
}
