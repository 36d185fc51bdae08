package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/kballard/go-shellquote"
)

// GetSSHDir returns the SSH directory path for the current platform
func GetSSHDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ssh"), nil
}

// MkdirSecure creates a directory with appropriate permissions for the platform
func MkdirSecure(path string) error {
	if runtime.GOOS == "windows" {
		// Windows doesn't use Unix permissions
		return os.MkdirAll(path, 0755)
	}
	// Unix/Linux: use restrictive permissions
	return os.MkdirAll(path, 0700)
}

// CreateFileSecure creates a file with appropriate permissions for the platform
func CreateFileSecure(path string, data []byte) error {
	if runtime.GOOS == "windows" {
		return os.WriteFile(path, data, 0644)
	}
	// Unix/Linux: use restrictive permissions
	return os.WriteFile(path, data, 0600)
}

// CheckFilePermissions checks if a file has secure permissions (Unix only)
// Returns true if permissions are OK, false if they need fixing
func CheckFilePermissions(path string) (bool, error) {
	if runtime.GOOS == "windows" {
		// Windows doesn't use Unix permissions, always return true
		return true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	// Check if group/other users can read/write (0077)
	if info.Mode()&0077 != 0 {
		return false, nil
	}
	return true, nil
}

// FixFilePermissions sets secure permissions on a file (Unix only)
func FixFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, 0600)
}

// GetPermissionFixCommand returns the appropriate command to fix file permissions
func GetPermissionFixCommand(path string) string {
	if runtime.GOOS == "windows" {
		return "File permissions are not applicable on Windows"
	}
	return fmt.Sprintf("chmod 600 %s", path)
}

// HasCommand checks if a command is available in PATH
func HasCommand(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ExpandTilde expands ~ to home directory in path
func ExpandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if len(path) == 1 {
		return home, nil
	}

	// Handle ~/rest/of/path
	if path[1] == os.PathSeparator || path[1] == '/' {
		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}

// OpenBrowser opens the given URL in the user's browser.
// $BROWSER takes precedence and may contain arguments (parsed shell-style);
// otherwise the platform's default opener is used.
func OpenBrowser(url string) error {
	if browser := os.Getenv("BROWSER"); browser != "" {
		words, err := shellquote.Split(browser)
		if err != nil {
			return fmt.Errorf("invalid BROWSER value: %w", err)
		}
		if len(words) > 0 {
			words = append(words, url)
			return exec.Command(words[0], words[1:]...).Start()
		}
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// GetPlatformName returns a user-friendly platform name
func GetPlatformName() string {
	switch runtime.GOOS {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}

// GetExampleSSHKeyPath returns an example SSH key path for the platform
func GetExampleSSHKeyPath(username string) string {
	sshDir, err := GetSSHDir()
	if err != nil {
		if runtime.GOOS == "windows" {
			return fmt.Sprintf("%%USERPROFILE%%\\.ssh\\ghswitch_%s", username)
		}
		return fmt.Sprintf("~/.ssh/ghswitch_%s", username)
	}
	return filepath.Join(sshDir, fmt.Sprintf("ghswitch_%s", username))
}
