package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() failed: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no tilde", "/etc/hosts", "/etc/hosts"},
		{"bare tilde", "~", home},
		{"tilde slash", "~/.ssh/id_ed25519", filepath.Join(home, ".ssh", "id_ed25519")},
		{"tilde user untouched", "~other/key", "~other/key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandTilde(tt.in)
			if err != nil {
				t.Fatalf("ExpandTilde(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExpandTilde(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Unix permissions not applicable on Windows")
	}

	dir := t.TempDir()

	secure := filepath.Join(dir, "secure")
	if err := os.WriteFile(secure, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	ok, err := CheckFilePermissions(secure)
	if err != nil {
		t.Fatalf("CheckFilePermissions failed: %v", err)
	}
	if !ok {
		t.Error("expected 0600 file to pass permission check")
	}

	loose := filepath.Join(dir, "loose")
	if err := os.WriteFile(loose, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	ok, err = CheckFilePermissions(loose)
	if err != nil {
		t.Fatalf("CheckFilePermissions failed: %v", err)
	}
	if ok {
		t.Error("expected 0644 file to fail permission check")
	}

	if err := FixFilePermissions(loose); err != nil {
		t.Fatalf("FixFilePermissions failed: %v", err)
	}
	ok, _ = CheckFilePermissions(loose)
	if !ok {
		t.Error("expected fixed file to pass permission check")
	}
}
