package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Format selects the on-disk encoding for export/import files
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat validates a user-supplied format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected json or toml)", name)
	}
}

// FormatForPath picks a format from the file extension, defaulting to JSON
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// exportJSON matches the layout of the combined export file: the full
// profile mapping plus the current pointer (null when none is active).
type exportJSON struct {
	Profiles       map[string]Profile `json:"profiles"`
	CurrentProfile *string            `json:"current_profile"`
}

type exportTOML struct {
	Profiles       map[string]Profile `toml:"profiles"`
	CurrentProfile string             `toml:"current_profile,omitempty"`
}

// Export writes the whole persisted set to a single file at path
func (s *Store) Export(path string, format Format) error {
	set := s.Load()

	var data []byte
	var err error
	switch format {
	case FormatTOML:
		var buf strings.Builder
		enc := toml.NewEncoder(&buf)
		err = enc.Encode(exportTOML{Profiles: set.Profiles, CurrentProfile: set.Current})
		data = []byte(buf.String())
	default:
		out := exportJSON{Profiles: set.Profiles}
		if set.Current != "" {
			out.CurrentProfile = &set.Current
		}
		data, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if format != FormatTOML {
		data = append(data, '\n')
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Import replaces the persisted set with the contents of the file at path.
// The file must carry a profiles table; anything else is rejected with
// ErrInvalidFormat and existing state stays untouched.
func (s *Store) Import(path string, format Format) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	set := NewSet()
	switch format {
	case FormatTOML:
		var in exportTOML
		md, err := toml.Decode(string(data), &in)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if !md.IsDefined("profiles") {
			return fmt.Errorf("%w: missing profiles table", ErrInvalidFormat)
		}
		set.Profiles = in.Profiles
		set.Current = in.CurrentProfile
	default:
		var in struct {
			Profiles       *map[string]Profile `json:"profiles"`
			CurrentProfile *string             `json:"current_profile"`
		}
		if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if in.Profiles == nil {
			return fmt.Errorf("%w: missing profiles key", ErrInvalidFormat)
		}
		set.Profiles = *in.Profiles
		if in.CurrentProfile != nil {
			set.Current = *in.CurrentProfile
		}
	}

	set.normalize()
	return s.Save(set)
}
