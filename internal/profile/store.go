// Package profile owns the durable set of named GitHub identities and the
// pointer to the currently active one. State lives in two JSON files in the
// per-user config directory; all operations are synchronous and assume a
// single process touches the files at a time.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/byterings/ghswitch/internal/platform"
)

// currentFile is the on-disk shape of current_profile.json
type currentFile struct {
	CurrentProfile *string `json:"current_profile"`
}

// Store persists profile sets under a config directory
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore creates a store rooted at the per-user config directory
func DefaultStore() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewStore(dir), nil
}

// Dir returns the config directory the store reads and writes
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) profilesPath() string {
	return filepath.Join(s.dir, ProfilesFileName)
}

func (s *Store) currentPath() string {
	return filepath.Join(s.dir, CurrentFileName)
}

// Load reads the persisted profile set. Missing files yield an empty set,
// and so does unparseable content: the store recovers from external
// corruption by starting over rather than refusing to run. Load never
// returns a parse error.
func (s *Store) Load() *Set {
	set := NewSet()

	if data, err := os.ReadFile(s.profilesPath()); err == nil {
		var profiles map[string]Profile
		if json.Unmarshal(data, &profiles) == nil && profiles != nil {
			set.Profiles = profiles
		}
	}

	if data, err := os.ReadFile(s.currentPath()); err == nil {
		var cur currentFile
		if json.Unmarshal(data, &cur) == nil && cur.CurrentProfile != nil {
			set.Current = *cur.CurrentProfile
		}
	}

	set.normalize()
	return set
}

// Save writes both files. Each file is replaced atomically (temp file plus
// rename), so a failed save leaves the previous on-disk state readable.
// Any filesystem failure wraps ErrWriteFailed.
func (s *Store) Save(set *Set) error {
	if err := platform.MkdirSecure(s.dir); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	profiles := set.Profiles
	if profiles == nil {
		profiles = map[string]Profile{}
	}
	if err := writeJSONAtomic(s.profilesPath(), profiles); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	cur := currentFile{}
	if set.Current != "" {
		cur.CurrentProfile = &set.Current
	}
	if err := writeJSONAtomic(s.currentPath(), cur); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	return nil
}

// Add inserts a new profile and persists the set
func (s *Store) Add(name string, p Profile) error {
	if name == "" {
		return ErrInvalidName
	}
	set := s.Load()
	if _, ok := set.Profiles[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	p.Name = name
	if p.DefaultBranch == "" {
		p.DefaultBranch = DefaultBranch
	}
	set.Profiles[name] = p
	return s.Save(set)
}

// Update replaces an existing profile and persists the set
func (s *Store) Update(name string, p Profile) error {
	if name == "" {
		return ErrInvalidName
	}
	set := s.Load()
	if _, ok := set.Profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	p.Name = name
	if p.DefaultBranch == "" {
		p.DefaultBranch = DefaultBranch
	}
	set.Profiles[name] = p
	return s.Save(set)
}

// Remove deletes a profile and persists the set. Removing the active
// profile clears the current pointer in the same persisted update. The
// on-disk state is untouched when the profile doesn't exist.
func (s *Store) Remove(name string) error {
	set := s.Load()
	if _, ok := set.Profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(set.Profiles, name)
	if set.Current == name {
		set.Current = ""
	}
	return s.Save(set)
}

// SetCurrent updates the active profile pointer and persists the set
func (s *Store) SetCurrent(name string) error {
	set := s.Load()
	if _, ok := set.Profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	set.Current = name
	return s.Save(set)
}

// Current returns the active profile, or false when none is set
func (s *Store) Current() (Profile, bool) {
	return s.Load().CurrentProfile()
}

// writeJSONAtomic writes v as indented JSON via a temp file in the same
// directory, then renames it over the destination.
func writeJSONAtomic(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	// CreateTemp already uses 0600, so the rename publishes a secure file
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
