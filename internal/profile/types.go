package profile

import "sort"

// DefaultBranch is the branch name used when a profile doesn't set one.
const DefaultBranch = "main"

// Profile represents a named GitHub identity
type Profile struct {
	Name          string `json:"name" toml:"name"`
	Username      string `json:"username" toml:"username"`             // GitHub account name
	Email         string `json:"email" toml:"email"`
	DefaultBranch string `json:"default_branch" toml:"default_branch"` // init.defaultBranch, defaults to "main"
	SSHKeyPath    string `json:"ssh_key_path" toml:"ssh_key_path"`     // Path to the private key, optional
	AutoPush      bool   `json:"auto_push" toml:"auto_push"`
	SignCommits   bool   `json:"sign_commits" toml:"sign_commits"`
}

// Set is the full durable state: all profiles keyed by name plus the
// name of the currently active one ("" when none is active).
type Set struct {
	Profiles map[string]Profile
	Current  string
}

// NewSet creates an empty profile set
func NewSet() *Set {
	return &Set{Profiles: map[string]Profile{}}
}

// Get returns the profile with the given name
func (s *Set) Get(name string) (Profile, bool) {
	p, ok := s.Profiles[name]
	return p, ok
}

// CurrentProfile returns the active profile, or false if no profile is
// active or the pointer references a profile that no longer exists.
func (s *Set) CurrentProfile() (Profile, bool) {
	if s.Current == "" {
		return Profile{}, false
	}
	p, ok := s.Profiles[s.Current]
	return p, ok
}

// Names returns all profile names, sorted
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalize repairs internal inconsistencies after a load: every map key
// wins over the record's own name field, and a current pointer that
// references a missing profile is treated as "no active profile".
func (s *Set) normalize() {
	if s.Profiles == nil {
		s.Profiles = map[string]Profile{}
	}
	for name, p := range s.Profiles {
		if p.Name != name {
			p.Name = name
			s.Profiles[name] = p
		}
		if p.DefaultBranch == "" {
			p.DefaultBranch = DefaultBranch
			s.Profiles[name] = p
		}
	}
	if s.Current != "" {
		if _, ok := s.Profiles[s.Current]; !ok {
			s.Current = ""
		}
	}
}
