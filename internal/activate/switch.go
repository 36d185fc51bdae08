package activate

import (
	"fmt"

	"github.com/byterings/ghswitch/internal/profile"
)

// Switcher ties the profile store to an activator: it validates, activates
// and commits the current-profile pointer in one operation.
type Switcher struct {
	Store     *profile.Store
	Activator *Activator
}

// Switch activates the named profile. It fails fast with
// profile.ErrNotFound before touching any ambient state. The current
// pointer is persisted only when activation succeeded overall, so it only
// ever references a profile whose last activation had no hard failure.
func (s *Switcher) Switch(name string) (*Report, error) {
	set := s.Store.Load()
	p, ok := set.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", profile.ErrNotFound, name)
	}

	report := s.Activator.Activate(p)
	if !report.OK() {
		return report, nil
	}

	set.Current = name
	if err := s.Store.Save(set); err != nil {
		return report, err
	}
	return report, nil
}
