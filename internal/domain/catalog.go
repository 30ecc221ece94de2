package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog is the read-only reference data every widget consumes: the state
// table, the axle limits and the sample document. It is loaded once at
// startup and never mutated afterwards.
type Catalog struct {
	states []StateEntry
	byName map[string]StateEntry
	limits AxleLimits
	sample DocumentRecord
}

// NewCatalog builds and validates a catalog. The states slice is copied with
// names trimmed and abbreviations trimmed and upper-cased.
func NewCatalog(states []StateEntry, limits AxleLimits, sample DocumentRecord) (Catalog, error) {
	c := Catalog{
		states: make([]StateEntry, len(states)),
		byName: make(map[string]StateEntry, len(states)),
		limits: limits,
		sample: sample,
	}
	for i, st := range states {
		c.states[i] = StateEntry{
			Name:         strings.TrimSpace(st.Name),
			Abbreviation: strings.ToUpper(strings.TrimSpace(st.Abbreviation)),
		}
	}

	if err := c.validate(); err != nil {
		return Catalog{}, fmt.Errorf("new catalog: %w", err)
	}

	for _, s := range c.states {
		c.byName[NormalizeText(s.Name)] = s
	}
	return c, nil
}

// DefaultCatalog returns the compiled-in reference data.
func DefaultCatalog() Catalog {
	c, err := NewCatalog(States(), DefaultAxleLimits(), DefaultSampleDocument())
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) validate() error {
	if len(c.states) != StateCount {
		return fmt.Errorf("state table has %d entries, want %d", len(c.states), StateCount)
	}

	names := make(map[string]struct{}, len(c.states))
	abbrs := make(map[string]struct{}, len(c.states))
	for i, s := range c.states {
		name := NormalizeText(s.Name)
		abbr := s.Abbreviation
		if name == "" {
			return fmt.Errorf("state #%d: name is empty", i+1)
		}
		if len(abbr) != 2 {
			return fmt.Errorf("state %q: abbreviation %q is not two letters", s.Name, s.Abbreviation)
		}
		if _, ok := names[name]; ok {
			return fmt.Errorf("state %q listed twice", s.Name)
		}
		if _, ok := abbrs[abbr]; ok {
			return fmt.Errorf("abbreviation %q listed twice", abbr)
		}
		names[name] = struct{}{}
		abbrs[abbr] = struct{}{}
	}

	l := c.limits
	if l.Steer <= 0 || l.DriveWithAPU <= 0 || l.DriveWithoutAPU <= 0 || l.Trailer <= 0 {
		return errors.New("axle limits must be positive")
	}

	return nil
}

// States returns a copy of the state table.
func (c Catalog) States() []StateEntry {
	out := make([]StateEntry, len(c.states))
	copy(out, c.states)
	return out
}

// StateAt returns the i-th state. Callers keep i within [0, StateCount).
func (c Catalog) StateAt(i int) StateEntry { return c.states[i] }

// Len reports the number of states.
func (c Catalog) Len() int { return len(c.states) }

// StateByName finds a state by its full name, ignoring case and spacing.
func (c Catalog) StateByName(name string) (StateEntry, bool) {
	s, ok := c.byName[NormalizeText(name)]
	return s, ok
}

// AxleLimits returns the legal weight limits.
func (c Catalog) AxleLimits() AxleLimits { return c.limits }

// SampleDocument returns the demo document record.
func (c Catalog) SampleDocument() DocumentRecord { return c.sample }
