package domain

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	if c.Len() != StateCount {
		t.Fatalf("len = %d, want %d", c.Len(), StateCount)
	}

	tx, ok := c.StateByName("Texas")
	if !ok || tx.Abbreviation != "TX" {
		t.Fatalf("Texas = %+v, %v", tx, ok)
	}

	nh, ok := c.StateByName("new   HAMPSHIRE")
	if !ok || nh.Abbreviation != "NH" {
		t.Fatalf("New Hampshire = %+v, %v", nh, ok)
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := DefaultCatalog()

	states := c.States()
	states[0].Abbreviation = "ZZ"

	if c.StateAt(0).Abbreviation != "AL" {
		t.Fatalf("catalog mutated through States(): %+v", c.StateAt(0))
	}
	if States()[0].Abbreviation != "AL" {
		t.Fatal("built-in table mutated")
	}
}

func TestNewCatalogValidation(t *testing.T) {
	limits := DefaultAxleLimits()
	sample := DefaultSampleDocument()

	dup := States()
	dup[1] = StateEntry{Name: "Alaska", Abbreviation: "AL"}

	badAbbr := States()
	badAbbr[5] = StateEntry{Name: "Colorado", Abbreviation: "COL"}

	blank := States()
	blank[9] = StateEntry{Name: "  ", Abbreviation: "GA"}

	zeroLimits := limits
	zeroLimits.Trailer = 0

	tests := []struct {
		name   string
		states []StateEntry
		limits AxleLimits
	}{
		{"short table", States()[:49], limits},
		{"duplicate abbreviation", dup, limits},
		{"three letters", badAbbr, limits},
		{"blank name", blank, limits},
		{"zero limit", States(), zeroLimits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.states, tt.limits, sample); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestNewCatalogCleansEntries(t *testing.T) {
	states := States()
	states[42] = StateEntry{Name: "  Texas ", Abbreviation: " tx "}

	c, err := NewCatalog(states, DefaultAxleLimits(), DefaultSampleDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := StateEntry{Name: "Texas", Abbreviation: "TX"}
	if got := c.StateAt(42); got != want {
		t.Fatalf("StateAt(42) = %+v, want %+v", got, want)
	}
	if got, ok := c.StateByName("texas"); !ok || got != want {
		t.Fatalf("StateByName(texas) = %+v, %v", got, ok)
	}
}
