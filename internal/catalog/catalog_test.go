package catalog

import "testing"

func TestSearchFiltersAreANDCombined(t *testing.T) {
	c := Default()

	all := c.Search("", "", "")
	if len(all) != len(c.Workers()) {
		t.Fatalf("empty filters matched %d of %d", len(all), len(c.Workers()))
	}

	plumbers := c.Search("", "", "plumber")
	if len(plumbers) != 2 {
		t.Fatalf("plumbers=%d, want 2", len(plumbers))
	}

	delhiPlumbers := c.Search("", "DELHI", "Plumber")
	if len(delhiPlumbers) != 1 || delhiPlumbers[0].Name != "Asha Verma" {
		t.Fatalf("delhi plumbers=%+v, want just Asha Verma", delhiPlumbers)
	}

	byName := c.Search("ravi", "", "")
	if len(byName) != 1 || byName[0].ID != 2 {
		t.Fatalf("query 'ravi' returned %+v", byName)
	}

	none := c.Search("ravi", "", "plumber")
	if len(none) != 0 {
		t.Fatalf("conflicting filters should match nothing, got %+v", none)
	}
}

func TestFind(t *testing.T) {
	c := Default()
	if w := c.Find(3); w == nil || w.Name != "Meena Joshi" {
		t.Fatalf("Find(3)=%+v", w)
	}
	if w := c.Find(999); w != nil {
		t.Fatalf("Find(999)=%+v, want nil", w)
	}
}
