package server

import "testing"

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if r.Count() != 0 {
		t.Errorf("expected 0 matches, got %d", r.Count())
	}

	r.Add("aaaa")
	r.Add("bbbb")
	if r.Count() != 2 {
		t.Errorf("expected 2 matches, got %d", r.Count())
	}

	found := false
	for _, m := range r.All() {
		if m.ID == "aaaa" {
			found = true
			if m.StartedAt.IsZero() {
				t.Error("expected a start time")
			}
		}
	}
	if !found {
		t.Error("expected match aaaa in All()")
	}

	r.Remove("aaaa")
	if r.Count() != 1 {
		t.Errorf("expected 1 match after removal, got %d", r.Count())
	}
}
