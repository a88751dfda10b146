package catalog

import (
	"sort"
	"testing"
)

func TestResolve_DefaultEntries(t *testing.T) {
	c := New(nil)

	tests := []struct {
		in   string
		want string
	}{
		{"Apple Inc", "AAPL"},
		{"Coca-Cola Co", "KO"},
		{"Berkshire Hathaway Inc. Class A", "BRK-A"},
		{"MSFT", "MSFT"}, // already a code
	}
	for _, tt := range tests {
		got, err := c.Resolve(tt.in)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	c := New(nil)
	if _, err := c.Resolve("Enron Corp"); err == nil {
		t.Fatal("expected error for unknown stock")
	}
}

func TestNames_Sorted(t *testing.T) {
	c := New(map[string]string{"Zeta": "Z", "Alpha": "A"})
	names := c.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 names, got %d", len(names))
	}
}

func TestCodes_DefaultCount(t *testing.T) {
	c := New(nil)
	if got := len(c.Codes()); got != 13 {
		t.Errorf("expected 13 default codes, got %d", got)
	}
}
