package ui

import "testing"

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{"", TabMemo, false},
		{"memo", TabMemo, false},
		{"  Refactor ", TabRefactor, false},
		{"HOOKS", TabHooks, false},
		{"usememo", TabUseMemo, false},
		{"grid", TabMemo, true},
	}
	for _, tt := range tests {
		got, err := ParseTab(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseTab(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseTab(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTabCycle(t *testing.T) {
	if got := TabMemo.Next(); got != TabUseMemo {
		t.Fatalf("TabMemo.Next() = %v", got)
	}
	if got := TabHooks.Next(); got != TabMemo {
		t.Fatalf("TabHooks.Next() = %v, want wrap to TabMemo", got)
	}
	if got := TabMemo.Prev(); got != TabHooks {
		t.Fatalf("TabMemo.Prev() = %v, want TabHooks", got)
	}

	seen := map[Tab]bool{}
	tab := TabMemo
	for range tabOrder {
		seen[tab] = true
		tab = tab.Next()
	}
	if len(seen) != len(tabOrder) {
		t.Fatalf("cycle visited %d tabs, want %d", len(seen), len(tabOrder))
	}
}

func TestTabKeyRoundTrip(t *testing.T) {
	for _, tab := range tabOrder {
		got, err := ParseTab(tab.Key())
		if err != nil || got != tab {
			t.Fatalf("ParseTab(%q) = %v, %v", tab.Key(), got, err)
		}
		if tab.Title() == "" {
			t.Fatalf("tab %v has no title", tab)
		}
	}
}
