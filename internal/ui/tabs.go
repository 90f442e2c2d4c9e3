package ui

import (
	"fmt"
	"strings"
)

// Tab identifies one exercise panel.
type Tab int

const (
	TabMemo Tab = iota
	TabUseMemo
	TabCallback
	TabCustom
	TabRefactor
	TabHooks
)

var tabOrder = []Tab{TabMemo, TabUseMemo, TabCallback, TabCustom, TabRefactor, TabHooks}

var tabKeys = map[Tab]string{
	TabMemo:     "memo",
	TabUseMemo:  "usememo",
	TabCallback: "callback",
	TabCustom:   "custom",
	TabRefactor: "refactor",
	TabHooks:    "hooks",
}

var tabTitles = map[Tab]string{
	TabMemo:     "Memo List",
	TabUseMemo:  "Calculator",
	TabCallback: "Search",
	TabCustom:   "Custom Equality",
	TabRefactor: "Data Grid",
	TabHooks:    "Resources",
}

// Key returns the stable identifier persisted in prefs.
func (t Tab) Key() string {
	if k, ok := tabKeys[t]; ok {
		return k
	}
	return tabKeys[TabMemo]
}

// Title returns the label shown in the tab bar.
func (t Tab) Title() string {
	if s, ok := tabTitles[t]; ok {
		return s
	}
	return tabTitles[TabMemo]
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	return tabOrder[(t.index()+1)%len(tabOrder)]
}

// Prev returns the preceding tab, wrapping around.
func (t Tab) Prev() Tab {
	return tabOrder[(t.index()+len(tabOrder)-1)%len(tabOrder)]
}

func (t Tab) index() int {
	for i, tab := range tabOrder {
		if tab == t {
			return i
		}
	}
	return 0
}

// ParseTab resolves a tab key such as "refactor". Blank input yields TabMemo.
func ParseTab(value string) (Tab, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return TabMemo, nil
	}
	for tab, k := range tabKeys {
		if k == v {
			return tab, nil
		}
	}
	return TabMemo, fmt.Errorf("unknown tab %q", value)
}
