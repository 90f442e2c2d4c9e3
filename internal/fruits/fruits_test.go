package fruits

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter(t *testing.T) {
	cases := []struct {
		term string
		want []string
	}{
		{"", All},
		{"an", []string{"Banana", "Mango", "Orange"}},
		{"ERR", []string{"Cherry", "Elderberry"}},
		{"zzz", []string{}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, Filter(All, tc.term)); diff != "" {
			t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", tc.term, diff)
		}
	}
}
