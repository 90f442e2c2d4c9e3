// Package fruits backs the searchable list exercise.
package fruits

import "strings"

// All is the fixed list shown by the searchable list.
var All = []string{
	"Apple",
	"Banana",
	"Cherry",
	"Date",
	"Elderberry",
	"Fig",
	"Grape",
	"Honeydew",
	"Kiwi",
	"Lemon",
	"Mango",
	"Nectarine",
	"Orange",
	"Papaya",
	"Quince",
}

// Filter returns the entries of items containing term, ignoring case.
// An empty term matches everything.
func Filter(items []string, term string) []string {
	needle := strings.ToLower(term)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), needle) {
			out = append(out, item)
		}
	}
	return out
}
