// Package catalog generates the static product record set shown by the data grid.
package catalog

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Category is one of a fixed set of product categories.
type Category string

const (
	Electronics Category = "Electronics"
	Clothing    Category = "Clothing"
	Food        Category = "Food"
	Books       Category = "Books"
)

// Categories lists every category in generation order.
var Categories = []Category{Electronics, Clothing, Food, Books}

// Status reports whether a product is currently listed.
type Status string

const (
	Active   Status = "active"
	Inactive Status = "inactive"
)

// Statuses lists every status value.
var Statuses = []Status{Active, Inactive}

// Record is a single product row. Records are never mutated after Generate.
type Record struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
	Status   Status   `json:"status"`
}

// DefaultCount is the number of records generated when no count is configured.
const DefaultCount = 100

// Generate builds n records. Categories cycle in order and every third record
// (starting with the first) is inactive. Price and stock come from rng.
func Generate(n int, rng *rand.Rand) []Record {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	records := make([]Record, n)
	for i := range records {
		status := Active
		if i%3 == 0 {
			status = Inactive
		}
		records[i] = Record{
			ID:       i + 1,
			Name:     fmt.Sprintf("Product %d", i+1),
			Category: Categories[i%len(Categories)],
			Price:    rng.Float64() * 1000,
			Stock:    rng.IntN(100),
			Status:   status,
		}
	}
	return records
}

// NewRand returns a deterministic source for a non-zero seed and a random one otherwise.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(value string) (Category, error) {
	value = strings.TrimSpace(value)
	for _, c := range Categories {
		if strings.EqualFold(string(c), value) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// ParseStatus matches a status name case-insensitively.
func ParseStatus(value string) (Status, error) {
	value = strings.TrimSpace(value)
	for _, s := range Statuses {
		if strings.EqualFold(string(s), value) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", value)
}
