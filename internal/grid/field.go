package grid

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/five82/gridlab/internal/catalog"
)

// Field names a sortable record attribute.
type Field string

const (
	FieldID       Field = "id"
	FieldName     Field = "name"
	FieldCategory Field = "category"
	FieldPrice    Field = "price"
	FieldStock    Field = "stock"
	FieldStatus   Field = "status"
)

// Fields lists the sortable fields in column order.
var Fields = []Field{FieldID, FieldName, FieldCategory, FieldPrice, FieldStock, FieldStatus}

// Label returns the column header text for the field.
func (f Field) Label() string {
	switch f {
	case FieldID:
		return "ID"
	case FieldName:
		return "Name"
	case FieldCategory:
		return "Category"
	case FieldPrice:
		return "Price"
	case FieldStock:
		return "Stock"
	case FieldStatus:
		return "Status"
	}
	return string(f)
}

// Numeric reports whether the field orders numerically.
func (f Field) Numeric() bool {
	return f == FieldID || f == FieldPrice || f == FieldStock
}

// ParseField matches a field name case-insensitively.
func ParseField(value string) (Field, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, f := range Fields {
		if string(f) == value {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown sort field %q", value)
}

// Direction is the sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Arrow returns the header indicator for the direction.
func (d Direction) Arrow() string {
	if d == Descending {
		return "↓"
	}
	return "↑"
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// compareBy orders two records by the natural ordering of field.
func compareBy(field Field, a, b catalog.Record) int {
	switch field {
	case FieldName:
		return strings.Compare(a.Name, b.Name)
	case FieldCategory:
		return strings.Compare(string(a.Category), string(b.Category))
	case FieldPrice:
		return cmp.Compare(a.Price, b.Price)
	case FieldStock:
		return cmp.Compare(a.Stock, b.Stock)
	case FieldStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}
