package catalog

import "sort"

// Column identifies a sortable table column.
type Column int

const (
	ColumnID Column = iota
	ColumnTitle
	ColumnBrand
	ColumnCategory
	ColumnPrice
)

// String returns the display name of the column.
func (c Column) String() string {
	switch c {
	case ColumnID:
		return "ID"
	case ColumnTitle:
		return "Title"
	case ColumnBrand:
		return "Brand"
	case ColumnCategory:
		return "Category"
	case ColumnPrice:
		return "Price"
	}
	return "?"
}

// Direction is the sort state of the active column.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

// Order tracks the single active sort column and its direction.
// The zero value is the initial state: no sort.
type Order struct {
	Column    Column
	Direction Direction
}

// Cycle advances the sort state for col: activating a new column starts it
// ascending; repeating the active column goes ascending -> descending -> none.
func (o Order) Cycle(col Column) Order {
	if o.Direction == Unsorted || o.Column != col {
		return Order{Column: col, Direction: Ascending}
	}
	if o.Direction == Ascending {
		return Order{Column: col, Direction: Descending}
	}
	return Order{}
}

// Apply returns products ordered by the active column. The input slice is
// left untouched; an unsorted order returns it as-is. The sort is stable so
// equal keys keep their source order.
func (o Order) Apply(products []Product) []Product {
	if o.Direction == Unsorted {
		return products
	}

	out := make([]Product, len(products))
	copy(out, products)

	less := func(a, b Product) bool {
		switch o.Column {
		case ColumnID:
			return a.ID < b.ID
		case ColumnTitle:
			return a.Title < b.Title
		case ColumnBrand:
			return a.Brand < b.Brand
		case ColumnCategory:
			return a.Category < b.Category
		case ColumnPrice:
			return a.Price < b.Price
		}
		return false
	}

	sort.SliceStable(out, func(i, j int) bool {
		if o.Direction == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
