package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Criteria is the combined set of user-specified constraints narrowing the
// displayed record set. Empty fields mean "no constraint". Price bounds are
// kept as the raw input strings; anything that doesn't parse as a number is
// treated as absent, not as an error.
type Criteria struct {
	Query    string
	Category string
	Brand    string
	MinPrice string
	MaxPrice string
}

// IsZero reports whether no constraint is active.
func (c Criteria) IsZero() bool {
	return c.Query == "" && c.Category == "" && c.Brand == "" &&
		c.MinPrice == "" && c.MaxPrice == ""
}

// bound parses a raw price bound. ok is false when the field is empty or not
// a valid number, in which case the bound does not constrain anything.
func bound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Apply runs the filter pipeline: category equality, brand equality, price
// lower bound, price upper bound, then free-text substring over title, brand,
// and category. All matching is case-insensitive. The result is always a
// subset of the input, in input order; the input is never modified.
func Apply(products []Product, c Criteria) []Product {
	category := strings.ToLower(strings.TrimSpace(c.Category))
	brand := strings.ToLower(strings.TrimSpace(c.Brand))
	query := strings.ToLower(strings.TrimSpace(c.Query))
	min, hasMin := bound(c.MinPrice)
	max, hasMax := bound(c.MaxPrice)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if brand != "" && strings.ToLower(p.Brand) != brand {
			continue
		}
		if hasMin && p.Price < min {
			continue
		}
		if hasMax && p.Price > max {
			continue
		}
		if query != "" {
			title := strings.ToLower(p.Title)
			b := strings.ToLower(p.Brand)
			cat := strings.ToLower(p.Category)
			if !strings.Contains(title, query) && !strings.Contains(b, query) && !strings.Contains(cat, query) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct categories present in the full record list,
// sorted. Derived from the unfiltered list so toolbar options stay stable
// regardless of the current filtering.
func Categories(products []Product) []string {
	return distinct(products, func(p Product) string { return p.Category })
}

// Brands returns the distinct brands present in the full record list, sorted.
func Brands(products []Product) []string {
	return distinct(products, func(p Product) string { return p.Brand })
}

func distinct(products []Product, key func(Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		k := key(p)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
