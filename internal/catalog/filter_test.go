package catalog

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Title: "iPhone 9", Description: "An apple mobile", Price: 549, Brand: "Apple", Category: "smartphones"},
		{ID: 2, Title: "iPhone X", Description: "Model A19211", Price: 899, Brand: "Apple", Category: "smartphones"},
		{ID: 3, Title: "Samsung Universe 9", Description: "Galaxy beyond", Price: 1249, Brand: "Samsung", Category: "smartphones"},
		{ID: 4, Title: "OPPOF19", Description: "OPPO F19", Price: 280, Brand: "OPPO", Category: "smartphones"},
		{ID: 5, Title: "MacBook Pro", Description: "16 inch", Price: 1749, Brand: "Apple", Category: "laptops"},
		{ID: 6, Title: "Perfume Oil", Description: "Mega discount", Price: 13, Brand: "Impression of Acqua", Category: "fragrances"},
		{ID: 7, Title: "Brown Perfume", Description: "Royal_Mirage", Price: 40, Brand: "Royal_Mirage", Category: "fragrances"},
	}
}

func TestApply_NoCriteria(t *testing.T) {
	products := sampleProducts()
	got := Apply(products, Criteria{})
	if diff := cmp.Diff(products, got); diff != "" {
		t.Errorf("empty criteria should keep every record (-want +got):\n%s", diff)
	}
}

func TestApply_CategoryEquality(t *testing.T) {
	// Case-insensitive exact match, never substring.
	for _, q := range []string{"smartphones", "SMARTPHONES", "SmartPhones"} {
		got := Apply(sampleProducts(), Criteria{Category: q})
		if len(got) != 4 {
			t.Fatalf("category %q: expected 4 records, got %d", q, len(got))
		}
		for _, p := range got {
			if p.Category != "smartphones" {
				t.Errorf("category %q let through %q", q, p.Category)
			}
		}
	}

	if got := Apply(sampleProducts(), Criteria{Category: "smart"}); len(got) != 0 {
		t.Errorf("category filter must be equality, not substring: got %d records", len(got))
	}
}

func TestApply_BrandEquality(t *testing.T) {
	got := Apply(sampleProducts(), Criteria{Brand: "apple"})
	if len(got) != 3 {
		t.Fatalf("expected 3 Apple records, got %d", len(got))
	}
	for _, p := range got {
		if p.Brand != "Apple" {
			t.Errorf("brand filter let through %q", p.Brand)
		}
	}
}

func TestApply_PriceRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
		wantIDs  []int
	}{
		{"min only", "500", "", []int{1, 2, 3, 5}},
		{"max only", "", "100", []int{6, 7}},
		{"both", "40", "900", []int{1, 2, 4, 7}},
		{"inclusive bounds", "549", "549", []int{1}},
		{"invalid min behaves as absent", "abc", "100", []int{6, 7}},
		{"invalid max behaves as absent", "500", "12,99", []int{1, 2, 3, 5}},
		{"both invalid", "low", "high", []int{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleProducts(), Criteria{MinPrice: tt.min, MaxPrice: tt.max})
			var ids []int
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if diff := cmp.Diff(tt.wantIDs, ids); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_FreeText(t *testing.T) {
	// Substring, case-insensitive, over title OR brand OR category.
	tests := []struct {
		query string
		want  int
	}{
		{"iphone", 2},    // title
		{"APPLE", 3},     // brand
		{"fragran", 2},   // category substring
		{"perfume", 2},   // title
		{"mega", 0},      // description is not searched
		{"no-match", 0},
	}
	for _, tt := range tests {
		if got := Apply(sampleProducts(), Criteria{Query: tt.query}); len(got) != tt.want {
			t.Errorf("query %q: expected %d records, got %d", tt.query, tt.want, len(got))
		}
	}
}

func TestApply_Conjunction(t *testing.T) {
	got := Apply(sampleProducts(), Criteria{
		Query:    "iphone",
		Category: "smartphones",
		Brand:    "Apple",
		MinPrice: "600",
	})
	want := []Product{sampleProducts()[1]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("conjunctive filter mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_SubsetProperty(t *testing.T) {
	// Whatever the criteria, the output is a subset of the input in input order.
	products := sampleProducts()
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	criteria := []Criteria{
		{},
		{Query: "a"},
		{Category: "smartphones", MinPrice: "100"},
		{Brand: "apple", MaxPrice: "1000"},
		{Query: "o", MinPrice: "garbage", MaxPrice: "-1"},
	}
	for i, c := range criteria {
		got := Apply(products, c)
		lastID := -1
		for _, p := range got {
			orig, ok := byID[p.ID]
			if !ok {
				t.Fatalf("criteria %d fabricated record %d", i, p.ID)
			}
			if diff := cmp.Diff(orig, p); diff != "" {
				t.Errorf("criteria %d mutated record %d:\n%s", i, p.ID, diff)
			}
			if p.ID <= lastID {
				t.Errorf("criteria %d reordered output", i)
			}
			lastID = p.ID
		}
	}
}

func TestApply_HundredRecordScenario(t *testing.T) {
	// 100 records, half smartphones; the category filter keeps exactly that half.
	products := make([]Product, 0, 100)
	for i := 0; i < 100; i++ {
		cat := "laptops"
		if i%2 == 0 {
			cat = "Smartphones"
		}
		products = append(products, Product{
			ID:       i + 1,
			Title:    fmt.Sprintf("Product %d", i+1),
			Price:    float64(i * 10),
			Brand:    "Generic",
			Category: cat,
		})
	}

	got := Apply(products, Criteria{Category: "smartphones"})
	if len(got) != 50 {
		t.Fatalf("expected 50 smartphones, got %d", len(got))
	}
	for _, p := range got {
		if p.Category != "Smartphones" {
			t.Errorf("non-smartphone leaked through: %q", p.Category)
		}
	}
}

func TestDistinctSets(t *testing.T) {
	products := sampleProducts()

	gotCats := Categories(products)
	wantCats := []string{"fragrances", "laptops", "smartphones"}
	if diff := cmp.Diff(wantCats, gotCats); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}

	gotBrands := Brands(products)
	wantBrands := []string{"Apple", "Impression of Acqua", "OPPO", "Royal_Mirage", "Samsung"}
	if diff := cmp.Diff(wantBrands, gotBrands); diff != "" {
		t.Errorf("brands (-want +got):\n%s", diff)
	}

	// Derivation ignores filtering entirely: callers pass the full list.
	if got := Categories(nil); len(got) != 0 {
		t.Errorf("nil input should derive no categories, got %v", got)
	}
}
