package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager_PageCount(t *testing.T) {
	pg := NewPager(10)

	pg.SetTotal(0)
	assert.Equal(t, 1, pg.PageCount(), "empty subset still has one page")

	pg.SetTotal(10)
	assert.Equal(t, 1, pg.PageCount())

	pg.SetTotal(11)
	assert.Equal(t, 2, pg.PageCount())

	pg.SetTotal(23)
	assert.Equal(t, 3, pg.PageCount())
}

func TestPager_SizeChangeClamps(t *testing.T) {
	// 23 filtered records at page size 50: a single page.
	pg := NewPager(50)
	pg.SetTotal(23)
	assert.Equal(t, 1, pg.PageCount())

	// Shrinking the page size to 5 recomputes the count and keeps the
	// index valid.
	pg.SetSize(5)
	assert.Equal(t, 5, pg.PageCount())
	assert.Equal(t, 0, pg.Index())

	// From the last page of a small size, growing the size clamps back.
	pg.Last()
	assert.Equal(t, 4, pg.Index())
	pg.SetSize(50)
	assert.Equal(t, 0, pg.Index())
}

func TestPager_Navigation(t *testing.T) {
	pg := NewPager(10)
	pg.SetTotal(35) // 4 pages

	pg.Prev()
	assert.Equal(t, 0, pg.Index(), "prev on first page stays put")

	pg.Next()
	pg.Next()
	assert.Equal(t, 2, pg.Index())

	pg.Last()
	assert.Equal(t, 3, pg.Index())

	pg.Next()
	assert.Equal(t, 3, pg.Index(), "next on last page stays put")

	pg.First()
	assert.Equal(t, 0, pg.Index())
}

func TestPager_TotalShrinkClamps(t *testing.T) {
	pg := NewPager(10)
	pg.SetTotal(100)
	pg.Last()
	assert.Equal(t, 9, pg.Index())

	// A tighter filter shrinks the subset; the index clamps to the new
	// last page instead of pointing past the data.
	pg.SetTotal(12)
	assert.Equal(t, 1, pg.Index())

	pg.SetTotal(0)
	assert.Equal(t, 0, pg.Index())
}

func TestPager_Slice(t *testing.T) {
	products := make([]Product, 23)
	for i := range products {
		products[i] = Product{ID: i + 1}
	}

	pg := NewPager(5)
	pg.SetTotal(len(products))

	first := pg.Slice(products)
	assert.Len(t, first, 5)
	assert.Equal(t, 1, first[0].ID)

	pg.Last()
	last := pg.Slice(products)
	assert.Len(t, last, 3, "final partial page")
	assert.Equal(t, 21, last[0].ID)

	assert.Nil(t, NewPager(5).Slice(nil))
}

func TestPager_ResetOnCriteriaChange(t *testing.T) {
	pg := NewPager(5)
	pg.SetTotal(100)
	pg.Next()
	pg.Next()
	assert.Equal(t, 2, pg.Index())

	// The UI calls Reset whenever any filter criterion changes.
	pg.Reset()
	assert.Equal(t, 0, pg.Index())
}
