package catalog

// DefaultPageSize is the page size the UI starts with.
const DefaultPageSize = 10

// PageSizes are the sizes the page-size selector cycles through.
var PageSizes = []int{5, 10, 20, 50}

// Pager is the pagination state machine: a page index bounded to
// [0, PageCount-1] and a page size. The index is clamped on every mutation
// so it can never point past the filtered subset.
type Pager struct {
	index int
	size  int
	total int // records in the current filtered subset
}

// NewPager returns a pager on page 0 with the given size.
func NewPager(size int) Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pager{size: size}
}

// Index returns the current page index.
func (pg Pager) Index() int { return pg.index }

// Size returns the current page size.
func (pg Pager) Size() int { return pg.size }

// PageCount returns the number of pages for the current subset. An empty
// subset still has one (empty) page so the index stays well-defined.
func (pg Pager) PageCount() int {
	if pg.total == 0 {
		return 1
	}
	return (pg.total + pg.size - 1) / pg.size
}

// SetTotal records the size of the filtered subset and clamps the index.
func (pg *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	pg.total = total
	pg.clamp()
}

// SetSize changes the page size, recomputes the page count, and clamps the
// current index to the last valid page.
func (pg *Pager) SetSize(size int) {
	if size <= 0 {
		return
	}
	pg.size = size
	pg.clamp()
}

// Reset forces the pager back to the first page. Called on every filter
// criteria change.
func (pg *Pager) Reset() { pg.index = 0 }

// First, Prev, Next, and Last are the explicit pagination controls.
func (pg *Pager) First() { pg.index = 0 }

func (pg *Pager) Prev() {
	if pg.index > 0 {
		pg.index--
	}
}

func (pg *Pager) Next() {
	pg.index++
	pg.clamp()
}

func (pg *Pager) Last() { pg.index = pg.PageCount() - 1 }

func (pg *Pager) clamp() {
	last := pg.PageCount() - 1
	if pg.index > last {
		pg.index = last
	}
	if pg.index < 0 {
		pg.index = 0
	}
}

// Slice returns the window of products for the current page. The slice
// aliases the input; callers treat it as read-only.
func (pg Pager) Slice(products []Product) []Product {
	start := pg.index * pg.size
	if start >= len(products) {
		return nil
	}
	end := start + pg.size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
