// Package catalog holds the product domain: the record type, the filter
// pipeline, and the sort/pagination state machines the UI drives.
package catalog

// Product is one record returned by the remote source.
// Immutable after decode; the UI only ever reads it.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
}

// Listing is the decoded remote payload: the records plus the source's
// own pagination counters.
type Listing struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
