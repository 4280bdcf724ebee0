package domain

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items  []T
	Total  int
	// Number is 1-based.
	Number int
	Size   int
}

// HasNext reports whether another page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Number*p.Size < p.Total
}

// HasPrevious reports whether a page precedes this one.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}
