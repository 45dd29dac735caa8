package models

const (
	// DefaultPageQuantity is used when the quantity query parameter is absent.
	DefaultPageQuantity uint16 = 10
	// MaxPageQuantity caps the number of items returned by one listing.
	MaxPageQuantity uint16 = 100
)

// Page selects a window of a listing. Page numbers start at zero.
type Page struct {
	Number   uint16
	Quantity uint16
}

// NewPage returns a page with quantity capped at [MaxPageQuantity].
func NewPage(number, quantity uint16) Page {
	if quantity > MaxPageQuantity {
		quantity = MaxPageQuantity
	}

	return Page{Number: number, Quantity: quantity}
}

// Offset is the number of rows skipped before the page starts.
func (p Page) Offset() uint64 {
	return uint64(p.Number) * uint64(p.Quantity)
}

// Limit is the maximum number of rows of the page.
func (p Page) Limit() uint64 {
	return uint64(p.Quantity)
}
