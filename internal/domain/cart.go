package domain

import "time"

// Cart is a session-scoped shopping cart.
type Cart struct {
	ID        string
	SessionID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one (product, color, size) combination with a quantity.
// Two items in the same cart never share the same combination; adds for an
// existing combination increment the quantity instead.
type CartItem struct {
	ID        string
	CartID    string
	Product   Product
	Quantity  int
	Color     string
	Size      string
	CreatedAt time.Time
}

// CartSummary aggregates a cart with its items and computed totals.
type CartSummary struct {
	Cart      Cart
	Items     []CartItem
	Subtotal  float64
	ItemCount int
}

// Cart-specific errors.
var (
	ErrCartNotFound     = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrCartItemNotFound = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrInvalidQuantity  = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
	ErrInvalidVariant   = &Error{Code: EINVALID, Message: "Selected variant is not offered for this product"}
	ErrOutOfStock       = &Error{Code: ECONFLICT, Message: "Not enough stock for the requested quantity"}
)
