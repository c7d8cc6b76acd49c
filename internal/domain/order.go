package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a placed order with totals frozen at checkout time.
type Order struct {
	ID             string
	SessionID      string
	Items          []OrderItem
	Subtotal       float64
	DiscountAmount float64
	Total          float64
	VoucherCode    string
	Status         OrderStatus
	CreatedAt      time.Time
}

// OrderItem is a single order line. UnitPrice is the effective price at
// checkout time, so later catalog edits never change past orders.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
	Color     string
	Size      string
}

// Order-specific errors.
var (
	ErrOrderNotFound = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrEmptyCart     = &Error{Code: EINVALID, Message: "Cart is empty"}
)
