// Package orders is the client for restaurant orders and their bills.
//
// It owns the wire types for the /orders endpoints, the repository functions
// that call them, and the lifecycle manager that keeps one open order
// consistent across read-then-mutate flows. All financial figures (subtotal,
// discount, GST, total) are computed server-side; this package carries them
// verbatim and never recomputes them, so client rounding can never drift from
// the server's tax rules.
package orders

import "time"

// PaymentStatus is the settlement state of an order's bill.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

// PaymentStatuses lists the statuses the server accepts, for prompt help and
// flag validation. Transitions between them are not constrained client-side.
var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentCancelled, PaymentRefunded}

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled, PaymentRefunded:
		return true
	}
	return false
}

// PaymentMethod is how an order was (or will be) paid.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodUPI          PaymentMethod = "upi"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodOther        PaymentMethod = "other"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodBankTransfer, MethodOther:
		return true
	}
	return false
}

// UserRef is a weak reference to the operator who created or last changed an
// order: id plus denormalized display name only.
type UserRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// OrderItem is one line of an order. TotalPrice is server-computed as
// quantity times unit price; see CheckItemTotals.
type OrderItem struct {
	ItemName       string   `json:"itemName"`
	Category       string   `json:"category"`
	Quantity       int      `json:"quantity"`
	UnitPrice      float64  `json:"unitPrice"`
	TotalPrice     float64  `json:"totalPrice"`
	DietaryOptions []string `json:"dietaryOptions,omitempty"`
}

// Order is one restaurant transaction. The billNumber is the human-facing
// reference; the id is opaque and server-assigned.
type Order struct {
	ID            string `json:"_id"`
	BillNumber    string `json:"billNumber"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	TableNumber   string `json:"tableNumber,omitempty"`
	PartySize     int    `json:"partySize,omitempty"`

	OrderItems []OrderItem `json:"orderItems"`

	// Financial fields, all server-computed.
	Subtotal           float64 `json:"subtotal"`
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountAmount     float64 `json:"discountAmount"`
	GSTPercentage      float64 `json:"gstPercentage"`
	GSTAmount          float64 `json:"gstAmount"`
	TotalAmount        float64 `json:"totalAmount"`

	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentReference string        `json:"paymentReference,omitempty"`
	BillNotes        string        `json:"billNotes,omitempty"`

	BillDate  time.Time `json:"billDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy *UserRef  `json:"createdBy,omitempty"`
	UpdatedBy *UserRef  `json:"updatedBy,omitempty"`
}

// BillProjection is the print-ready rendering of an order's bill. It has no
// identity of its own: the server recomputes it fresh on every request and the
// client never caches it beyond the view that asked for it.
type BillProjection struct {
	Order

	GeneratedBy string    `json:"generatedBy"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// BillStats is the aggregate view across all orders.
type BillStats struct {
	TotalOrders   int     `json:"totalOrders"`
	PendingOrders int     `json:"pendingOrders"`
	PaidOrders    int     `json:"paidOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
