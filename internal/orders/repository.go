package orders

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kbamnote/patil-admin/internal/api"
	"github.com/kbamnote/patil-admin/internal/logger"
)

// Repository translates order operations into API calls. It holds no state of
// its own and carries no business logic; failures pass through as the
// gateway's taxonomy errors.
type Repository struct {
	gw  *api.Gateway
	log zerolog.Logger
}

// NewRepository returns a repository backed by the given gateway.
func NewRepository(gw *api.Gateway) *Repository {
	return &Repository{
		gw:  gw,
		log: logger.WithComponent("orders"),
	}
}

// OrderPage is one page of the orders list with its paging metadata.
type OrderPage struct {
	Items      []Order
	Pagination api.Pagination
}

// List fetches a page of orders matching the filter.
func (r *Repository) List(ctx context.Context, filter ListFilter) (*OrderPage, error) {
	var items []Order
	pagination, err := r.gw.Get(ctx, "orders.List", "/orders", filter.Query(), &items)
	if err != nil {
		return nil, err
	}
	if pagination == nil {
		return nil, fmt.Errorf("orders.List: server response is missing pagination")
	}
	return &OrderPage{Items: items, Pagination: *pagination}, nil
}

// Get fetches a single order by id.
func (r *Repository) Get(ctx context.Context, id string) (*Order, error) {
	var order Order
	if _, err := r.gw.Get(ctx, "orders.Get", "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderUpdate is a partial update of an order's mutable fields. Nil fields
// are left untouched server-side.
type OrderUpdate struct {
	GSTPercentage      *float64       `json:"gstPercentage,omitempty"`
	DiscountPercentage *float64       `json:"discountPercentage,omitempty"`
	BillNotes          *string        `json:"billNotes,omitempty"`
	PaymentStatus      *PaymentStatus `json:"paymentStatus,omitempty"`
	PaymentMethod      *PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentReference   *string        `json:"paymentReference,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u OrderUpdate) IsEmpty() bool {
	return u.GSTPercentage == nil && u.DiscountPercentage == nil && u.BillNotes == nil &&
		u.PaymentStatus == nil && u.PaymentMethod == nil && u.PaymentReference == nil
}

// Update submits a partial update and returns the server's resulting order.
// The returned order, not the submitted partial, is what callers must adopt:
// the server recomputes every derived amount.
func (r *Repository) Update(ctx context.Context, id string, update OrderUpdate) (*Order, error) {
	var order Order
	if err := r.gw.Put(ctx, "orders.Update", "/orders/"+id, update, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes an order.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, "orders.Delete", "/orders/"+id)
}

// GenerateBill fetches the print-ready bill projection for an order.
func (r *Repository) GenerateBill(ctx context.Context, id string) (*BillProjection, error) {
	var bill BillProjection
	if _, err := r.gw.Get(ctx, "orders.GenerateBill", "/orders/"+id+"/bill", nil, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// Stats fetches the aggregate bill statistics across all orders.
func (r *Repository) Stats(ctx context.Context) (*BillStats, error) {
	var stats BillStats
	if _, err := r.gw.Get(ctx, "orders.Stats", "/orders/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
