package orders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbamnote/patil-admin/internal/orders"
)

func TestCheckItemTotalsAccepts(t *testing.T) {
	order := &orders.Order{
		ID: "o1",
		OrderItems: []orders.OrderItem{
			{ItemName: "Masala Dosa", Quantity: 3, UnitPrice: 120, TotalPrice: 360},
			// Fractional unit prices survive float decoding with sub-paisa noise.
			{ItemName: "Filter Coffee", Quantity: 2, UnitPrice: 45.55, TotalPrice: 91.1000000001},
		},
		Subtotal:       451.10,
		DiscountAmount: 45.11,
	}
	assert.NoError(t, orders.CheckItemTotals(order))
}

func TestCheckItemTotalsRejectsMismatchedLine(t *testing.T) {
	order := &orders.Order{
		ID: "o2",
		OrderItems: []orders.OrderItem{
			{ItemName: "Thali", Quantity: 2, UnitPrice: 300, TotalPrice: 550},
		},
		Subtotal: 550,
	}

	err := orders.CheckItemTotals(order)
	require.Error(t, err)

	var integrityErr *orders.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "o2", integrityErr.OrderID)
	assert.Contains(t, integrityErr.Detail, "Thali")
}

func TestCheckItemTotalsRejectsDiscountAboveSubtotal(t *testing.T) {
	order := &orders.Order{
		ID:             "o3",
		Subtotal:       200,
		DiscountAmount: 250,
	}

	err := orders.CheckItemTotals(order)
	require.Error(t, err)

	var integrityErr *orders.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Contains(t, integrityErr.Detail, "exceeds subtotal")
}
