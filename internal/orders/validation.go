package orders

import (
	"fmt"
	"math"
)

// priceTolerance absorbs float decoding noise when comparing currency values
// that the server computed in its own decimal arithmetic.
const priceTolerance = 0.005

// CheckItemTotals verifies that every line's totalPrice matches its quantity
// times unit price and that the discount does not exceed the subtotal. A
// mismatch means the record is corrupt on the server side; it is reported to
// the operator as-is, never patched up locally.
func CheckItemTotals(o *Order) error {
	for i, item := range o.OrderItems {
		expected := float64(item.Quantity) * item.UnitPrice
		if math.Abs(item.TotalPrice-expected) > priceTolerance {
			return &IntegrityError{
				OrderID: o.ID,
				Detail: fmt.Sprintf("item %d (%s): totalPrice %.2f does not equal %d x %.2f",
					i, item.ItemName, item.TotalPrice, item.Quantity, item.UnitPrice),
			}
		}
	}
	if o.DiscountAmount > o.Subtotal+priceTolerance {
		return &IntegrityError{
			OrderID: o.ID,
			Detail: fmt.Sprintf("discountAmount %.2f exceeds subtotal %.2f",
				o.DiscountAmount, o.Subtotal),
		}
	}
	return nil
}
