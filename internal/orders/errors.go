package orders

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when a mutation is attempted while another mutation
	// for the same order is still in flight. Nothing is queued; the caller
	// retries after the in-flight operation resolves.
	ErrBusy = errors.New("another change for this order is still in progress")

	// ErrNotLoaded is returned when an operation needs a loaded order and the
	// manager has none (it is idle, still loading, or errored).
	ErrNotLoaded = errors.New("no order is loaded")

	// ErrGone is returned for operations on an order after its deletion
	// succeeded.
	ErrGone = errors.New("order has been deleted")

	// ErrDetached is returned when an operation completes after the view that
	// owned the manager has been detached. Its result was discarded.
	ErrDetached = errors.New("view detached, result discarded")
)

// IntegrityError reports an order whose server-computed figures contradict
// each other. It is surfaced to the operator, never silently corrected.
type IntegrityError struct {
	OrderID string
	Detail  string
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("order %s has inconsistent billing data: %s", e.OrderID, e.Detail)
}
