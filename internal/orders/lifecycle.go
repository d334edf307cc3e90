package orders

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kbamnote/patil-admin/internal/logger"
)

// State is the lifecycle position of one open order view.
type State int

const (
	// StateIdle means no order has been loaded yet.
	StateIdle State = iota
	// StateLoading means the initial read (or a retry of it) is in flight.
	StateLoading
	// StateReady means the last known-good order is available for display.
	StateReady
	// StateUpdating means a mutation is in flight; the previous order stays
	// on display so the view never blanks out.
	StateUpdating
	// StateDeleting means a delete is in flight.
	StateDeleting
	// StateErrored means the load failed; a retry re-enters StateLoading.
	StateErrored
	// StateGone means the order was deleted; no further operations are valid.
	StateGone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateUpdating:
		return "updating"
	case StateDeleting:
		return "deleting"
	case StateErrored:
		return "errored"
	case StateGone:
		return "gone"
	}
	return "unknown"
}

// Manager owns the currently viewed order and keeps it consistent across
// read-then-mutate-then-reread flows.
//
// Operations on one manager are serialized: a mutation attempted while
// another operation is in flight is rejected synchronously with ErrBusy,
// before any request goes out. The server's returned representation always
// replaces local state wholesale; a failed mutation reverts to the last
// known-good order with nothing partially applied. Nothing is retried
// automatically.
type Manager struct {
	repo *Repository
	log  zerolog.Logger

	mu      sync.Mutex
	state   State
	orderID string
	order   *Order
	lastErr error
	// epoch invalidates in-flight completions after Detach: a completion
	// whose captured epoch is stale must not touch state.
	epoch int
}

// NewManager returns an idle manager over the given repository.
func NewManager(repo *Repository) *Manager {
	return &Manager{
		repo:  repo,
		state: StateIdle,
		log:   logger.WithComponent("orders.lifecycle"),
	}
}

// State reports the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Order returns the last known-good order, or nil when none is loaded. During
// an in-flight update this is still the previous order, so views keep
// rendering real data instead of a blank frame.
func (m *Manager) Order() *Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order
}

// Err returns the most recently surfaced error, or nil after a successful
// operation.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Load fetches the order and makes it the managed one. Calling Load again
// retries a failed load or refreshes a loaded order.
func (m *Manager) Load(ctx context.Context, id string) (*Order, error) {
	m.mu.Lock()
	switch m.state {
	case StateGone:
		m.mu.Unlock()
		return nil, ErrGone
	case StateLoading, StateUpdating, StateDeleting:
		m.mu.Unlock()
		return nil, ErrBusy
	}
	m.state = StateLoading
	m.orderID = id
	m.lastErr = nil
	epoch := m.epoch
	m.mu.Unlock()

	order, err := m.repo.Get(ctx, id)
	if err == nil {
		err = CheckItemTotals(order)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.epoch != epoch {
		return nil, ErrDetached
	}
	if err != nil {
		m.state = StateErrored
		m.order = nil
		m.lastErr = err
		m.log.Warn().Err(err).Str("order_id", id).Msg("Load failed")
		return nil, err
	}
	m.state = StateReady
	m.order = order
	return order, nil
}

// SubmitUpdate sends a partial update for the managed order.
//
// While the request is in flight the previous order remains exposed. On
// success the server's returned order replaces local state entirely; on
// failure the previous order stays in place and the error is surfaced. A
// second SubmitUpdate while one is in flight fails with ErrBusy before any
// request is sent.
//
// The server offers no version or ETag check, so two operators editing the
// same order race last-write-wins.
func (m *Manager) SubmitUpdate(ctx context.Context, update OrderUpdate) (*Order, error) {
	m.mu.Lock()
	switch m.state {
	case StateGone:
		m.mu.Unlock()
		return nil, ErrGone
	case StateLoading, StateUpdating, StateDeleting:
		m.mu.Unlock()
		return nil, ErrBusy
	case StateReady:
	default:
		m.mu.Unlock()
		return nil, ErrNotLoaded
	}
	prev := m.order
	m.state = StateUpdating
	epoch := m.epoch
	id := m.orderID
	m.mu.Unlock()

	updated, err := m.repo.Update(ctx, id, update)
	if err == nil {
		err = CheckItemTotals(updated)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.epoch != epoch {
		return nil, ErrDetached
	}
	if err != nil {
		m.state = StateReady
		m.order = prev
		m.lastErr = err
		m.log.Warn().Err(err).Str("order_id", id).Msg("Update failed, keeping previous order")
		return nil, err
	}
	m.state = StateReady
	m.order = updated
	m.lastErr = nil
	return updated, nil
}

// Delete removes the managed order. After success the manager reports
// StateGone and rejects everything else; after failure it returns to its
// previous state with the error surfaced and the order still present.
func (m *Manager) Delete(ctx context.Context) error {
	m.mu.Lock()
	switch m.state {
	case StateGone:
		m.mu.Unlock()
		return ErrGone
	case StateLoading, StateUpdating, StateDeleting:
		m.mu.Unlock()
		return ErrBusy
	case StateReady, StateErrored:
	default:
		m.mu.Unlock()
		return ErrNotLoaded
	}
	prevState := m.state
	m.state = StateDeleting
	epoch := m.epoch
	id := m.orderID
	m.mu.Unlock()

	err := m.repo.Delete(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.epoch != epoch {
		return ErrDetached
	}
	if err != nil {
		m.state = prevState
		m.lastErr = err
		m.log.Warn().Err(err).Str("order_id", id).Msg("Delete failed")
		return err
	}
	m.state = StateGone
	m.order = nil
	m.lastErr = nil
	return nil
}

// GenerateBill fetches the bill projection for the managed order. This is a
// parallel, short-lived read scoped to whichever view asked for it: it never
// transitions the lifecycle, and a failure here leaves the underlying order
// untouched.
func (m *Manager) GenerateBill(ctx context.Context) (*BillProjection, error) {
	m.mu.Lock()
	state := m.state
	id := m.orderID
	m.mu.Unlock()

	switch state {
	case StateReady:
	case StateGone:
		return nil, ErrGone
	default:
		return nil, ErrNotLoaded
	}
	return m.repo.GenerateBill(ctx, id)
}

// Detach discards the effect of any in-flight operation, for when the view
// that owns this manager goes away. Requests already on the wire are not
// aborted; their results simply no longer touch state.
func (m *Manager) Detach() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.epoch++
}
