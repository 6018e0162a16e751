package scheduler

// Mailbox is an ordered, unbounded FIFO of messages delivered to a single
// recipient. It models the per-Router inbound queue of spec.md §3/§5: in
// the reference simulator a mailbox "get" suspends the caller until a
// "put" arrives; here the scheduler itself already serializes delivery
// (After schedules a continuation for a future timestamp instead of a
// blocking coroutine, per the REDESIGN FLAGS in spec.md §9), so Mailbox
// only needs to preserve insertion order, not actually block.
//
// Adapted from transitorykris-kbgp/queue/queue.go, generalized from a
// fixed []byte element type to any T.
type Mailbox[T any] struct {
	items []T
}

// NewMailbox creates an empty Mailbox.
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{items: make([]T, 0, 8)}
}

// Put appends msg to the end of the mailbox.
func (m *Mailbox[T]) Put(msg T) {
	m.items = append(m.items, msg)
}

// Get removes and returns the oldest message in the mailbox. It panics if
// the mailbox is empty; callers only call Get after checking Len, which is
// always true here because every Get happens inside the same scheduled
// action that just Put the message (see router.Router.handleDelivery).
func (m *Mailbox[T]) Get() T {
	msg := m.items[0]
	m.items = m.items[1:]
	return msg
}

// Len reports the number of messages currently queued.
func (m *Mailbox[T]) Len() int {
	return len(m.items)
}
