package core

// Messages is an append-only queue of application messages produced while
// handling events. Order of Push calls is preserved.
type Messages[M any] struct {
	items []M
}

// Push appends msg.
func (m *Messages[M]) Push(msg M) {
	m.items = append(m.items, msg)
}

// All returns the queued messages in order.
func (m *Messages[M]) All() []M {
	return m.items
}

// Len returns the number of queued messages.
func (m *Messages[M]) Len() int {
	return len(m.items)
}

// Drain returns the queued messages and empties the queue.
func (m *Messages[M]) Drain() []M {
	items := m.items
	m.items = nil
	return items
}
