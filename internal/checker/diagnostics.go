package checker

import "sync"

// Diagnostics is an append-only FIFO for non-rule errors. Checks enqueue
// across repeated runs; one consumer drains per validation cycle.
type Diagnostics struct {
	mu   sync.Mutex
	msgs []string
}

// Push appends a diagnostic message.
func (d *Diagnostics) Push(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.msgs = append(d.msgs, msg)
}

// Drain returns all queued messages in insertion order and empties the
// queue.
func (d *Diagnostics) Drain() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	msgs := d.msgs
	d.msgs = nil
	return msgs
}

// Empty reports whether the queue holds no messages.
func (d *Diagnostics) Empty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.msgs) == 0
}
