// Package tick provides the per-step queue of discrete move events.
package tick

import "github.com/samber/oops"

// DefaultCapacity allows one event per direction pressed in a single frame.
const DefaultCapacity = 4

// ErrCodeChannelFull is returned when more events are emitted in a step
// than the channel can hold.
const ErrCodeChannelFull = "TICK_CHANNEL_FULL"

// Event marks that the player completed one grid move.
type Event struct{}

// Channel is a bounded FIFO of tick events owned by the step executor.
// It is written by player movement and drained once per step.
type Channel struct {
	events   []Event
	capacity int
}

// NewChannel creates a channel holding at most capacity events.
// A non-positive capacity falls back to DefaultCapacity.
func NewChannel(capacity int) *Channel {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Channel{
		events:   make([]Event, 0, capacity),
		capacity: capacity,
	}
}

// Emit appends one event.
func (c *Channel) Emit(ev Event) error {
	if len(c.events) >= c.capacity {
		return oops.Code(ErrCodeChannelFull).
			With("capacity", c.capacity).
			Errorf("tick channel full")
	}
	c.events = append(c.events, ev)
	return nil
}

// Drain removes and returns every pending event in emission order.
func (c *Channel) Drain() []Event {
	if len(c.events) == 0 {
		return nil
	}
	drained := make([]Event, len(c.events))
	copy(drained, c.events)
	c.events = c.events[:0]
	return drained
}

// Clear drops any pending events.
func (c *Channel) Clear() {
	c.events = c.events[:0]
}

// Len returns the number of pending events.
func (c *Channel) Len() int {
	return len(c.events)
}

// Cap returns the maximum number of pending events.
func (c *Channel) Cap() int {
	return c.capacity
}
