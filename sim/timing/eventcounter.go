package timing

import "github.com/sarchlab/eventkit/sim/hooking"

// EventCounter is a hook that counts handled events by type.
type EventCounter struct {
	types  []EventType
	counts map[EventType]uint64
	total  uint64
}

// NewEventCounter creates an EventCounter with all counts at zero.
func NewEventCounter() *EventCounter {
	return &EventCounter{
		counts: make(map[EventType]uint64),
	}
}

// Func counts an event once it has been handled.
func (c *EventCounter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosAfterEvent {
		return
	}

	evt, ok := ctx.Item.(*EventNotice)
	if !ok {
		return
	}

	if _, seen := c.counts[evt.Type()]; !seen {
		c.types = append(c.types, evt.Type())
	}

	c.counts[evt.Type()]++
	c.total++
}

// Types returns the event types seen, in the order they were first seen.
func (c *EventCounter) Types() []EventType {
	return c.types
}

// Count returns how many events of a type were handled.
func (c *EventCounter) Count(t EventType) uint64 {
	return c.counts[t]
}

// Total returns how many events were handled.
func (c *EventCounter) Total() uint64 {
	return c.total
}

// Reset sets every count back to zero.
func (c *EventCounter) Reset() {
	c.types = nil
	c.counts = make(map[EventType]uint64)
	c.total = 0
}
