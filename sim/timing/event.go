// Package timing defines simulated time, event notices and the calendars that
// order them.
package timing

import (
	"github.com/sarchlab/eventkit/sim/hooking"
)

// VTimeInSec is a point in simulated time.
type VTimeInSec = float64

// TimeTeller can be used to get the current simulated time.
type TimeTeller interface {
	Now() VTimeInSec
}

// EventType tags what an event notice means to the model. The kernel never
// interprets it beyond looking up the handler.
type EventType string

// HookPosBeforeEvent is a hook position that triggers before handling an event.
var HookPosBeforeEvent = &hooking.HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent is a hook position that triggers after handling an event.
var HookPosAfterEvent = &hooking.HookPos{Name: "AfterEvent"}

// An EventNotice is a future occurrence waiting on a calendar. It does not
// change after creation, except for the sequence number, which the calendar
// assigns when the notice is scheduled. A notice can be scheduled only once.
type EventNotice struct {
	time      VTimeInSec
	eventType EventType
	payload   any
	seq       uint64
}

// NewEventNotice creates an event notice for the given absolute time.
func NewEventNotice(
	t VTimeInSec,
	eventType EventType,
	payload any,
) *EventNotice {
	return &EventNotice{
		time:      t,
		eventType: eventType,
		payload:   payload,
	}
}

// Time returns when the event happens.
func (e *EventNotice) Time() VTimeInSec {
	return e.time
}

// Type returns the event type tag.
func (e *EventNotice) Type() EventType {
	return e.eventType
}

// Payload returns the caller-owned data attached to the event, or nil.
func (e *EventNotice) Payload() any {
	return e.payload
}

// Seq returns the insertion sequence number. It is zero until the notice is
// scheduled.
func (e *EventNotice) Seq() uint64 {
	return e.seq
}

// PayloadAs recovers a typed payload from an event notice.
func PayloadAs[T any](e *EventNotice) (T, bool) {
	v, ok := e.payload.(T)
	return v, ok
}
