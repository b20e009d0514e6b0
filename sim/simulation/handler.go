package simulation

import (
	"errors"

	"github.com/sarchlab/eventkit/sim/timing"
)

// ErrNoHandler is returned by Run when an event has no registered handler.
var ErrNoHandler = errors.New("no handler registered for event type")

// A Handler carries out the model logic of one event type.
type Handler interface {
	Handle(evt *timing.EventNotice) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(evt *timing.EventNotice) error

// Handle calls f(evt).
func (f HandlerFunc) Handle(evt *timing.EventNotice) error {
	return f(evt)
}
