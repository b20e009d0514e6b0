package timing

import (
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/eventkit/sim/hooking"
)

// EventLogger is a hook that logs every event right before it is handled.
type EventLogger struct {
	logger logrus.FieldLogger
}

// NewEventLogger returns an EventLogger that writes into the given logger at
// debug level.
func NewEventLogger(logger logrus.FieldLogger) *EventLogger {
	h := new(EventLogger)

	h.logger = logger

	return h
}

// Func writes the event information into the logger.
func (h *EventLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(*EventNotice)
	if !ok {
		return
	}

	h.logger.WithFields(logrus.Fields{
		"time": evt.Time(),
		"type": evt.Type(),
		"seq":  evt.Seq(),
	}).Debug("dispatching event")
}
