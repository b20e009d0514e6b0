// Package id generates identifiers used by the simulation kernel.
package id

import (
	"sync/atomic"

	"github.com/rs/xid"
)

// Sequence hands out strictly increasing numbers. Calendars use it to break
// ties between events scheduled for the same time.
type Sequence interface {
	// Next returns the next number. The first number is 1.
	Next() uint64
}

// NewSequence returns a sequence starting at 1.
func NewSequence() Sequence {
	return &sequentialGenerator{}
}

type sequentialGenerator struct {
	next uint64
}

func (g *sequentialGenerator) Next() uint64 {
	return atomic.AddUint64(&g.next, 1)
}

// NewRunID returns a globally unique identifier for a simulation run. Unlike
// sequence numbers, run IDs are not deterministic.
func NewRunID() string {
	return xid.New().String()
}
