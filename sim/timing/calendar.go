package timing

import (
	"container/heap"
	"container/list"
	"fmt"
	"math"

	"github.com/sarchlab/eventkit/sim/id"
)

// A Calendar holds pending event notices ordered by time. Notices with the
// same time come out in the order they were scheduled. Calendars are not safe
// for concurrent use.
type Calendar interface {
	// Schedule inserts a notice. A notice can be scheduled only once.
	Schedule(evt *EventNotice)

	// RemoveEarliest removes and returns the earliest notice, or nil if the
	// calendar is empty.
	RemoveEarliest() *EventNotice

	// Peek returns the earliest notice without removing it, or nil.
	Peek() *EventNotice

	// Len returns the number of pending notices.
	Len() int

	// Clear discards every pending notice.
	Clear()
}

func mustBeSchedulable(evt *EventNotice) {
	if evt == nil {
		panic("timing: cannot schedule a nil event notice")
	}

	if math.IsNaN(evt.time) {
		panic(fmt.Sprintf("timing: event %q has NaN time", evt.eventType))
	}

	if evt.seq != 0 {
		panic(fmt.Sprintf("timing: event %q is already scheduled", evt.eventType))
	}
}

// HeapCalendar is a Calendar backed by a binary heap keyed on time and
// insertion sequence.
type HeapCalendar struct {
	seq    id.Sequence
	events noticeHeap
}

// NewCalendar creates an empty heap-backed calendar.
func NewCalendar() *HeapCalendar {
	c := &HeapCalendar{
		seq:    id.NewSequence(),
		events: make(noticeHeap, 0),
	}
	heap.Init(&c.events)

	return c
}

// Schedule inserts a notice in O(log n).
func (c *HeapCalendar) Schedule(evt *EventNotice) {
	mustBeSchedulable(evt)

	evt.seq = c.seq.Next()
	heap.Push(&c.events, evt)
}

// RemoveEarliest removes and returns the earliest notice, or nil.
func (c *HeapCalendar) RemoveEarliest() *EventNotice {
	if c.events.Len() == 0 {
		return nil
	}

	return heap.Pop(&c.events).(*EventNotice)
}

// Peek returns the earliest notice without removing it, or nil.
func (c *HeapCalendar) Peek() *EventNotice {
	if c.events.Len() == 0 {
		return nil
	}

	return c.events[0]
}

// Len returns the number of pending notices.
func (c *HeapCalendar) Len() int {
	return c.events.Len()
}

// Clear discards every pending notice.
func (c *HeapCalendar) Clear() {
	clear(c.events)
	c.events = c.events[:0]
}

type noticeHeap []*EventNotice

func (h noticeHeap) Len() int {
	return len(h)
}

// Less orders by time, then by the order of scheduling.
func (h noticeHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}

	return h[i].seq < h[j].seq
}

func (h noticeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *noticeHeap) Push(x any) {
	*h = append(*h, x.(*EventNotice))
}

func (h *noticeHeap) Pop() any {
	old := *h
	n := len(old)
	evt := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]

	return evt
}

// InsertionCalendar is a Calendar that keeps a sorted linked list and inserts
// by scanning from the head. It is cheap for the handful of pending events
// most small models have.
type InsertionCalendar struct {
	seq id.Sequence
	l   *list.List
}

// NewInsertionCalendar creates an empty insertion-sorted calendar.
func NewInsertionCalendar() *InsertionCalendar {
	return &InsertionCalendar{
		seq: id.NewSequence(),
		l:   list.New(),
	}
}

// Schedule inserts a notice after every notice with the same or an earlier
// time.
func (c *InsertionCalendar) Schedule(evt *EventNotice) {
	mustBeSchedulable(evt)

	evt.seq = c.seq.Next()

	back := c.l.Back()
	if back == nil || back.Value.(*EventNotice).time <= evt.time {
		c.l.PushBack(evt)
		return
	}

	var ele *list.Element
	for ele = c.l.Front(); ele != nil; ele = ele.Next() {
		if ele.Value.(*EventNotice).time > evt.time {
			break
		}
	}

	c.l.InsertBefore(evt, ele)
}

// RemoveEarliest removes and returns the head of the list, or nil.
func (c *InsertionCalendar) RemoveEarliest() *EventNotice {
	front := c.l.Front()
	if front == nil {
		return nil
	}

	return c.l.Remove(front).(*EventNotice)
}

// Peek returns the head of the list without removing it, or nil.
func (c *InsertionCalendar) Peek() *EventNotice {
	front := c.l.Front()
	if front == nil {
		return nil
	}

	return front.Value.(*EventNotice)
}

// Len returns the number of pending notices.
func (c *InsertionCalendar) Len() int {
	return c.l.Len()
}

// Clear discards every pending notice.
func (c *InsertionCalendar) Clear() {
	c.l.Init()
}
