package timing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/eventkit/sim/hooking"
)

var _ = Describe("EventCounter", func() {
	var c *EventCounter

	after := func(t EventType) hooking.HookCtx {
		return hooking.HookCtx{
			Pos:  HookPosAfterEvent,
			Item: NewEventNotice(0, t, nil),
		}
	}

	BeforeEach(func() {
		c = NewEventCounter()
	})

	It("should count handled events by type", func() {
		c.Func(after("arrival"))
		c.Func(after("departure"))
		c.Func(after("arrival"))

		Expect(c.Types()).To(Equal([]EventType{"arrival", "departure"}))
		Expect(c.Count("arrival")).To(Equal(uint64(2)))
		Expect(c.Count("departure")).To(Equal(uint64(1)))
		Expect(c.Count("other")).To(BeZero())
		Expect(c.Total()).To(Equal(uint64(3)))
	})

	It("should count each event once", func() {
		c.Func(hooking.HookCtx{
			Pos:  HookPosBeforeEvent,
			Item: NewEventNotice(0, "arrival", nil),
		})
		c.Func(hooking.HookCtx{Pos: HookPosAfterEvent, Item: 42})

		Expect(c.Total()).To(BeZero())
	})

	It("should reset", func() {
		c.Func(after("arrival"))

		c.Reset()

		Expect(c.Total()).To(BeZero())
		Expect(c.Types()).To(BeEmpty())
	})
})
