//go:build linux

package parkrw

import (
	"math"
	"time"

	"golang.org/x/sys/unix"
)

// Cell is a 32-bit word with atomic access plus OS-assisted parking,
// backed on Linux by SYS_futex.
type Cell struct {
	word
}

// Wait parks the calling goroutine while Load() == expected. Returns on
// notify or spuriously; callers must re-check the condition in a loop.
func (c *Cell) Wait(expected uint32) {
	for {
		err := unix.Futex(c.addr(), unix.FUTEX_WAIT, expected, nil, nil, 0)
		if err == unix.EINTR {
			continue
		}
		return
	}
}

// WaitUntil is like Wait but gives up at deadline, returning false. A
// deadline that has already passed never parks: it returns
// Load() == expected immediately.
func (c *Cell) WaitUntil(expected uint32, deadline time.Time) bool {
	for {
		d := time.Until(deadline)
		if d <= 0 {
			return c.Load() == expected
		}
		ts := unix.NsecToTimespec(d.Nanoseconds())
		err := unix.Futex(c.addr(), unix.FUTEX_WAIT, expected, &ts, nil, 0)
		switch err {
		case nil, unix.EAGAIN:
			return true
		case unix.ETIMEDOUT:
			return false
		case unix.EINTR:
			continue
		default:
			return false
		}
	}
}

// WaitFor is WaitUntil relative to now. A non-positive duration never
// parks: it returns Load() == expected immediately.
func (c *Cell) WaitFor(expected uint32, d time.Duration) bool {
	if d <= 0 {
		return c.Load() == expected
	}
	return c.WaitUntil(expected, time.Now().Add(d))
}

// NotifyOne wakes at most one parked waiter. Valid, and a no-op, when no
// goroutine is parked.
func (c *Cell) NotifyOne() {
	_ = unix.Futex(c.addr(), unix.FUTEX_WAKE, 1, nil, nil, 0)
}

// NotifyAll wakes every parked waiter.
func (c *Cell) NotifyAll() {
	_ = unix.Futex(c.addr(), unix.FUTEX_WAKE, uint32(math.MaxInt32), nil, nil, 0)
}
