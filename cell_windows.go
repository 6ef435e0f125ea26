//go:build windows

package parkrw

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Cell is a 32-bit word with atomic access plus OS-assisted parking,
// backed on Windows by WaitOnAddress/WakeByAddressSingle/WakeByAddressAll
// (api-ms-win-core-synch-l1-2-0.dll). These three entry points have no
// higher-level wrapper in golang.org/x/sys/windows, so they're resolved the
// same way that package resolves any other unwrapped Win32 call: a lazy DLL
// handle plus a raw Syscall.
type Cell struct {
	word
}

var (
	modSynch             = windows.NewLazySystemDLL("api-ms-win-core-synch-l1-2-0.dll")
	procWaitOnAddress    = modSynch.NewProc("WaitOnAddress")
	procWakeByAddrSingle = modSynch.NewProc("WakeByAddressSingle")
	procWakeByAddrAll    = modSynch.NewProc("WakeByAddressAll")
)

func waitOnAddress(addr *uint32, compare *uint32, size uintptr, timeoutMs uint32) error {
	r1, _, err := procWaitOnAddress.Call(
		uintptr(unsafe.Pointer(addr)),
		uintptr(unsafe.Pointer(compare)),
		size,
		uintptr(timeoutMs),
	)
	if r1 == 0 {
		return err
	}
	return nil
}

func wakeByAddressSingle(addr *uint32) {
	_, _, _ = procWakeByAddrSingle.Call(uintptr(unsafe.Pointer(addr)))
}

func wakeByAddressAll(addr *uint32) {
	_, _, _ = procWakeByAddrAll.Call(uintptr(unsafe.Pointer(addr)))
}

// Wait parks the calling goroutine while Load() == expected. Returns on
// notify or spuriously; callers must re-check the condition in a loop.
func (c *Cell) Wait(expected uint32) {
	exp := expected
	for {
		err := waitOnAddress(c.addr(), &exp, unsafe.Sizeof(exp), windows.INFINITE)
		if err == windows.ERROR_TIMEOUT {
			continue
		}
		return
	}
}

// WaitUntil is like Wait but gives up at deadline, returning false. A
// deadline that has already passed never parks: it returns
// Load() == expected immediately.
//
// Sub-millisecond remainders are rounded up to 1ms: WaitOnAddress only
// accepts a millisecond timeout, and this module promises "returns failure
// no earlier than the requested instant", never earlier.
func (c *Cell) WaitUntil(expected uint32, deadline time.Time) bool {
	exp := expected
	for {
		d := time.Until(deadline)
		if d <= 0 {
			return c.Load() == expected
		}
		ms := d.Milliseconds()
		if ms <= 0 {
			ms = 1
		}
		err := waitOnAddress(c.addr(), &exp, unsafe.Sizeof(exp), uint32(ms))
		switch err {
		case nil:
			return true
		case windows.ERROR_TIMEOUT:
			if !time.Now().Before(deadline) {
				return false
			}
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
	wakeByAddressSingle(c.addr())
}

// NotifyAll wakes every parked waiter.
func (c *Cell) NotifyAll() {
	wakeByAddressAll(c.addr())
}
