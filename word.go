package parkrw

import "sync/atomic"

// word is the plain atomic-counter half of a Cell: load/store/fetch-add/
// fetch-sub/compare-exchange with no OS-assisted parking. Embedding it lets
// every GOOS build of Cell share one implementation of the counter
// operations while each platform file supplies its own Wait/WaitFor/
// WaitUntil/NotifyOne/NotifyAll against the same underlying uint32 address
// (futex and WaitOnAddress both need the real address of the word, which
// rules out sync/atomic's Uint32 wrapper type: its backing field is
// unexported, so a raw uint32 plus the atomic free functions is used
// instead).
//
// fetch-add and fetch-sub return the value *after* the update, not before;
// every caller in this package is written against that convention.
type word struct {
	v uint32
}

func (w *word) addr() *uint32 {
	return &w.v
}

// Load returns the current value.
func (w *word) Load() uint32 {
	return atomic.LoadUint32(&w.v)
}

// Store sets the value unconditionally.
func (w *word) Store(val uint32) {
	atomic.StoreUint32(&w.v, val)
}

// Add adds delta and returns the new value.
func (w *word) Add(delta uint32) uint32 {
	return atomic.AddUint32(&w.v, delta)
}

// Sub subtracts delta and returns the new value.
func (w *word) Sub(delta uint32) uint32 {
	return atomic.AddUint32(&w.v, ^(delta - 1))
}

// CompareAndSwap sets the value to new if it currently equals old.
func (w *word) CompareAndSwap(old, new uint32) bool {
	return atomic.CompareAndSwapUint32(&w.v, old, new)
}
