package parkrw

import "time"

// Guarded pairs a value of type T with a SharedMutex and only lets callers
// reach the value through a handle, so the lock can't be forgotten on any
// exit path (including a panicking one, if the handle is released with
// defer).
//
// A Guarded must not be copied after first use, for the same reason as
// SharedMutex: outstanding handles hold a pointer back to it, and
// relocating it would invalidate them.
type Guarded[T any] struct {
	val T
	mu  SharedMutex
}

// NewGuarded wraps val in a Guarded[T].
func NewGuarded[T any](val T) *Guarded[T] {
	return &Guarded[T]{val: val}
}

// Lock acquires exclusive mutable access, blocking until available.
func (g *Guarded[T]) Lock() *ExclusiveHandle[T] {
	g.mu.Lock()
	return &ExclusiveHandle[T]{g: g}
}

// TryLock attempts to acquire exclusive mutable access without blocking,
// returning nil on failure.
func (g *Guarded[T]) TryLock() *ExclusiveHandle[T] {
	if !g.mu.TryLock() {
		return nil
	}
	return &ExclusiveHandle[T]{g: g}
}

// LockConst acquires exclusive read-only access, blocking until available.
func (g *Guarded[T]) LockConst() *ExclusiveViewHandle[T] {
	g.mu.Lock()
	return &ExclusiveViewHandle[T]{g: g}
}

// TryLockConst attempts to acquire exclusive read-only access without
// blocking, returning nil on failure.
func (g *Guarded[T]) TryLockConst() *ExclusiveViewHandle[T] {
	if !g.mu.TryLock() {
		return nil
	}
	return &ExclusiveViewHandle[T]{g: g}
}

// LockShared acquires shared read-only access, blocking until available.
func (g *Guarded[T]) LockShared() *SharedHandle[T] {
	g.mu.RLock()
	return &SharedHandle[T]{g: g}
}

// TryLockShared attempts to acquire shared read-only access without
// blocking, returning nil on failure.
func (g *Guarded[T]) TryLockShared() *SharedHandle[T] {
	if !g.mu.TryRLock() {
		return nil
	}
	return &SharedHandle[T]{g: g}
}

// TimedGuarded is a Guarded[T] built on SharedTimedMutex, adding
// bounded-wait acquisition on top of every Guarded[T] operation.
type TimedGuarded[T any] struct {
	val T
	mu  SharedTimedMutex
}

// NewTimedGuarded wraps val in a TimedGuarded[T].
func NewTimedGuarded[T any](val T) *TimedGuarded[T] {
	return &TimedGuarded[T]{val: val}
}

func (g *TimedGuarded[T]) Lock() *ExclusiveHandle[T] {
	g.mu.Lock()
	return &ExclusiveHandle[T]{tg: g}
}

func (g *TimedGuarded[T]) TryLock() *ExclusiveHandle[T] {
	if !g.mu.TryLock() {
		return nil
	}
	return &ExclusiveHandle[T]{tg: g}
}

// TryLockFor attempts to acquire exclusive mutable access, blocking at
// most for d, returning nil on timeout.
func (g *TimedGuarded[T]) TryLockFor(d time.Duration) *ExclusiveHandle[T] {
	return g.TryLockUntil(time.Now().Add(d))
}

// TryLockUntil attempts to acquire exclusive mutable access, blocking at
// most until deadline, returning nil on timeout.
func (g *TimedGuarded[T]) TryLockUntil(deadline time.Time) *ExclusiveHandle[T] {
	if !g.mu.TryLockUntil(deadline) {
		return nil
	}
	return &ExclusiveHandle[T]{tg: g}
}

func (g *TimedGuarded[T]) LockConst() *ExclusiveViewHandle[T] {
	g.mu.Lock()
	return &ExclusiveViewHandle[T]{tg: g}
}

func (g *TimedGuarded[T]) TryLockConst() *ExclusiveViewHandle[T] {
	if !g.mu.TryLock() {
		return nil
	}
	return &ExclusiveViewHandle[T]{tg: g}
}

func (g *TimedGuarded[T]) TryLockConstFor(d time.Duration) *ExclusiveViewHandle[T] {
	return g.TryLockConstUntil(time.Now().Add(d))
}

func (g *TimedGuarded[T]) TryLockConstUntil(deadline time.Time) *ExclusiveViewHandle[T] {
	if !g.mu.TryLockUntil(deadline) {
		return nil
	}
	return &ExclusiveViewHandle[T]{tg: g}
}

func (g *TimedGuarded[T]) LockShared() *SharedHandle[T] {
	g.mu.RLock()
	return &SharedHandle[T]{tg: g}
}

func (g *TimedGuarded[T]) TryLockShared() *SharedHandle[T] {
	if !g.mu.TryRLock() {
		return nil
	}
	return &SharedHandle[T]{tg: g}
}

func (g *TimedGuarded[T]) TryLockSharedFor(d time.Duration) *SharedHandle[T] {
	return g.TryLockSharedUntil(time.Now().Add(d))
}

func (g *TimedGuarded[T]) TryLockSharedUntil(deadline time.Time) *SharedHandle[T] {
	if !g.mu.TryRLockUntil(deadline) {
		return nil
	}
	return &SharedHandle[T]{tg: g}
}

// ExclusiveHandle grants mutable access to a Guarded[T] or TimedGuarded[T]
// value for as long as it is held. Exactly one of g/tg is non-nil,
// depending on which wrapper produced it. A zero-value ExclusiveHandle (or
// one that has been released) is "null": Get panics, Release is a no-op.
type ExclusiveHandle[T any] struct {
	g        *Guarded[T]
	tg       *TimedGuarded[T]
	released bool
}

// Get returns a pointer to the guarded value for mutation. Calling Get on
// a released handle panics.
func (h *ExclusiveHandle[T]) Get() *T {
	if h.released {
		panic("parkrw: Get on a released ExclusiveHandle")
	}
	if h.g != nil {
		return &h.g.val
	}
	return &h.tg.val
}

// Release gives up the handle's exclusive mutable hold. Release on a nil,
// already-released, or zero-value handle is a no-op.
func (h *ExclusiveHandle[T]) Release() {
	if h == nil || h.released || (h.g == nil && h.tg == nil) {
		return
	}
	if h.g != nil {
		h.g.mu.Unlock()
	} else {
		h.tg.mu.Unlock()
	}
	h.released = true
}

// Const move-converts this handle into an ExclusiveViewHandle holding the
// same lock mode: it is not a relocking event, only a narrowing of the
// view into the value. The receiver becomes released (without unlocking)
// since ownership has moved to the returned handle.
func (h *ExclusiveHandle[T]) Const() *ExclusiveViewHandle[T] {
	if h.released {
		panic("parkrw: Const on a released ExclusiveHandle")
	}
	v := &ExclusiveViewHandle[T]{g: h.g, tg: h.tg}
	h.released = true
	h.g = nil
	h.tg = nil
	return v
}

// ExclusiveViewHandle grants read-only access under an exclusive hold: the
// same lock mode as ExclusiveHandle, but a narrower (read-only) view,
// either because it was acquired via LockConst or produced by
// ExclusiveHandle.Const.
type ExclusiveViewHandle[T any] struct {
	g        *Guarded[T]
	tg       *TimedGuarded[T]
	released bool
}

// Get returns a read-only pointer to the guarded value. Calling Get on a
// released handle panics.
func (h *ExclusiveViewHandle[T]) Get() *T {
	if h.released {
		panic("parkrw: Get on a released ExclusiveViewHandle")
	}
	if h.g != nil {
		return &h.g.val
	}
	return &h.tg.val
}

// Release gives up the handle's exclusive hold. Release on a nil,
// already-released, or zero-value handle is a no-op.
func (h *ExclusiveViewHandle[T]) Release() {
	if h == nil || h.released || (h.g == nil && h.tg == nil) {
		return
	}
	if h.g != nil {
		h.g.mu.Unlock()
	} else {
		h.tg.mu.Unlock()
	}
	h.released = true
}

// SharedHandle grants read-only access alongside any number of other
// SharedHandles on the same wrapper. Unlike ExclusiveHandle/
// ExclusiveViewHandle, it can be duplicated: Clone acquires an additional,
// independent shared hold on the same lock.
type SharedHandle[T any] struct {
	g        *Guarded[T]
	tg       *TimedGuarded[T]
	released bool
}

// Get returns a read-only pointer to the guarded value. Calling Get on a
// released handle panics.
func (h *SharedHandle[T]) Get() *T {
	if h.released {
		panic("parkrw: Get on a released SharedHandle")
	}
	if h.g != nil {
		return &h.g.val
	}
	return &h.tg.val
}

// Clone acquires another shared hold on the same lock, blocking on writer
// demand exactly as LockShared would, and returns an independent handle
// for it. This is the only handle type with a Clone method: the exclusive
// handle types deliberately have none, so "copy is forbidden for exclusive
// modes" is a compile-time fact rather than a runtime check.
func (h *SharedHandle[T]) Clone() *SharedHandle[T] {
	if h.released {
		panic("parkrw: Clone on a released SharedHandle")
	}
	if h.g != nil {
		h.g.mu.RLock()
		return &SharedHandle[T]{g: h.g}
	}
	h.tg.mu.RLock()
	return &SharedHandle[T]{tg: h.tg}
}

// Release gives up this handle's shared hold. If other SharedHandles on
// the same wrapper remain outstanding, the lock stays held in shared mode
// on their behalf. Release on a nil, already-released, or zero-value
// handle is a no-op.
func (h *SharedHandle[T]) Release() {
	if h == nil || h.released || (h.g == nil && h.tg == nil) {
		return
	}
	if h.g != nil {
		h.g.mu.RUnlock()
	} else {
		h.tg.mu.RUnlock()
	}
	h.released = true
}
