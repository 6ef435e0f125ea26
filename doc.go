// Copyright 2020 Nathan Taylor (nbtaylor@gmail.com)
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package parkrw implements a writer-preferring reader-writer lock on top of
// the OS process-parking primitive (futex on Linux, WaitOnAddress on Windows)
// instead of on top of sync.Mutex/sync.Cond. On other GOOS targets the
// parking primitive falls back to an address-striped table of sync.Cond.
//
// ## Overview
//
// The lock keeps two 32-bit counters instead of one:
//
//	W (writer-demand): the number of goroutines currently acquiring or
//	   holding exclusive ownership.
//	H (holding): the number of active shared holders, or the sentinel
//	   WRITING (1<<31) when a single exclusive holder has been granted.
//
// A reader is only allowed to register itself in H while W == 0; as soon as
// any goroutine begins an exclusive acquire, it bumps W before doing
// anything else, and every subsequent reader that observes W != 0 parks
// instead of entering. This is what makes the lock writer-preferring: once a
// writer is in line, no new reader can cut in front of it, at the cost of
// allowing an unbroken stream of writers to starve readers indefinitely.
// That tradeoff is intentional and is not configurable.
//
// Readers park on W; writers park on H. Splitting the two parking addresses
// means a release only has to wake the goroutines that could plausibly make
// progress: an exclusive release notifies every reader when it was the last
// writer in line, or wakes exactly one contending writer otherwise; a shared
// release wakes a writer only once the holder count has reached zero.
//
// Both counters, and the parking primitive that backs the blocking paths,
// are exposed as SharedMutex. SharedTimedMutex adds bounded-wait variants.
// Guarded[T] and TimedGuarded[T] wrap a value and one of these locks and
// hand out scope-bound handles (ExclusiveHandle, ExclusiveViewHandle,
// SharedHandle) instead of requiring callers to pair Lock/Unlock calls by
// hand.
package parkrw
