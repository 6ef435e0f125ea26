package parkrw

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestWordAddSubRoundTrip mirrors the teacher's TestExtractIXIdempotency
// family: randomized round-trip checks on the bit-twiddling primitive that
// the rest of the package is built on.
func TestWordAddSubRoundTrip(t *testing.T) {
	seed := time.Now().UTC().UnixNano()
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 100; i++ {
		var w word
		start := rng.Uint32() % 1000
		w.Store(start)

		delta := rng.Uint32()%1000 + 1
		assert.Equal(t, start+delta, w.Add(delta), "seed %d", seed)
		assert.Equal(t, start, w.Sub(delta), "seed %d", seed)
	}
}

func TestWordCompareAndSwap(t *testing.T) {
	var w word
	w.Store(5)

	assert.False(t, w.CompareAndSwap(4, 9), "CAS must fail on a stale expected value")
	assert.Equal(t, uint32(5), w.Load())

	assert.True(t, w.CompareAndSwap(5, 9))
	assert.Equal(t, uint32(9), w.Load())
}

func TestWordZeroValueUsable(t *testing.T) {
	var w word
	assert.Equal(t, uint32(0), w.Load())
	assert.True(t, w.CompareAndSwap(0, 1))
}
