package inventory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spal7319/movie-ticket-booking/internal/model"
)

func TestAcquireReturnsStableLockPerKey(t *testing.T) {
	reg := NewLockRegistry()
	a := model.NewShowKey("Inception", "20250101")
	b := model.NewShowKey("Inception", "20250102")

	assert.Same(t, reg.Acquire(a), reg.Acquire(a))
	assert.NotSame(t, reg.Acquire(a), reg.Acquire(b))
}

func TestAcquireConcurrentFirstAccessAgreesOnOneLock(t *testing.T) {
	reg := NewLockRegistry()
	key := model.NewShowKey("Dune", "20250101")

	const n = 32
	got := make([]*sync.Mutex, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = reg.Acquire(key)
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
}
