package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcquireReleaseDropsEntry(t *testing.T) {
	kl := NewKeyedLocks()

	kl.Acquire("user1")
	assert.Equal(t, 1, kl.Len())

	kl.Release("user1")
	assert.Equal(t, 0, kl.Len(), "registry must not retain released keys")
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	kl := NewKeyedLocks()
	kl.Acquire("user1")
	defer kl.Release("user1")

	done := make(chan struct{})
	go func() {
		kl.Acquire("user2")
		kl.Release("user2")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("acquire on a different key should not block")
	}
}

func TestSameKeySerializes(t *testing.T) {
	kl := NewKeyedLocks()

	const workers = 50
	counter := 0
	var wg sync.WaitGroup

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			kl.Acquire("user1")
			defer kl.Release("user1")
			// Unsynchronized increment; only the keyed lock protects it.
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
	assert.Equal(t, 0, kl.Len())
}

func TestManyKeysConcurrently(t *testing.T) {
	kl := NewKeyedLocks()
	keys := []string{"a", "b", "c", "d", "e"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for _, key := range keys {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				kl.Acquire(key)
				kl.Release(key)
			}(key)
		}
	}
	wg.Wait()

	assert.Equal(t, 0, kl.Len())
}

func TestReleaseUnknownKeyIsNoOp(t *testing.T) {
	kl := NewKeyedLocks()
	assert.NotPanics(t, func() { kl.Release("ghost") })
}
