package common

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("u1")
			defer unlock()

			mu.Lock()
			active++
			maxSeen = max(maxSeen, active)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, km.Len())
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	unlockA := km.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := km.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key should not block")
	}
	assert.Equal(t, 1, km.Len())
}

func TestKeyedMutex_WaiterAcquiresAfterRelease(t *testing.T) {
	km := NewKeyedMutex()

	unlock := km.Lock("u1")
	acquired := make(chan struct{})
	go func() {
		release := km.Lock("u1")
		close(acquired)
		release()
	}()

	assert.Eventually(t, func() bool { return km.Len() == 2 }, time.Second, time.Millisecond)
	select {
	case <-acquired:
		t.Fatal("second caller acquired a held key")
	default:
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken by unlock")
	}
	assert.Eventually(t, func() bool { return km.Len() == 0 }, time.Second, time.Millisecond)
}

func TestKeyedMutex_UnlockIsIdempotent(t *testing.T) {
	km := NewKeyedMutex()

	unlock := km.Lock("a")
	unlock()
	unlock()

	assert.Equal(t, 0, km.Len())
	relock := km.Lock("a")
	relock()
}
