package common

import (
	"sync"
	"sync/atomic"

	"github.com/moby/locker"
)

// KeyedMutex serializes work per key. Idle keys are released by the
// underlying locker once nobody holds or waits on them.
type KeyedMutex struct {
	locker  *locker.Locker
	pending atomic.Int64
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locker: locker.New()}
}

// Lock blocks until the lock for key is acquired and returns the function
// that releases it. Calling the returned function more than once is a no-op.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.pending.Add(1)
	k.locker.Lock(key)

	var once sync.Once
	return func() {
		once.Do(func() {
			_ = k.locker.Unlock(key)
			k.pending.Add(-1)
		})
	}
}

// Len returns the number of callers currently holding or waiting on a key.
func (k *KeyedMutex) Len() int {
	return int(k.pending.Load())
}
