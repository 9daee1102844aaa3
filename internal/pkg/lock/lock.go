// Package lock provides per-key locking for read-modify-write operations
// on individual records, such as partial session updates.
package lock

import "sync"

// keyMutex wraps a mutex so instances can be pooled.
type keyMutex struct {
	mu sync.Mutex
}

// KeyLock provides per-key locking to prevent lost updates when a record
// is read, merged and written back outside a single store operation.
type KeyLock struct {
	locks sync.Map // map[string]*keyMutex
	pool  sync.Pool
}

// NewKeyLock creates a new KeyLock instance.
func NewKeyLock() *KeyLock {
	return &KeyLock{
		pool: sync.Pool{
			New: func() any {
				return &keyMutex{}
			},
		},
	}
}

// getLock retrieves or creates a mutex for the given key.
func (kl *KeyLock) getLock(key string) *keyMutex {
	if v, ok := kl.locks.Load(key); ok {
		return v.(*keyMutex)
	}

	newLock := kl.pool.Get().(*keyMutex)
	actual, loaded := kl.locks.LoadOrStore(key, newLock)
	if loaded {
		// Another goroutine created the lock first, return ours to pool
		kl.pool.Put(newLock)
	}
	return actual.(*keyMutex)
}

// Lock acquires the lock for a key.
func (kl *KeyLock) Lock(key string) {
	kl.getLock(key).mu.Lock()
}

// Unlock releases the lock for a key.
func (kl *KeyLock) Unlock(key string) {
	if v, ok := kl.locks.Load(key); ok {
		v.(*keyMutex).mu.Unlock()
	}
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired, false otherwise.
func (kl *KeyLock) TryLock(key string) bool {
	return kl.getLock(key).mu.TryLock()
}

// WithLock executes a function while holding the key's lock.
func (kl *KeyLock) WithLock(key string, fn func() error) error {
	kl.Lock(key)
	defer kl.Unlock(key)
	return fn()
}
