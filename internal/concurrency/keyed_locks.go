package concurrency

import "sync"

// KeyedLocks serializes work per key. Each user key gets an exclusive
// section so two concurrent read-modify-write cycles for the same user
// cannot interleave. Entries are reference counted and removed as soon as
// the last holder releases, so the registry does not grow with the number
// of users ever seen.
type KeyedLocks struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedLocks creates an empty lock registry.
func NewKeyedLocks() *KeyedLocks {
	return &KeyedLocks{locks: make(map[string]*entry)}
}

// Acquire blocks until the key's exclusive section is held.
func (kl *KeyedLocks) Acquire(key string) {
	kl.mu.Lock()
	e, ok := kl.locks[key]
	if !ok {
		e = &entry{}
		kl.locks[key] = e
	}
	e.refs++
	kl.mu.Unlock()

	e.mu.Lock()
}

// Release frees the key's exclusive section and drops the registry entry
// once no goroutine is holding or waiting on it.
func (kl *KeyedLocks) Release(key string) {
	kl.mu.Lock()
	e, ok := kl.locks[key]
	if !ok {
		kl.mu.Unlock()
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(kl.locks, key)
	}
	kl.mu.Unlock()

	e.mu.Unlock()
}

// Len reports how many keys currently have an active entry.
func (kl *KeyedLocks) Len() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	return len(kl.locks)
}
