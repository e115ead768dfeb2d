package transfer

import "sync"

// lockRegistry hands out one mutex per account id. The engine owns it;
// coordination primitives stay out of the persisted entities so accounts can
// cross the storage boundary as plain data.
type lockRegistry struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{locks: make(map[int64]*sync.Mutex)}
}

// get returns the mutex for the account id, creating it on first use. The
// same id always yields the same mutex for the lifetime of the registry.
func (r *lockRegistry) get(id int64) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.locks[id]
	if !ok {
		m = &sync.Mutex{}
		r.locks[id] = m
	}
	return m
}
