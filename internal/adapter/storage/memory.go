package storage

import "sync"

// MemoryRepository keeps the item -> quantity mapping in process memory.
// Accessors hand out copies, so the mapping is never aliased outside the
// repository.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]int)}
}

func (r *MemoryRepository) Get(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	qty, ok := r.items[name]
	return qty, ok
}

func (r *MemoryRepository) Put(name string, qty int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[name] = qty
}

func (r *MemoryRepository) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, name)
}

func (r *MemoryRepository) Items() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make(map[string]int, len(r.items))
	for name, qty := range r.items {
		items[name] = qty
	}
	return items
}

func (r *MemoryRepository) Replace(items map[string]int) {
	next := make(map[string]int, len(items))
	for name, qty := range items {
		next[name] = qty
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = next
}
