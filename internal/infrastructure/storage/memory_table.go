package storage

import "sync"

// memoryTable is a concurrency safe id -> row map shared by the in-memory repositories.
type memoryTable[T any] struct {
	mu   sync.RWMutex
	rows map[string]T
	copy func(T) T
}

func newMemoryTable[T any](copyFn func(T) T) *memoryTable[T] {
	if copyFn == nil {
		copyFn = func(v T) T { return v }
	}
	return &memoryTable[T]{rows: make(map[string]T), copy: copyFn}
}

func (t *memoryTable[T]) put(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = t.copy(row)
}

// insert fails when id is taken.
func (t *memoryTable[T]) insert(id string, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; exists {
		return false
	}
	t.rows[id] = t.copy(row)
	return true
}

// replace fails when id is missing.
func (t *memoryTable[T]) replace(id string, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; !exists {
		return false
	}
	t.rows[id] = t.copy(row)
	return true
}

func (t *memoryTable[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	return t.copy(row), true
}

func (t *memoryTable[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *memoryTable[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, t.copy(row))
	}
	return out
}

// find returns the first row matching fn.
func (t *memoryTable[T]) find(fn func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if fn(row) {
			return t.copy(row), true
		}
	}
	var zero T
	return zero, false
}

func (t *memoryTable[T]) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make(map[string]T)
}
