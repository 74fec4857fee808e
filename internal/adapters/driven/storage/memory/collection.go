package memory

import (
	"slices"
	"sync"
)

// collection is an insertion-ordered, concurrency-safe record set.
type collection[T any] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{records: make(map[string]T)}
}

// put stores or replaces a record. Replacing keeps the original position.
func (c *collection[T]) put(id string, record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.records[id]; !exists {
		c.order = append(c.order, id)
	}
	c.records[id] = record
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.records[id]
	return record, ok
}

func (c *collection[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.records[id]; !exists {
		return
	}
	delete(c.records, id)
	c.order = slices.DeleteFunc(c.order, func(o string) bool { return o == id })
}

// all returns a snapshot of every record in insertion order.
func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]T, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.records[id])
	}
	return result
}
