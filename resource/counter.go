package resource

import "sync"

// Counter is an Observer that tallies lifecycle events per kind.
type Counter struct {
	created map[Kind]int
	dropped map[Kind]int
	mu      sync.Mutex
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{
		created: make(map[Kind]int),
		dropped: make(map[Kind]int),
	}
}

func (c *Counter) OnResourceEvent(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch e.Type {
	case EventCreated:
		c.created[e.Kind]++
	case EventDropped:
		c.dropped[e.Kind]++
	}
}

// Created returns how many objects of kind were created.
func (c *Counter) Created(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created[kind]
}

// Dropped returns how many objects of kind were dropped.
func (c *Counter) Dropped(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped[kind]
}

// Live returns created minus dropped for kind.
func (c *Counter) Live(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created[kind] - c.dropped[kind]
}
