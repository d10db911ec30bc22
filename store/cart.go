package store

import (
	"fmt"
	"sync"

	"foodhub/models"
)

// CartTracker maps food IDs to quantities for one session. Entries never go
// below zero; a quantity that reaches zero is removed.
type CartTracker struct {
	mu         sync.RWMutex
	quantities map[string]int
}

func NewCartTracker() *CartTracker {
	return &CartTracker{quantities: make(map[string]int)}
}

func (c *CartTracker) Increment(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities[id]++
	return c.quantities[id]
}

func (c *CartTracker) Decrement(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	qty := c.quantities[id] - 1
	if qty <= 0 {
		delete(c.quantities, id)
		return 0
	}
	c.quantities[id] = qty
	return qty
}

func (c *CartTracker) Set(id string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("quantity for %s cannot be negative: %d", id, qty)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty == 0 {
		delete(c.quantities, id)
		return nil
	}
	c.quantities[id] = qty
	return nil
}

func (c *CartTracker) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.quantities, id)
}

func (c *CartTracker) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities = make(map[string]int)
}

func (c *CartTracker) Quantity(id string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.quantities[id]
}

// Quantities returns a copy of the mapping.
func (c *CartTracker) Quantities() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]int, len(c.quantities))
	for id, qty := range c.quantities {
		out[id] = qty
	}
	return out
}

// DistinctCount is the badge value, computed from the mapping on every call.
func (c *CartTracker) DistinctCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return DistinctCount(c.quantities)
}

// DistinctCount counts entries with a positive quantity.
func DistinctCount(quantities map[string]int) int {
	n := 0
	for _, qty := range quantities {
		if qty > 0 {
			n++
		}
	}
	return n
}

// Subtotal sums price times quantity for the items found in the catalog.
func Subtotal(quantities map[string]int, items []models.Food) float64 {
	var total float64
	for _, item := range items {
		if qty := quantities[item.ID]; qty > 0 {
			total += item.Price * float64(qty)
		}
	}
	return total
}
