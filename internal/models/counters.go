// internal/models/counters.go
package models

import "sync/atomic"

// Counters tracks how many categories were created and how many products were put into them.
// Values only grow until Reset is called.
type Counters struct {
	categories atomic.Int64
	products   atomic.Int64
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) CategoryCount() int64 {
	return c.categories.Load()
}

func (c *Counters) ProductCount() int64 {
	return c.products.Load()
}

func (c *Counters) Reset() {
	c.categories.Store(0)
	c.products.Store(0)
}

func (c *Counters) addCategory(products int) {
	c.categories.Add(1)
	c.products.Add(int64(products))
}

func (c *Counters) addProduct() {
	c.products.Add(1)
}
