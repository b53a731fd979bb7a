package counter

import "sync/atomic"

// Counter is a running total shared between clone workers and the views rendering it.
type Counter struct {
	total atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{}
}

// Add may be called from any goroutine.
func (c *Counter) Add(value int) {
	c.total.Add(int64(value))
}

func (c *Counter) Count() int {
	return int(c.total.Load())
}
