package model

import "sync"

// CounterPool recycles neighbour-count maps between generations
type CounterPool struct {
	pool sync.Pool
}

func NewCounterPool() *CounterPool {
	return &CounterPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[Cell]int)
			},
		},
	}
}

// Get retrieves an empty counter from the pool
func (p *CounterPool) Get() map[Cell]int {
	if p == nil {
		return make(map[Cell]int)
	}
	return p.pool.Get().(map[Cell]int)
}

// Put clears a counter and returns it to the pool
func (p *CounterPool) Put(counter map[Cell]int) {
	if p == nil {
		return
	}
	clear(counter)
	p.pool.Put(counter)
}

var defaultCounters = NewCounterPool()
