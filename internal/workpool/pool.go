// Package workpool runs indexed work items on a fixed set of workers, each
// with its own state.
//
// Items are dealt round-robin into one queue per worker. A worker drains
// its own queue first and then steals from the others, which keeps the
// workers busy when some items are slower than the rest.
package workpool

import (
	"runtime"
	"sync"
)

// Workers returns n, or GOMAXPROCS when n <= 0.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Run calls fn(states[w], i) for every i in [0, n), where w is the worker
// running the item. At most len(states) workers run; a state is only used
// by its own worker, so it needs no locking. Run returns when every item
// has been processed.
func Run[S any](states []S, n int, fn func(state S, i int)) {
	if n <= 0 || len(states) == 0 {
		return
	}
	workers := min(len(states), n)

	queues := make([]chan int, workers)
	for w := range queues {
		queues[w] = make(chan int, n/workers+1)
	}
	for i := range n {
		queues[i%workers] <- i
	}
	for _, q := range queues {
		close(q)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		go func() {
			defer wg.Done()
			for {
				i, ok := <-queues[w]
				if !ok {
					if i, ok = steal(queues, w); !ok {
						return
					}
				}
				fn(states[w], i)
			}
		}()
	}
	wg.Wait()
}

// steal takes one item from another worker's queue.
func steal(queues []chan int, self int) (int, bool) {
	for w, q := range queues {
		if w == self {
			continue
		}
		select {
		case i, ok := <-q:
			if ok {
				return i, true
			}
		default:
		}
	}
	return 0, false
}
