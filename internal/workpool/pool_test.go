package workpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunVisitsEveryItemOnce(t *testing.T) {
	for _, tc := range []struct{ workers, items int }{
		{1, 10}, {4, 10}, {8, 3}, {3, 100},
	} {
		states := make([]int, tc.workers)
		for i := range states {
			states[i] = i
		}
		seen := make([]atomic.Int32, tc.items)
		Run(states, tc.items, func(_ int, i int) {
			seen[i].Add(1)
		})
		for i := range seen {
			if n := seen[i].Load(); n != 1 {
				t.Errorf("workers=%d items=%d: item %d ran %d times", tc.workers, tc.items, i, n)
			}
		}
	}
}

func TestRunStateIsPerWorker(t *testing.T) {
	type state struct {
		busy atomic.Bool
		runs int
	}
	states := make([]*state, 4)
	for i := range states {
		states[i] = &state{}
	}
	Run(states, 200, func(s *state, _ int) {
		if !s.busy.CompareAndSwap(false, true) {
			t.Error("state used by two workers at once")
		}
		s.runs++
		s.busy.Store(false)
	})
	total := 0
	for _, s := range states {
		total += s.runs
	}
	if total != 200 {
		t.Errorf("ran %d items, want 200", total)
	}
}

func TestRunStealsFromSlowWorker(t *testing.T) {
	var mu sync.Mutex
	byWorker := map[int]int{}
	Run([]int{0, 1}, 8, func(w int, i int) {
		if i == 0 {
			time.Sleep(20 * time.Millisecond)
		}
		mu.Lock()
		byWorker[w]++
		mu.Unlock()
	})
	if byWorker[0]+byWorker[1] != 8 {
		t.Errorf("ran %v, want 8 items", byWorker)
	}
	if byWorker[1] <= 4 {
		t.Logf("worker 1 did not steal: %v", byWorker)
	}
}

func TestRunEmpty(t *testing.T) {
	Run([]int{1}, 0, func(int, int) { t.Error("called with no items") })
	Run[int](nil, 5, func(int, int) { t.Error("called with no workers") })
}

func TestWorkers(t *testing.T) {
	if Workers(3) != 3 {
		t.Error("Workers(3) != 3")
	}
	if Workers(0) != runtime.GOMAXPROCS(0) {
		t.Error("Workers(0) should use GOMAXPROCS")
	}
}
