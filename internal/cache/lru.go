package cache

// entry is a node of the recency list. It carries the key so the oldest
// entry can be removed from the index in O(1).
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// recencyList orders entries from most (head) to least (tail) recently
// used. It is not safe for concurrent use.
type recencyList[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	len  int
}

func (l *recencyList[K, V]) pushFront(e *entry[K, V]) {
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.len++
}

func (l *recencyList[K, V]) moveToFront(e *entry[K, V]) {
	if e == l.head {
		return
	}
	l.unlink(e)
	l.pushFront(e)
}

// removeOldest unlinks and returns the tail, or nil when empty.
func (l *recencyList[K, V]) removeOldest() *entry[K, V] {
	e := l.tail
	if e != nil {
		l.unlink(e)
	}
	return e
}

func (l *recencyList[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev = nil
	e.next = nil
	l.len--
}

func (l *recencyList[K, V]) clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}
