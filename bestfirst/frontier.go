package bestfirst

import "container/heap"

// OfferResult reports what Frontier.Offer did with a candidate.
type OfferResult int

const (
	// Inserted means the key was absent and the candidate now holds its slot.
	Inserted OfferResult = iota
	// Improved means the candidate had a strictly smaller priority and replaced
	// the entry already held for its key.
	Improved
	// Rejected means the held entry was at least as good; the candidate is dropped.
	Rejected
)

// String returns the lower-case outcome name used in metric attributes.
func (r OfferResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Improved:
		return "improved"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Frontier is a min-priority container holding at most one entry per key.
//
// A second Offer for a key already held is a decrease-key: the smaller
// priority survives together with its value, the other pair is discarded.
// On equal priorities the held entry wins. ExtractMin breaks ties among
// equal priorities by arrival order of the surviving candidate, so a
// Frontier fed the same sequence always extracts the same sequence.
//
// Complexity: Offer and ExtractMin are O(log n) in the number of held keys.
// A Frontier is not safe for concurrent use.
type Frontier[K comparable, V, P any] struct {
	h     entryHeap[K, V, P]
	index map[K]*entry[K, V, P]
	seq   uint64
}

// entry is one heap slot. pos is kept current by the heap so that
// decrease-key can heap.Fix the right slot.
type entry[K comparable, V, P any] struct {
	key      K
	value    V
	priority P
	seq      uint64
	pos      int
}

// NewFrontier returns an empty Frontier ordered by compare, which must
// return a negative number when a < b, zero when equal and a positive number
// when a > b. capacity pre-sizes internal storage; 0 grows on demand.
func NewFrontier[K comparable, V, P any](compare func(a, b P) int, capacity int) *Frontier[K, V, P] {
	if capacity < 0 {
		capacity = 0
	}
	return &Frontier[K, V, P]{
		h:     entryHeap[K, V, P]{items: make([]*entry[K, V, P], 0, capacity), compare: compare},
		index: make(map[K]*entry[K, V, P], capacity),
	}
}

// Offer inserts (value, priority) under key, or improves the entry held for
// key when priority is strictly smaller.
func (f *Frontier[K, V, P]) Offer(key K, value V, priority P) OfferResult {
	f.seq++
	if held, ok := f.index[key]; ok {
		if f.h.compare(priority, held.priority) >= 0 {
			return Rejected
		}
		held.value = value
		held.priority = priority
		held.seq = f.seq
		heap.Fix(&f.h, held.pos)
		return Improved
	}

	e := &entry[K, V, P]{key: key, value: value, priority: priority, seq: f.seq}
	heap.Push(&f.h, e)
	f.index[key] = e
	return Inserted
}

// ExtractMin removes and returns the entry with the smallest priority.
// ok is false when the Frontier is empty.
func (f *Frontier[K, V, P]) ExtractMin() (key K, value V, priority P, ok bool) {
	if len(f.h.items) == 0 {
		return key, value, priority, false
	}
	e := heap.Pop(&f.h).(*entry[K, V, P])
	delete(f.index, e.key)
	return e.key, e.value, e.priority, true
}

// Peek returns the entry ExtractMin would return, without removing it.
func (f *Frontier[K, V, P]) Peek() (key K, value V, priority P, ok bool) {
	if len(f.h.items) == 0 {
		return key, value, priority, false
	}
	e := f.h.items[0]
	return e.key, e.value, e.priority, true
}

// Contains reports whether an entry is held for key.
func (f *Frontier[K, V, P]) Contains(key K) bool {
	_, ok := f.index[key]
	return ok
}

// Len returns the number of held keys.
func (f *Frontier[K, V, P]) Len() int { return len(f.h.items) }

// entryHeap implements heap.Interface over entry pointers.
type entryHeap[K comparable, V, P any] struct {
	items   []*entry[K, V, P]
	compare func(a, b P) int
}

func (h entryHeap[K, V, P]) Len() int { return len(h.items) }

// Less orders by priority, then by arrival sequence.
func (h entryHeap[K, V, P]) Less(i, j int) bool {
	if c := h.compare(h.items[i].priority, h.items[j].priority); c != 0 {
		return c < 0
	}
	return h.items[i].seq < h.items[j].seq
}

func (h entryHeap[K, V, P]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].pos = i
	h.items[j].pos = j
}

// Push appends x; called by heap.Push. x must be *entry.
func (h *entryHeap[K, V, P]) Push(x any) {
	e := x.(*entry[K, V, P])
	e.pos = len(h.items)
	h.items = append(h.items, e)
}

// Pop removes the last slot; called by heap.Pop.
func (h *entryHeap[K, V, P]) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // release for GC
	e.pos = -1
	h.items = old[:n-1]
	return e
}
