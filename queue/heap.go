package queue

import (
	"github.com/davidvella/keyq/item"
	"github.com/davidvella/keyq/monitoring"
	"github.com/dustin/go-humanize"
)

// swap exchanges slots i and j and reindexes both keys. It is the only way
// two entries change places.
func (q *Queue) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.index.update(q.entries[i].Key, i)
	q.index.update(q.entries[j].Key, j)
}

// less compares entries at index i and j.
func (q *Queue) less(i, j int) bool {
	return q.entries[i].Key < q.entries[j].Key
}

// up moves the entry at index i up to its proper position.
func (q *Queue) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the entry at index i down to its proper position.
func (q *Queue) down(i int) {
	n := len(q.entries)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && q.less(left, smallest) {
			smallest = left
		}
		if right < n && q.less(right, smallest) {
			smallest = right
		}

		if smallest == i {
			break
		}

		q.swap(i, smallest)
		i = smallest
	}
}

// heapify restores the heap order over the whole array in linear time.
func (q *Queue) heapify() {
	for i := len(q.entries)/2 - 1; i >= 0; i-- {
		q.down(i)
	}
}

// push appends e, growing the array if it is full, and sifts it up.
func (q *Queue) push(e item.Entry) {
	if len(q.entries) == cap(q.entries) {
		q.grow()
	}
	i := len(q.entries)
	q.entries = append(q.entries, e)
	if q.index.insert(e.Key, i) {
		q.stats.RecordRehash(q.labels)
		q.log(monitoring.DEBUG, "rehash", "key index rebuilt", map[string]interface{}{
			"cells":   q.index.size(),
			"entries": len(q.entries),
		})
	}
	q.bytes += e.Size()
	q.up(i)
}

// removeAt takes the entry at slot i out of the heap.
func (q *Queue) removeAt(i int) item.Entry {
	last := len(q.entries) - 1
	if i != last {
		q.swap(i, last)
	}
	e := q.entries[last]
	q.index.remove(e.Key)
	q.entries[last] = item.Entry{}
	q.entries = q.entries[:last]
	if i < last {
		q.down(i)
		q.up(i)
	}
	q.bytes -= e.Size()
	return e
}

// grow doubles the capacity of the heap array. Entries keep their slots, so
// the key index is unaffected.
func (q *Queue) grow() {
	c := 2 * cap(q.entries)
	if c == 0 {
		c = q.opts.initialCapacity
	}
	entries := make([]item.Entry, len(q.entries), c)
	copy(entries, q.entries)
	clear(q.entries)
	q.entries = entries

	q.stats.RecordGrow(q.labels)
	q.log(monitoring.DEBUG, "grow", "heap grown", map[string]interface{}{
		"capacity": c,
		"entries":  len(q.entries),
		"bytes":    humanize.Bytes(uint64(q.bytes)),
	})
}
