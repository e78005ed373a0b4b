package queue

import (
	"iter"

	"github.com/davidvella/keyq/item"
	"github.com/davidvella/keyq/merge"
	"github.com/davidvella/keyq/monitoring"
	"github.com/dustin/go-humanize"
	"github.com/google/btree"
)

const snapshotDegree = 32

// Range returns a new queue holding copies of every entry whose key lies in
// [start, end]. The receiver is left unchanged. The new queue has the same
// capacity and options as the receiver and is not shared with any caller
// until Range returns.
func (q *Queue) Range(start, end item.Key) (*Queue, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.released {
		return nil, ErrReleased
	}

	r := newQueue(q.opts, cap(q.entries))
	for _, e := range q.entries {
		if e.Key < start || e.Key > end {
			continue
		}
		i := len(r.entries)
		r.entries = append(r.entries, e.Clone())
		r.index.insert(e.Key, i)
		r.bytes += e.Size()
	}
	r.heapify()
	r.recordSize()

	q.log(monitoring.INFO, "range", "range extracted", map[string]interface{}{
		"start":   start,
		"end":     end,
		"matched": len(r.entries),
		"bytes":   humanize.Bytes(uint64(r.bytes)),
		"target":  r.id.String(),
	})
	return r, nil
}

// Snapshot returns copies of all entries as a list in ascending key order.
func (q *Queue) Snapshot() (*item.List, error) {
	t, err := q.sorted()
	if err != nil {
		return nil, err
	}

	l := &item.List{}
	t.Ascend(func(e item.Entry) bool {
		l.PushNode(&item.Node{Entry: e})
		return true
	})
	return l, nil
}

// All returns an iterator over copies of the entries in ascending key order.
// The copies are taken when iteration starts. A released queue yields nothing.
func (q *Queue) All() iter.Seq[item.Entry] {
	return func(yield func(item.Entry) bool) {
		t, err := q.sorted()
		if err != nil {
			return
		}
		t.Ascend(func(e item.Entry) bool {
			return yield(e)
		})
	}
}

// MergeSorted returns an iterator over copies of the entries of all queues in
// ascending key order. Each queue is locked only while its own entries are
// copied.
func MergeSorted(qs ...*Queue) iter.Seq[item.Entry] {
	seqs := make([]iter.Seq[item.Entry], 0, len(qs))
	for _, q := range qs {
		seqs = append(seqs, q.All())
	}
	return merge.Entries(seqs...)
}

// sorted copies the live entries into a btree ordered by key.
func (q *Queue) sorted() (*btree.BTreeG[item.Entry], error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.released {
		return nil, ErrReleased
	}

	t := btree.NewG[item.Entry](snapshotDegree, func(a, b item.Entry) bool {
		return a.Key < b.Key
	})
	for _, e := range q.entries {
		t.ReplaceOrInsert(e.Clone())
	}
	return t, nil
}
