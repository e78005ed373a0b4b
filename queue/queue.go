package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/davidvella/keyq/item"
	"github.com/davidvella/keyq/monitoring"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Queue is a thread-safe min-priority queue of entries addressable by key.
type Queue struct {
	mu sync.Mutex

	id       uuid.UUID
	entries  []item.Entry // heap ordered by key, cap is the capacity
	index    *keyIndex
	bytes    int
	released bool

	opts   options
	stats  monitoring.Stats
	labels map[string]string
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	// Apply default options
	o := defaultOptions()

	// Apply user options
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	return newQueue(o, o.initialCapacity)
}

func newQueue(o options, capacity int) *Queue {
	id := uuid.New()
	return &Queue{
		id:      id,
		entries: make([]item.Entry, 0, capacity),
		index:   newKeyIndex(o.indexSize),
		opts:    o,
		stats:   monitoring.NewStats(o.registry),
		labels:  map[string]string{"queue": id.String()},
	}
}

// ID returns the identifier used to label this queue's logs and metrics.
func (q *Queue) ID() uuid.UUID {
	return q.id
}

// Release drops every entry held by the queue. No other operation may be in
// flight. Later operations fail with ErrReleased. Release on nil is a no-op.
func (q *Queue) Release() {
	if q == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.released {
		return
	}

	n, b := len(q.entries), q.bytes
	clear(q.entries)
	q.entries = nil
	q.index = nil
	q.bytes = 0
	q.released = true

	q.stats.SetSize(0, 0, q.labels)
	q.log(monitoring.INFO, "release", "queue released", map[string]interface{}{
		"entries": n,
		"bytes":   humanize.Bytes(uint64(b)),
	})
}

// Enqueue stores a copy of value under key. If key is already present its
// value is replaced and its position is unchanged. The returned entry is a
// copy owned by the caller.
func (q *Queue) Enqueue(key item.Key, value []byte) (item.Entry, error) {
	in := item.Entry{Key: key, Value: value}
	if !in.Valid() {
		return item.Entry{}, fmt.Errorf("%w: empty value for key %d", ErrInvalidArgument, key)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.released {
		return item.Entry{}, ErrReleased
	}

	stored := in.Clone()
	if i, ok := q.index.find(key); ok {
		q.bytes += stored.Size() - q.entries[i].Size()
		q.entries[i] = stored
		q.stats.RecordUpdate(q.labels)
	} else {
		q.push(stored)
		q.stats.RecordEnqueue(q.labels)
	}
	q.recordSize()

	return stored.Clone(), nil
}

// Dequeue removes and returns the entry with the smallest key.
func (q *Queue) Dequeue() (item.Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.released {
		return item.Entry{}, ErrReleased
	}
	if len(q.entries) == 0 {
		return item.Entry{}, ErrEmptyQueue
	}

	e := q.removeAt(0)
	q.stats.RecordDequeue(q.labels)
	q.recordSize()
	return e, nil
}

// Peek returns a copy of the entry with the smallest key without removing it.
func (q *Queue) Peek() (item.Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.released {
		return item.Entry{}, ErrReleased
	}
	if len(q.entries) == 0 {
		return item.Entry{}, ErrEmptyQueue
	}
	return q.entries[0].Clone(), nil
}

// Get returns a copy of the entry stored under key.
func (q *Queue) Get(key item.Key) (item.Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.released {
		return item.Entry{}, ErrReleased
	}
	i, ok := q.index.find(key)
	if !ok {
		return item.Entry{}, fmt.Errorf("%w: %d", ErrNotFound, key)
	}
	return q.entries[i].Clone(), nil
}

// Remove deletes key from the queue and returns its entry.
func (q *Queue) Remove(key item.Key) (item.Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.released {
		return item.Entry{}, ErrReleased
	}
	i, ok := q.index.find(key)
	if !ok {
		return item.Entry{}, fmt.Errorf("%w: %d", ErrNotFound, key)
	}

	e := q.removeAt(i)
	q.stats.RecordRemove(q.labels)
	q.recordSize()
	return e, nil
}

// Len returns the number of entries in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Cap returns the number of entries the queue holds before it must grow.
func (q *Queue) Cap() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return cap(q.entries)
}

func (q *Queue) recordSize() {
	q.stats.SetSize(len(q.entries), q.bytes, q.labels)
}

func (q *Queue) log(level monitoring.LogLevel, eventType, message string, details map[string]interface{}) {
	details["queue"] = q.id.String()
	q.opts.logger.Log(context.Background(), level, eventType, message, details)
}
