// Package queue implements a thread-safe priority queue of opaque byte values
// addressed by an unsigned key. The queue is a binary min-heap ordered by key,
// paired with an open-addressing hash index that maps every live key to its
// heap slot so an entry can be found and updated without a scan.
//
// Key features:
//   - O(log n) insertion and removal of the smallest key
//   - O(1) average key lookups through the key index
//   - Insert-or-update: enqueuing an existing key replaces its value in place
//   - Range extraction into a new, independent queue
//   - Ascending snapshots and merged iteration across queues
//
// Basic usage:
//
//	q := queue.New()
//	defer q.Release()
//
//	// Add entries; the queue copies each value
//	q.Enqueue(5, []byte("a"))
//	q.Enqueue(3, []byte("b"))
//
//	// Replace the value stored under an existing key
//	q.Enqueue(5, []byte("z"))
//
//	// Take entries in ascending key order
//	for {
//	    e, err := q.Dequeue()
//	    if errors.Is(err, queue.ErrEmptyQueue) {
//	        break
//	    }
//	    fmt.Printf("%d = %s\n", e.Key, e.Value)
//	}
//
//	// Copy every entry with 2 <= key <= 10 into a new queue
//	r, err := q.Range(2, 10)
//
// Ordering and ownership:
//
// Entries leave the queue smallest key first. Values are copied on the way in
// and every value returned to a caller belongs to that caller; the queue never
// aliases caller memory. Range copies matching entries and leaves the source
// queue as it was.
//
// Concurrency:
//
// Each queue owns one mutex that every method holds for its full duration, so
// the heap and its index are always observed together in a consistent state.
// No method waits for another goroutine: Dequeue on an empty queue fails
// immediately with ErrEmptyQueue.
package queue
