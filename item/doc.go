// Package item defines the values that flow in and out of a keyed priority
// queue: the Key, the Entry that pairs a key with an owned byte buffer, and
// the standalone Node used to carry copies of entries outside a queue.
//
// Entries are deep-copied at every ownership boundary. A value handed to a
// constructor is never aliased, and a value handed back belongs to the caller.
//
// Basic usage:
//
//	// Build a detached node from an entry
//	n := item.Alloc(item.Entry{Key: 7, Value: []byte("payload")})
//	defer item.Free(n)
//
//	// Duplicate it; the copy shares no memory with n
//	c := item.Clone(n)
//	defer item.Free(c)
//
//	// Chain copies into a list
//	var l item.List
//	l.Push(item.Entry{Key: 1, Value: []byte("a")})
//	l.Push(item.Entry{Key: 2, Value: []byte("b")})
//	for e := range l.All() {
//	    fmt.Printf("%d=%s\n", e.Key, e.Value)
//	}
//
// Nodes are never heap-ordered; they exist so results can be held and passed
// around independently of the queue that produced them.
package item
