package item_test

import (
	"fmt"

	"github.com/davidvella/keyq/item"
)

// ExampleClone shows that a cloned node owns its own buffer.
func ExampleClone() {
	n := item.Alloc(item.Entry{Key: 1, Value: []byte("hello")})
	c := item.Clone(n)

	// Mutating the clone leaves the original untouched
	c.Entry.Value[0] = 'j'
	fmt.Printf("%s %s\n", n.Entry.Value, c.Entry.Value)

	item.Free(n)
	item.Free(c)

	// Output: hello jello
}

// ExampleList demonstrates building a detached result list.
func ExampleList() {
	var l item.List
	l.Push(item.Entry{Key: 10, Value: []byte("ten")})
	l.Push(item.Entry{Key: 20, Value: []byte("twenty")})
	defer l.Free()

	for e := range l.All() {
		fmt.Printf("%d: %s (%d bytes)\n", e.Key, e.Value, e.Size())
	}

	// Output:
	// 10: ten (3 bytes)
	// 20: twenty (6 bytes)
}
