package item

import "iter"

// Node is a detached copy of an entry with a link to the next node.
type Node struct {
	Entry Entry
	Next  *Node
}

// Alloc returns a new node holding a copy of e.
func Alloc(e Entry) *Node {
	return &Node{Entry: e.Clone()}
}

// Free drops the node's value and unlinks it. Free on nil is a no-op.
func Free(n *Node) {
	if n == nil {
		return
	}
	n.Entry.Value = nil
	n.Next = nil
}

// Clone returns an unlinked copy of n. Clone of nil is nil.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	return Alloc(n.Entry)
}

// List is a singly linked list of nodes. The zero value is an empty list.
type List struct {
	head *Node
	tail *Node
	n    int
}

// Push appends a copy of e to the end of the list.
func (l *List) Push(e Entry) {
	l.PushNode(Alloc(e))
}

// PushNode appends n to the end of the list, taking ownership of it.
func (l *List) PushNode(n *Node) {
	n.Next = nil
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.Next = n
	}
	l.tail = n
	l.n++
}

// Head returns the first node, or nil if the list is empty.
func (l *List) Head() *Node {
	return l.head
}

// Len returns the number of nodes in the list.
func (l *List) Len() int {
	return l.n
}

// All yields the entries of the list in order. The yielded values are owned
// by the list.
func (l *List) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for n := l.head; n != nil; n = n.Next {
			if !yield(n.Entry) {
				return
			}
		}
	}
}

// Free releases every node in the list and leaves it empty.
func (l *List) Free() {
	for n := l.head; n != nil; {
		next := n.Next
		Free(n)
		n = next
	}
	l.head, l.tail, l.n = nil, nil, 0
}
