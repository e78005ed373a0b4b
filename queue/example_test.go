package queue_test

import (
	"errors"
	"fmt"

	"github.com/davidvella/keyq/queue"
)

// ExampleQueue demonstrates taking entries in ascending key order.
func ExampleQueue() {
	q := queue.New()
	defer q.Release()

	// Add some entries
	_, _ = q.Enqueue(5, []byte("a"))
	_, _ = q.Enqueue(3, []byte("b"))
	_, _ = q.Enqueue(7, []byte("c"))

	// Take them smallest key first
	for {
		e, err := q.Dequeue()
		if errors.Is(err, queue.ErrEmptyQueue) {
			break
		}
		fmt.Printf("%d: %s\n", e.Key, e.Value)
	}

	// Output:
	// 3: b
	// 5: a
	// 7: c
}

// ExampleQueue_Enqueue shows that enqueuing an existing key updates its value.
func ExampleQueue_Enqueue() {
	q := queue.New()
	defer q.Release()

	_, _ = q.Enqueue(5, []byte("a"))
	reply, _ := q.Enqueue(5, []byte("z"))
	fmt.Printf("stored %d: %s, len %d\n", reply.Key, reply.Value, q.Len())

	// Output: stored 5: z, len 1
}

// ExampleQueue_Range copies a key interval into a new queue.
func ExampleQueue_Range() {
	q := queue.New()
	defer q.Release()

	_, _ = q.Enqueue(1, []byte("x"))
	_, _ = q.Enqueue(10, []byte("y"))
	_, _ = q.Enqueue(5, []byte("m"))

	r, err := q.Range(2, 10)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer r.Release()

	for r.Len() > 0 {
		e, _ := r.Dequeue()
		fmt.Printf("%d: %s\n", e.Key, e.Value)
	}
	fmt.Println("source still holds", q.Len())

	// Output:
	// 5: m
	// 10: y
	// source still holds 3
}

// ExampleMergeSorted iterates over two queues as if they were one.
func ExampleMergeSorted() {
	a, b := queue.New(), queue.New()
	defer a.Release()
	defer b.Release()

	_, _ = a.Enqueue(1, []byte("a1"))
	_, _ = a.Enqueue(4, []byte("a4"))
	_, _ = b.Enqueue(2, []byte("b2"))
	_, _ = b.Enqueue(3, []byte("b3"))

	for e := range queue.MergeSorted(a, b) {
		fmt.Printf("%s ", e.Value)
	}

	// Output: a1 b2 b3 a4
}
