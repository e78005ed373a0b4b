package queue

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/davidvella/keyq/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestQueue_ConcurrentProducersConsumers(t *testing.T) {
	const (
		producers = 8
		perWorker = 500
	)

	q := New(WithInitialCapacity(4))
	defer q.Release()

	var (
		mu   sync.Mutex
		seen = make(map[item.Key]string, producers*perWorker)
	)
	take := func() error {
		e, err := q.Dequeue()
		if errors.Is(err, ErrEmptyQueue) {
			return nil
		}
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("key %d dequeued twice", e.Key)
		}
		seen[e.Key] = string(e.Value)
		return nil
	}

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				k := item.Key(p*perWorker + i)
				if _, err := q.Enqueue(k, []byte(fmt.Sprint(k))); err != nil {
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				if err := take(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for q.Len() > 0 {
		require.NoError(t, take())
	}

	require.Len(t, seen, producers*perWorker)
	for k, v := range seen {
		assert.Equal(t, fmt.Sprint(k), v)
	}
}

func TestQueue_ConcurrentUpdatesKeepKeysUnique(t *testing.T) {
	q := New()
	defer q.Release()

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				k := item.Key(i % 50)
				if _, err := q.Enqueue(k, []byte(fmt.Sprintf("w%d", w))); err != nil {
					return err
				}
				if i%20 == 0 {
					r, err := q.Range(10, 20)
					if err != nil {
						return err
					}
					r.Release()
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	checkInvariants(t, q)
	assert.Equal(t, 50, q.Len())
}
