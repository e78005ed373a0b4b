package item_test

import (
	"testing"

	"github.com/davidvella/keyq/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Clone(t *testing.T) {
	tests := []struct {
		name  string
		entry item.Entry
	}{
		{
			name:  "non-empty value",
			entry: item.Entry{Key: 3, Value: []byte("abc")},
		},
		{
			name:  "nil value",
			entry: item.Entry{Key: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.entry.Clone()
			assert.Equal(t, tt.entry, c)
			if len(tt.entry.Value) > 0 {
				c.Value[0] = 'z'
				assert.NotEqual(t, tt.entry.Value[0], c.Value[0])
			}
		})
	}
}

func TestEntry_Valid(t *testing.T) {
	assert.True(t, item.Entry{Key: 1, Value: []byte("x")}.Valid())
	assert.False(t, item.Entry{Key: 1, Value: []byte{}}.Valid())
	assert.False(t, item.Entry{Key: 1}.Valid())
	assert.Equal(t, 2, item.Entry{Value: []byte("xy")}.Size())
}

func TestAlloc(t *testing.T) {
	src := []byte("payload")
	n := item.Alloc(item.Entry{Key: 9, Value: src})

	require.NotNil(t, n)
	assert.Nil(t, n.Next)
	assert.Equal(t, item.Key(9), n.Entry.Key)
	assert.Equal(t, src, n.Entry.Value)

	src[0] = 'P'
	assert.Equal(t, []byte("payload"), n.Entry.Value, "node must not alias the caller's buffer")
}

func TestFree(t *testing.T) {
	n := item.Alloc(item.Entry{Key: 1, Value: []byte("x")})
	n.Next = item.Alloc(item.Entry{Key: 2, Value: []byte("y")})

	item.Free(n)
	assert.Nil(t, n.Entry.Value)
	assert.Nil(t, n.Next)
	assert.Equal(t, 0, n.Entry.Size())

	assert.NotPanics(t, func() { item.Free(nil) })
}

func TestClone(t *testing.T) {
	n := item.Alloc(item.Entry{Key: 5, Value: []byte("five")})
	n.Next = item.Alloc(item.Entry{Key: 6, Value: []byte("six")})

	c := item.Clone(n)
	require.NotNil(t, c)
	assert.Nil(t, c.Next, "clone is detached")
	assert.Equal(t, n.Entry, c.Entry)

	c.Entry.Value[0] = 'F'
	assert.Equal(t, []byte("five"), n.Entry.Value)

	assert.Nil(t, item.Clone(nil))
}

func TestList(t *testing.T) {
	var l item.List
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Head())

	in := []item.Entry{
		{Key: 1, Value: []byte("a")},
		{Key: 2, Value: []byte("b")},
		{Key: 3, Value: []byte("c")},
	}
	for _, e := range in {
		l.Push(e)
	}
	in[0].Value[0] = 'x'

	require.Equal(t, 3, l.Len())
	var got []item.Entry
	for e := range l.All() {
		got = append(got, e)
	}
	assert.Equal(t, []item.Entry{
		{Key: 1, Value: []byte("a")},
		{Key: 2, Value: []byte("b")},
		{Key: 3, Value: []byte("c")},
	}, got)

	var first []item.Key
	for e := range l.All() {
		first = append(first, e.Key)
		break
	}
	assert.Equal(t, []item.Key{1}, first)

	head := l.Head()
	l.Free()
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Head())
	assert.Nil(t, head.Entry.Value)
}
