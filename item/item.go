package item

// Key identifies an entry and determines its position in a queue.
type Key uint32

// Entry is a key paired with an opaque value.
type Entry struct {
	Key   Key
	Value []byte
}

// Size returns the length of the value in bytes.
func (e Entry) Size() int {
	return len(e.Value)
}

// Valid reports whether the entry carries a non-empty value.
func (e Entry) Valid() bool {
	return len(e.Value) > 0
}

// Clone returns a copy of e whose value shares no memory with e.
func (e Entry) Clone() Entry {
	return Entry{Key: e.Key, Value: cloneBytes(e.Value)}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
