package queue

import (
	"math/bits"

	"github.com/davidvella/keyq/item"
)

const minIndexSize = 8

type cellState uint8

const (
	cellEmpty cellState = iota
	cellLive
	cellDeleted
)

// cell is one slot of the key index. Deleted cells keep probe chains intact.
type cell struct {
	key   item.Key
	slot  int
	state cellState
}

// keyIndex maps live keys to heap slots using open addressing with linear
// probing over a power-of-two table.
type keyIndex struct {
	cells []cell
	shift uint
	live  int
	used  int // live + deleted
}

func newKeyIndex(size int) *keyIndex {
	x := &keyIndex{}
	x.reset(size)
	return x
}

func (x *keyIndex) reset(size int) {
	if size < minIndexSize {
		size = minIndexSize
	}
	n := 1 << bits.Len(uint(size-1))
	x.cells = make([]cell, n)
	x.shift = uint(64 - bits.TrailingZeros(uint(n)))
	x.live = 0
	x.used = 0
}

func (x *keyIndex) size() int { return len(x.cells) }

// home returns the first probe position for k (Fibonacci hashing).
func (x *keyIndex) home(k item.Key) int {
	return int((uint64(k) * 0x9E3779B97F4A7C15) >> x.shift)
}

// lookup returns the cell position holding k, or -1.
func (x *keyIndex) lookup(k item.Key) int {
	mask := len(x.cells) - 1
	h := x.home(k)
	for range x.cells {
		c := &x.cells[h]
		switch {
		case c.state == cellEmpty:
			return -1
		case c.state == cellLive && c.key == k:
			return h
		}
		h = (h + 1) & mask
	}
	return -1
}

// find returns the heap slot recorded for k.
func (x *keyIndex) find(k item.Key) (int, bool) {
	if p := x.lookup(k); p >= 0 {
		return x.cells[p].slot, true
	}
	return 0, false
}

// insert records k at slot. k must not be present. It reports whether the
// table was rebuilt to make room.
func (x *keyIndex) insert(k item.Key, slot int) bool {
	rebuilt := false
	if (x.used+1)*4 > len(x.cells)*3 {
		x.rebuild()
		rebuilt = true
	}

	mask := len(x.cells) - 1
	h := x.home(k)
	for x.cells[h].state == cellLive {
		h = (h + 1) & mask
	}
	if x.cells[h].state == cellEmpty {
		x.used++
	}
	x.cells[h] = cell{key: k, slot: slot, state: cellLive}
	x.live++
	return rebuilt
}

// update moves k to slot. It reports whether k was present.
func (x *keyIndex) update(k item.Key, slot int) bool {
	p := x.lookup(k)
	if p < 0 {
		return false
	}
	x.cells[p].slot = slot
	return true
}

// remove tombstones k. It reports whether k was present.
func (x *keyIndex) remove(k item.Key) bool {
	p := x.lookup(k)
	if p < 0 {
		return false
	}
	x.cells[p] = cell{state: cellDeleted}
	x.live--
	return true
}

// rebuild rehashes live cells, dropping tombstones. The table doubles when
// live cells alone would keep it at least half full.
func (x *keyIndex) rebuild() {
	old := x.cells
	size := len(old)
	if (x.live+1)*2 > size {
		size *= 2
	}
	x.reset(size)
	for _, c := range old {
		if c.state == cellLive {
			x.insert(c.key, c.slot)
		}
	}
}
