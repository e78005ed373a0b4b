package merge

import (
	"iter"

	"github.com/davidvella/keyq/item"
)

// Entries merges ascending entry sequences into one ascending sequence.
func Entries(seqs ...iter.Seq[item.Entry]) iter.Seq[item.Entry] {
	return func(yield func(item.Entry) bool) {
		if len(seqs) == 0 {
			return
		}
		t := newTree(len(seqs))
		for i, s := range seqs {
			next, stop := iter.Pull(s)
			//nolint:gocritic // stopped when the merge returns.
			defer stop()
			t.leaf(i).next = next
			t.advance(t.leafPos(i))
		}
		t.build()

		for {
			w := t.nodes[0].pos
			if t.nodes[w].done {
				return
			}
			if !yield(t.nodes[0].entry) {
				return
			}
			t.advance(w)
			t.replay(w)
		}
	}
}

type node struct {
	pos   int // loser leaf for internal nodes, winner leaf for node 0
	entry item.Entry
	done  bool
	order int // input position, breaks ties between equal keys
	next  func() (item.Entry, bool)
}

// tree stores m leaves at positions m..2m-1 and m-1 internal nodes at 1..m-1.
type tree struct {
	nodes []node
	m     int
}

func newTree(m int) *tree {
	t := &tree{nodes: make([]node, 2*m), m: m}
	for i := 0; i < m; i++ {
		t.nodes[m+i].order = i
	}
	return t
}

func (t *tree) leafPos(i int) int { return t.m + i }

func (t *tree) leaf(i int) *node { return &t.nodes[t.leafPos(i)] }

// beats reports whether the candidate at leaf a wins against leaf b.
func (t *tree) beats(a, b int) bool {
	x, y := &t.nodes[a], &t.nodes[b]
	switch {
	case x.done:
		return false
	case y.done:
		return true
	case x.entry.Key != y.entry.Key:
		return x.entry.Key < y.entry.Key
	default:
		return x.order < y.order
	}
}

func (t *tree) advance(pos int) {
	n := &t.nodes[pos]
	if e, ok := n.next(); ok {
		n.entry = e
		return
	}
	n.entry = item.Entry{}
	n.done = true
}

func (t *tree) build() {
	w := t.play(1)
	t.nodes[0].pos = w
	t.nodes[0].entry = t.nodes[w].entry
}

// play returns the winning leaf below pos, recording losers on the way up.
func (t *tree) play(pos int) int {
	if pos >= t.m {
		return pos
	}
	l, r := t.play(2*pos), t.play(2*pos+1)
	if t.beats(l, r) {
		t.nodes[pos].pos = r
		return l
	}
	t.nodes[pos].pos = l
	return r
}

// replay re-runs the matches from leaf pos to the root after pos advanced.
func (t *tree) replay(pos int) {
	winner := pos
	for n := pos >> 1; n != 0; n >>= 1 {
		if t.beats(t.nodes[n].pos, winner) {
			t.nodes[n].pos, winner = winner, t.nodes[n].pos
		}
	}
	t.nodes[0].pos = winner
	t.nodes[0].entry = t.nodes[winner].entry
}
