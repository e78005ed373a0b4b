// Package merge combines several ascending sequences of entries into one
// ascending sequence using a tournament tree (also known as a loser tree).
// The tree layout follows Bryan Boreham's go-loser
// (https://github.com/bboreham/go-loser).
//
// Each internal node of the tree remembers the loser of the match played
// between its two subtrees while the winner moves up; node 0 holds the
// overall winner. Advancing the winning sequence replays only the matches on
// its path to the root, so each yielded entry costs O(log n) comparisons for
// n input sequences.
//
// Basic usage:
//
//	a := q1.All() // ascending by key
//	b := q2.All()
//	for e := range merge.Entries(a, b) {
//	    fmt.Println(e.Key)
//	}
//
// Entries with equal keys are yielded in input order of their sequences.
// Exhausted sequences are tracked explicitly rather than with a sentinel
// maximum, so every key in the full range of item.Key is accepted.
package merge
