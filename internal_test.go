package lqueue

// internal_test.go contains functions that
// expose internal state for testing.

// WalkCounts returns the number of elements of q counted by walking
// forward from the sentinel, and by walking backward.
func WalkCounts(q *Queue) (fwd, back int) {
	for n := q.head.Next(); n != &q.head; n = n.Next() {
		fwd++
	}
	for n := q.head.Prev(); n != &q.head; n = n.Prev() {
		back++
	}
	return fwd, back
}

// Elements returns the elements of q, head to tail.
func Elements(q *Queue) []*Element {
	var elems []*Element
	for n := q.head.Next(); n != &q.head; n = n.Next() {
		elems = append(elems, entry(n))
	}
	return elems
}
