package lqueue

import "github.com/neilotoole/lqueue/internal/link"

// Reverse reverses the order of the elements of q in place.
func (q *Queue) Reverse() {
	if q.empty() {
		return
	}
	reverse(&q.head)
}

// reverse moves every member of head, front to back, to the front.
func reverse(head *node) {
	for cur := head.Next(); cur != head; {
		next := cur.Next()
		link.Move(cur, head)
		cur = next
	}
}

// ReverseK reverses each consecutive run of exactly k elements, from
// head to tail. A trailing run shorter than k keeps its order. It is
// a no-op when k <= 1 or q is nil or empty.
func (q *Queue) ReverseK(k int) {
	if q.empty() || k <= 1 {
		return
	}

	var group node
	group.Init()

	head := &q.head
	anchor := head
	var i int
	for cur := head.Next(); cur != head; {
		next := cur.Next()
		i++
		if i == k {
			link.Cut(&group, anchor, cur)
			reverse(&group)
			link.Splice(&group, anchor)
			anchor = next.Prev()
			i = 0
		}
		cur = next
	}
}

// Swap exchanges every adjacent pair of elements. An odd final element
// is left in place.
func (q *Queue) Swap() {
	q.ReverseK(2)
}
