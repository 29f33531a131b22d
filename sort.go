package lqueue

import (
	"github.com/oleiade/lane/v2"

	"github.com/neilotoole/lqueue/internal/link"
)

// Sort sorts q by payload, in ascending lexical order, or descending
// if descend is true. The sort is a stable top-down merge sort: the
// list is split into front and back halves, each half is sorted, and
// the halves are merged. Elements with equal payloads keep their
// relative order.
func (q *Queue) Sort(descend bool) {
	if q.empty() || q.head.Singular() {
		return
	}
	sortList(&q.head, descend)
}

func sortList(head *node, descend bool) {
	if head.Empty() || head.Singular() {
		return
	}

	// The front half gets n/2 elements.
	mid := head
	for i, size := 0, head.Len(); i < size/2; i++ {
		mid = mid.Next()
	}

	var left, right node
	left.Init()
	right.Init()
	link.Cut(&left, head, mid)
	link.Splice(head, &right)

	sortList(&left, descend)
	sortList(&right, descend)

	mergeLists(&left, &right, descend)
	link.Splice(&left, head)
}

// SortRuns sorts q exactly as Sort does, but iteratively: q is split
// into its natural ordered runs, and the runs are merged pairwise, in
// order, until one remains. Unlike Sort, stack depth does not grow
// with the length of q.
func (q *Queue) SortRuns(descend bool) {
	if q.empty() || q.head.Singular() {
		return
	}

	head := &q.head
	runs := lane.NewQueue[*node]()
	for !head.Empty() {
		last := head.Next()
		for last.Next() != head && inOrder(entry(last).value, entry(last.Next()).value, descend) {
			last = last.Next()
		}

		run := new(node).Init()
		link.Cut(run, head, last)
		runs.Enqueue(run)
	}

	for runs.Size() > 1 {
		// Merge adjacent pairs; an odd run out goes to the back
		// of the queue, behind this pass's merged runs.
		pass := runs.Size()
		for ; pass >= 2; pass -= 2 {
			a, _ := runs.Dequeue()
			b, _ := runs.Dequeue()
			mergeLists(a, b, descend)
			runs.Enqueue(a)
		}
		if pass == 1 {
			odd, _ := runs.Dequeue()
			runs.Enqueue(odd)
		}
	}

	sorted, _ := runs.Dequeue()
	link.Splice(sorted, head)
}

// inOrder reports whether a may precede b in a list sorted in the
// given direction. Equal payloads are always in order.
func inOrder(a, b string, descend bool) bool {
	if descend {
		return a >= b
	}
	return a <= b
}

// mergeLists merges the sorted lists a and b into a, leaving b empty.
// When the fronts of a and b compare equal, a's element is taken
// first.
func mergeLists(a, b *node, descend bool) {
	var out node
	out.Init()

	for !a.Empty() && !b.Empty() {
		ea, eb := a.Next(), b.Next()
		if inOrder(entry(ea).value, entry(eb).value, descend) {
			link.MoveTail(ea, &out)
		} else {
			link.MoveTail(eb, &out)
		}
	}

	link.SpliceTail(a, &out)
	link.SpliceTail(b, &out)
	link.Splice(&out, a)
}
