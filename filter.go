package lqueue

// DeleteMid removes and destroys the middle element of q: the element
// at 0-based index n/2, so for even n it is the later of the two
// center elements. It returns false if q is nil or empty.
func (q *Queue) DeleteMid() bool {
	if q.empty() {
		return false
	}

	head := &q.head
	slow, fast := head.Next(), head.Next()
	for fast != head && fast.Next() != head {
		slow = slow.Next()
		fast = fast.Next().Next()
	}
	q.release(slow)
	return true
}

// DeleteDup removes and destroys every element that belongs to a run
// of two or more adjacent elements with equal payloads, so that only
// values that occurred once remain. q is expected to be sorted; on
// unsorted input only adjacent duplicates are removed. DeleteDup
// returns false if q is nil or empty.
func (q *Queue) DeleteDup() bool {
	if q.empty() {
		return false
	}

	head := &q.head
	var inRun bool
	for cur := head.Next(); cur != head; {
		next := cur.Next()
		same := next != head && entry(next).value == entry(cur).value
		if same || inRun {
			q.release(cur)
		}
		inRun = same
		cur = next
	}
	return true
}

// Ascend removes and destroys every element that has an element with
// a strictly smaller payload anywhere to its right. It returns the
// resulting size of q.
func (q *Queue) Ascend() int {
	return q.monotonic(func(cur, left string) bool { return left > cur })
}

// Descend removes and destroys every element that has an element with
// a strictly greater payload anywhere to its right. It returns the
// resulting size of q.
func (q *Queue) Descend() int {
	return q.monotonic(func(cur, left string) bool { return left < cur })
}

// monotonic walks q from the tail towards the head. Whenever drop
// reports true for the current node and its left neighbor, the
// neighbor is destroyed and the new neighbor is examined; otherwise
// the walk moves left.
func (q *Queue) monotonic(drop func(cur, left string) bool) int {
	if q.empty() {
		return 0
	}

	head := &q.head
	cur := head.Prev()
	for cur.Prev() != head {
		left := cur.Prev()
		if drop(entry(cur).value, entry(left).value) {
			q.release(left)
			continue
		}
		cur = left
	}
	return q.Size()
}
