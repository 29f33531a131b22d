// Package lqueue implements a queue of strings on top of an intrusive,
// circular, doubly-linked list. The queue is the ordering backbone for
// larger programs: simulators, shells, test harnesses and the like.
//
// A Queue is a sentinel: it anchors the circular list but carries no
// payload. Each Element owns exactly one immutable string. Elements
// can be inserted and removed at either end, and the list can be
// reordered in place without any auxiliary array storage:
//
//   - Queue.Sort performs a stable merge sort by splitting and
//     splicing sub-lists.
//   - Queue.Reverse and Queue.ReverseK reverse the whole list, or
//     every run of k elements.
//   - Queue.DeleteDup, Queue.Ascend and Queue.Descend filter the list
//     in a single pointer walk.
//   - Chain.Merge folds several sorted queues into one.
//
// Methods are safe to call on a nil *Queue, which behaves as the
// "null queue": insertions fail, removals return nil, and counts are
// zero.
//
// A Queue is not safe for concurrent use. Callers that need
// concurrent access must serialize externally, for example with
// package lockqueue, which guards each queue with one exclusive lock.
package lqueue

import (
	"strings"

	"github.com/neilotoole/lqueue/internal/link"
)

type node = link.Node[*Element]

// Element is a payload-bearing member of a Queue. The payload is fixed
// when the element is created.
type Element struct {
	// n is not declared via the node alias: compilers before Go 1.24
	// reject an alias in a recursive type.
	n     link.Node[*Element]
	value string
}

func newElement(s string) *Element {
	e := &Element{value: s}
	e.n.Owner = e
	return e
}

// entry returns the Element that owns n.
func entry(n *node) *Element {
	return n.Owner
}

// Value returns e's payload. It returns empty string for a nil element.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// Detached reports whether e is not a member of any queue.
func (e *Element) Detached() bool {
	return e != nil && !e.n.Linked()
}

// CopyTo copies as much of e's payload as fits into buf, always
// leaving buf NUL-terminated when len(buf) > 0. It returns the number
// of payload bytes copied, which excludes the terminator.
func (e *Element) CopyTo(buf []byte) int {
	if e == nil || len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], e.value)
	buf[n] = 0
	return n
}

// Release destroys a detached element, dropping its payload. It
// returns false, and does nothing, if e is nil or still a member of
// a queue.
func (e *Element) Release() bool {
	if e == nil || e.n.Linked() {
		return false
	}
	e.value = ""
	e.n.Owner = nil
	return true
}

// Queue is the sentinel of a circular list of elements. The zero value
// is an empty queue ready to use. A Queue must not be copied after
// first use.
type Queue struct {
	head node
}

// New returns a new, empty Queue.
func New() *Queue {
	q := &Queue{}
	q.head.Init()
	return q
}

// lazyInit exists so that the zero value of Queue is usable.
func (q *Queue) lazyInit() {
	if !q.head.Linked() {
		q.head.Init()
	}
}

func (q *Queue) empty() bool {
	return q == nil || !q.head.Linked() || q.head.Empty()
}

// Free destroys every element in q, leaving q empty. It is a no-op
// on a nil queue.
func (q *Queue) Free() {
	if q.empty() {
		return
	}
	for n := q.head.Next(); n != &q.head; {
		next := n.Next()
		q.release(n)
		n = next
	}
}

// release unlinks and destroys the element owning n.
func (q *Queue) release(n *node) {
	e := entry(n)
	n.Unlink()
	e.Release()
}

// InsertHead inserts s at the head of q. It returns false, without
// modifying anything, if q is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	q.lazyInit()
	link.LinkAfter(&q.head, &newElement(s).n)
	return true
}

// InsertTail inserts s at the tail of q. It returns false, without
// modifying anything, if q is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	q.lazyInit()
	link.LinkBefore(&q.head, &newElement(s).n)
	return true
}

// RemoveHead detaches the first element of q and returns it. If buf
// is non-empty, the element's payload is copied into buf as per
// Element.CopyTo. Ownership of the returned element passes to the
// caller, who should eventually invoke Element.Release. RemoveHead
// returns nil if q is nil or empty.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q.empty() {
		return nil
	}
	return q.remove(q.head.Next(), buf)
}

// RemoveTail is like RemoveHead, but detaches the last element.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q.empty() {
		return nil
	}
	return q.remove(q.head.Prev(), buf)
}

func (q *Queue) remove(n *node, buf []byte) *Element {
	e := entry(n)
	e.CopyTo(buf)
	n.Unlink()
	return e
}

// Size walks q and returns its element count. The count is not cached.
// Size returns zero for a nil queue.
func (q *Queue) Size() int {
	if q.empty() {
		return 0
	}
	return q.head.Len()
}

// Head returns the payload of the first element of q.
func (q *Queue) Head() (string, bool) {
	if q.empty() {
		return "", false
	}
	return entry(q.head.Next()).value, true
}

// Tail returns the payload of the last element of q.
func (q *Queue) Tail() (string, bool) {
	if q.empty() {
		return "", false
	}
	return entry(q.head.Prev()).value, true
}

// Values returns the payloads of q, head to tail.
func (q *Queue) Values() []string {
	if q.empty() {
		return nil
	}
	vals := make([]string, 0, q.Size())
	for n := q.head.Next(); n != &q.head; n = n.Next() {
		vals = append(vals, entry(n).value)
	}
	return vals
}

// String returns the payloads of q in the form "[a b c]", or "NULL"
// for a nil queue.
func (q *Queue) String() string {
	if q == nil {
		return "NULL"
	}
	return "[" + strings.Join(q.Values(), " ") + "]"
}
