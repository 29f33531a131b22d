// Package link provides the primitives of an intrusive, circular,
// doubly-linked list. A list is anchored by a head Node that carries
// no payload; head.next and head.prev point to the first and last
// member. An empty list is a head whose links point to itself.
//
// The primitives never allocate. Each rewrites at most a handful of
// pointers and leaves every affected list circular.
package link

// Node is a link in a circular list. A Node is either the head of a
// list, a member of exactly one list, or unlinked (nil links).
type Node[T any] struct {
	next, prev *Node[T]

	// Owner is the value that embeds this node. It is the zero value
	// for a head node.
	Owner T
}

// Init initializes or clears head, making it an empty list.
func (n *Node[T]) Init() *Node[T] {
	n.next = n
	n.prev = n
	return n
}

// Next returns the node after n.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node before n.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Linked reports whether n is a member (or head) of some list.
func (n *Node[T]) Linked() bool { return n.next != nil && n.prev != nil }

// Empty reports whether head has no members.
func (n *Node[T]) Empty() bool { return n.next == n }

// Singular reports whether head has exactly one member.
func (n *Node[T]) Singular() bool { return !n.Empty() && n.next == n.prev }

// Len walks the list anchored at head and returns its member count.
func (n *Node[T]) Len() int {
	var count int
	for cur := n.next; cur != n; cur = cur.next {
		count++
	}
	return count
}

// LinkAfter inserts n directly after at.
func LinkAfter[T any](at, n *Node[T]) {
	next := at.next
	n.prev = at
	n.next = next
	at.next = n
	next.prev = n
}

// LinkBefore inserts n directly before at. When at is a head, n
// becomes the last member.
func LinkBefore[T any](at, n *Node[T]) {
	LinkAfter(at.prev, n)
}

// Unlink detaches n from its list and clears its links.
func (n *Node[T]) Unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil // avoid memory leaks
	n.prev = nil // avoid memory leaks
}

func (n *Node[T]) detach() {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// Move detaches n and relinks it as the first member of head.
func Move[T any](n, head *Node[T]) {
	n.detach()
	LinkAfter(head, n)
}

// MoveTail detaches n and relinks it as the last member of head.
func MoveTail[T any](n, head *Node[T]) {
	n.detach()
	LinkBefore(head, n)
}

// Cut moves the run head.next..last (inclusive) into dst, which must
// be empty. When last is head itself, dst is left empty.
func Cut[T any](dst, head, last *Node[T]) {
	if head.Empty() || last == head {
		dst.Init()
		return
	}

	first := head.next
	after := last.next

	dst.next = first
	first.prev = dst
	dst.prev = last
	last.next = dst

	head.next = after
	after.prev = head
}

func splice[T any](src, prev, next *Node[T]) {
	first := src.next
	last := src.prev

	first.prev = prev
	prev.next = first
	last.next = next
	next.prev = last
}

// Splice grafts every member of src onto the front of head,
// preserving their order, and leaves src empty.
func Splice[T any](src, head *Node[T]) {
	if src.Empty() {
		return
	}
	splice(src, head, head.next)
	src.Init()
}

// SpliceTail grafts every member of src onto the back of head,
// preserving their order, and leaves src empty.
func SpliceTail[T any](src, head *Node[T]) {
	if src.Empty() {
		return
	}
	splice(src, head.prev, head)
	src.Init()
}
