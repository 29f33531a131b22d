// Package lockqueue serializes access to an lqueue.Queue. Each Queue
// is guarded by a single exclusive lock that is granted to waiters in
// FIFO order, so a goroutine that starts waiting first is served
// first. This is the external serialization that lqueue.Queue itself
// leaves to callers.
package lockqueue

import (
	"context"

	"github.com/neilotoole/fifomu"

	"github.com/neilotoole/lqueue"
)

// Queue is an lqueue.Queue guarded by a FIFO-fair mutex. The zero
// value is not usable; use New.
type Queue struct {
	// mu guards q. It is held for the duration of each call.
	mu fifomu.Mutex

	// q is the underlying queue. It must only be accessed with mu held.
	q *lqueue.Queue
}

// New returns a new Queue guarding an empty lqueue.Queue.
func New() *Queue {
	return &Queue{q: lqueue.New()}
}

// Do invokes fn with the lock held. fn must not retain q beyond the
// call.
func (lq *Queue) Do(fn func(q *lqueue.Queue)) {
	lq.mu.Lock()
	defer lq.mu.Unlock()
	fn(lq.q)
}

// DoContext is like Do, but gives up waiting for the lock if ctx is
// done, in which case fn is not invoked and the context's error is
// returned.
func (lq *Queue) DoContext(ctx context.Context, fn func(q *lqueue.Queue)) error {
	if err := lq.mu.LockContext(ctx); err != nil {
		return err
	}
	defer lq.mu.Unlock()
	fn(lq.q)
	return nil
}

// TryDo invokes fn only if the lock is immediately available, and
// reports whether it did.
func (lq *Queue) TryDo(fn func(q *lqueue.Queue)) bool {
	if !lq.mu.TryLock() {
		return false
	}
	defer lq.mu.Unlock()
	fn(lq.q)
	return true
}

// InsertHead inserts s at the head of the queue.
func (lq *Queue) InsertHead(s string) (ok bool) {
	lq.Do(func(q *lqueue.Queue) { ok = q.InsertHead(s) })
	return ok
}

// InsertTail inserts s at the tail of the queue.
func (lq *Queue) InsertTail(s string) (ok bool) {
	lq.Do(func(q *lqueue.Queue) { ok = q.InsertTail(s) })
	return ok
}

// RemoveHead removes the head element and returns its payload. It
// returns false if the queue is empty.
func (lq *Queue) RemoveHead() (s string, ok bool) {
	lq.Do(func(q *lqueue.Queue) {
		if e := q.RemoveHead(nil); e != nil {
			s, ok = e.Value(), true
			e.Release()
		}
	})
	return s, ok
}

// RemoveTail removes the tail element and returns its payload. It
// returns false if the queue is empty.
func (lq *Queue) RemoveTail() (s string, ok bool) {
	lq.Do(func(q *lqueue.Queue) {
		if e := q.RemoveTail(nil); e != nil {
			s, ok = e.Value(), true
			e.Release()
		}
	})
	return s, ok
}

// Size returns the number of elements in the queue.
func (lq *Queue) Size() (n int) {
	lq.Do(func(q *lqueue.Queue) { n = q.Size() })
	return n
}
