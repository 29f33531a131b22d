package lqueue

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ErrNoQueue is returned by Chain methods that act on the current
// queue when the chain is empty.
var ErrNoQueue = errors.New("chain has no queue")

// ErrUnknownQueue is returned by Chain.Select and Chain.Remove when
// no queue in the chain has the given ID.
var ErrUnknownQueue = errors.New("unknown queue id")

// Context pairs a Queue with a cached element count, so that several
// queues can be held in a Chain. Size is maintained by the Chain
// operations; callers who mutate Q directly should call Chain.Refresh
// or set Size themselves.
type Context struct {
	// Q is the owned queue. Chain.Merge skips a context whose Q
	// is nil.
	Q *Queue

	// Size is the cached element count of Q.
	Size int

	// ID identifies the context within its Chain. IDs are assigned
	// in increasing order by Chain.Add and never reused.
	ID int
}

// Chain holds an ordered sequence of queues, in the order they were
// added, and supports merging them into one via Chain.Merge. One of
// the queues is the "current" queue, which is the most recently
// added or selected.
//
// A Chain is not safe for concurrent use.
type Chain struct {
	// log receives debug output. If nil, output is discarded.
	log *slog.Logger

	// ctxs is the sequence of contexts, in chain order.
	ctxs []*Context

	// cur is the current context, or nil if ctxs is empty.
	cur *Context

	// nextID is the ID assigned by the next call to Add.
	nextID int
}

// NewChain returns a new, empty Chain. If log is nil, log output
// is discarded.
func NewChain(log *slog.Logger) *Chain {
	return &Chain{log: log}
}

// Add appends a new context holding an empty queue to the chain, and
// makes it the current context. It returns nil if c is nil.
func (c *Chain) Add() *Context {
	if c == nil {
		return nil
	}

	qc := &Context{Q: New(), ID: c.nextID}
	c.nextID++
	c.ctxs = append(c.ctxs, qc)
	c.cur = qc
	c.getLog().Debug("Added queue", "id", qc.ID, "queues", len(c.ctxs))
	return qc
}

// Current returns the current context, or nil if the chain is empty.
func (c *Chain) Current() *Context {
	if c == nil {
		return nil
	}
	return c.cur
}

// Select makes the context with the given id current.
func (c *Chain) Select(id int) (*Context, error) {
	qc, ok := c.find(id)
	if !ok {
		return nil, ErrUnknownQueue
	}
	c.cur = qc
	c.getLog().Debug("Selected queue", "id", id)
	return qc, nil
}

// Remove frees the queue with the given id and removes its context
// from the chain. If it was current, the first remaining context (if
// any) becomes current.
func (c *Chain) Remove(id int) error {
	qc, ok := c.find(id)
	if !ok {
		return ErrUnknownQueue
	}

	qc.Q.Free()
	qc.Size = 0
	c.ctxs = lo.Without(c.ctxs, qc)
	if c.cur == qc {
		c.cur = nil
		if len(c.ctxs) > 0 {
			c.cur = c.ctxs[0]
		}
	}
	c.getLog().Debug("Removed queue", "id", id, "queues", len(c.ctxs))
	return nil
}

// RemoveCurrent is like Remove, for the current context. It returns
// ErrNoQueue if the chain is empty.
func (c *Chain) RemoveCurrent() error {
	if c.Current() == nil {
		return ErrNoQueue
	}
	return c.Remove(c.cur.ID)
}

func (c *Chain) find(id int) (*Context, bool) {
	if c == nil {
		return nil, false
	}
	return lo.Find(c.ctxs, func(qc *Context) bool { return qc.ID == id })
}

// Len returns the number of contexts in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ctxs)
}

// Contexts returns the chain's contexts, in chain order. The returned
// slice is a copy; the contexts are not.
func (c *Chain) Contexts() []*Context {
	if c == nil {
		return nil
	}
	return append([]*Context(nil), c.ctxs...)
}

// Total returns the sum of the cached sizes of every context.
func (c *Chain) Total() int {
	if c == nil {
		return 0
	}
	return lo.SumBy(c.ctxs, func(qc *Context) int { return qc.Size })
}

// Refresh recomputes the cached size of every context by walking its
// queue.
func (c *Chain) Refresh() {
	if c == nil {
		return
	}
	for _, qc := range c.ctxs {
		qc.Size = qc.Q.Size()
	}
}

// Merge merges every queue of the chain into one, and returns the
// merged queue's element count. Every queue must already be sorted in
// the direction given by descend.
//
// When descend is false, the queues are folded into the first queue,
// scanning the chain first to last. When descend is true, they are
// folded into the last queue, scanning last to first. Each queue that
// is folded in is left empty with a zero cached size. Elements with
// equal payloads keep the order in which the fold encounters them.
//
// Merge is a no-op returning zero if the chain has fewer than two
// non-nil queues.
func (c *Chain) Merge(descend bool) int {
	if c == nil {
		return 0
	}

	order := lo.Filter(c.ctxs, func(qc *Context, _ int) bool { return qc.Q != nil })
	if len(order) < 2 {
		return 0
	}
	if descend {
		order = lo.Reverse(order)
	}

	dst := order[0]
	dst.Q.lazyInit()
	for _, src := range order[1:] {
		src.Q.lazyInit()
		mergeLists(&dst.Q.head, &src.Q.head, descend)
		src.Q.head.Init()
		src.Size = 0
	}

	dst.Size = dst.Q.Size()
	c.getLog().Debug("Merged queues", "id", dst.ID, "queues", len(c.ctxs), "size", dst.Size)
	return dst.Size
}

// SortEach sorts every queue in the chain, concurrently, and refreshes
// each cached size. No queue is shared between goroutines, so this is
// safe as long as the caller does not touch the chain until SortEach
// returns. If ctx is canceled before every sort has started, the
// context's cause is returned, and some queues may be left unsorted.
func (c *Chain) SortEach(ctx context.Context, descend bool) error {
	if c == nil {
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, qc := range c.ctxs {
		qc := qc
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return context.Cause(gCtx)
			default:
			}

			qc.Q.Sort(descend)
			qc.Size = qc.Q.Size()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	c.getLog().Debug("Sorted queues", "queues", len(c.ctxs), "descend", descend)
	return nil
}
