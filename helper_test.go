package lqueue_test

// File helper_test.go contains test helper functionality.

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neilotoole/lqueue"
)

// newQueue returns a queue holding vals, head to tail.
func newQueue(t testing.TB, vals ...string) *lqueue.Queue {
	t.Helper()
	q := lqueue.New()
	for _, v := range vals {
		require.True(t, q.InsertTail(v))
	}
	return q
}

// requireValues fails t if q does not hold want, head to tail, or if
// q's forward and backward walks disagree.
func requireValues(t testing.TB, q *lqueue.Queue, want ...string) {
	t.Helper()
	fwd, back := lqueue.WalkCounts(q)
	require.Equal(t, fwd, back, "forward and backward walks disagree")
	require.Equal(t, len(want), fwd)
	require.Equal(t, len(want), q.Size())
	if len(want) == 0 {
		require.Empty(t, q.Values())
		return
	}
	require.Equal(t, want, q.Values())
}

// randValues returns n random values drawn from an alphabet of size
// alpha, so that duplicates are likely for small alpha.
func randValues(r *rand.Rand, n, alpha int) []string {
	vals := make([]string, n)
	for i := range vals {
		vals[i] = "v" + strconv.Itoa(r.Intn(alpha))
	}
	return vals
}

// indexOf returns the index of e in elems, or -1.
func indexOf(elems []*lqueue.Element, e *lqueue.Element) int {
	for i := range elems {
		if elems[i] == e {
			return i
		}
	}
	return -1
}
