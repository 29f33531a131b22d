package lqueue

import (
	"math/rand"

	"github.com/neilotoole/lqueue/internal/link"
)

// Shuffle randomly permutes q using Fisher-Yates over the list: each
// step picks one of the not-yet-placed elements at the front of q and
// moves it to the tail. Every permutation is equally likely, given a
// uniform r. If r is nil, the global source is used.
func (q *Queue) Shuffle(r *rand.Rand) {
	if q.empty() || q.head.Singular() {
		return
	}

	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}

	head := &q.head
	for remaining := head.Len(); remaining > 0; remaining-- {
		pick := head.Next()
		for j := intn(remaining); j > 0; j-- {
			pick = pick.Next()
		}
		link.MoveTail(pick, head)
	}
}
