package lqueue_test

import (
	"encoding/json"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neilotoole/lqueue"
)

func TestShufflePreservesElements(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	vals := randValues(r, 100, 30)
	q := newQueue(t, vals...)
	q.Shuffle(r)

	got := q.Values()
	require.Len(t, got, len(vals))
	want := append([]string(nil), vals...)
	sort.Strings(want)
	sort.Strings(got)
	require.Equal(t, want, got)

	fwd, back := lqueue.WalkCounts(q)
	require.Equal(t, fwd, back)

	q = newQueue(t, "only")
	q.Shuffle(r)
	requireValues(t, q, "only")
}

// TestShuffleUniform shuffles [1 2 3 4] many times and checks that
// each of the 24 permutations turns up about as often as the others.
func TestShuffleUniform(t *testing.T) {
	const (
		rounds = 24000
		perms  = 24
	)

	r := rand.New(rand.NewSource(99))
	counts := make(map[string]int)
	for i := 0; i < rounds; i++ {
		q := newQueue(t, "1", "2", "3", "4")
		q.Shuffle(r)
		counts[strings.Join(q.Values(), "")]++
	}

	require.Len(t, counts, perms)
	want := rounds / perms
	for perm, got := range counts {
		assert.InDelta(t, want, got, float64(want)/4, "permutation %s", perm)
	}
}

func TestJSON(t *testing.T) {
	q := newQueue(t, "a", `b"quoted"`, "c")
	data, err := json.Marshal(q)
	require.NoError(t, err)
	require.JSONEq(t, `["a","b\"quoted\"","c"]`, string(data))

	data, err = lqueue.New().MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))

	var nilQueue *lqueue.Queue
	data, err = nilQueue.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "null", string(data))

	got := &lqueue.Queue{}
	require.NoError(t, json.Unmarshal([]byte(`["x","y"]`), got))
	requireValues(t, got, "x", "y")

	// Unmarshal appends.
	require.NoError(t, got.UnmarshalJSON([]byte(`["z"]`)))
	requireValues(t, got, "x", "y", "z")

	require.Error(t, got.UnmarshalJSON([]byte(`{"not":"array"}`)))
	requireValues(t, got, "x", "y", "z")

	require.Error(t, nilQueue.UnmarshalJSON([]byte(`["a","b"]`)))
}

func TestJSONEmbedded(t *testing.T) {
	type doc struct {
		Name  string        `json:"name"`
		Queue *lqueue.Queue `json:"queue"`
	}

	in := doc{Name: "fruit", Queue: newQueue(t, "banana", "apple")}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, "fruit", out.Name)
	requireValues(t, out.Queue, "banana", "apple")
}
