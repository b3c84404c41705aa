package astar_test

import (
	"testing"

	"github.com/eykd/starlane/astar"
	"github.com/eykd/starlane/prng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBinaryHeap_PopsAscending pushes shuffled priorities and verifies pops
// come out in nondecreasing order.
func TestBinaryHeap_PopsAscending(t *testing.T) {
	rng := prng.New(616)
	h := astar.NewBinaryHeap(64)

	const n = 500
	for i := 0; i < n; i++ {
		h.Push(int32(i), rng.Random()*1000)
	}
	require.Equal(t, n, h.Len(), "all pushed entries must be stored")

	_, prev := h.Pop()
	for h.Len() > 0 {
		_, p := h.Pop()
		require.GreaterOrEqual(t, p, prev, "priorities must pop in nondecreasing order")
		prev = p
	}
}

// TestBinaryHeap_InterleavedPushPop verifies a hand-checked mixed sequence.
func TestBinaryHeap_InterleavedPushPop(t *testing.T) {
	h := astar.NewBinaryHeap(8)
	h.Push(5, 5.0)
	h.Push(3, 3.0)
	h.Push(8, 8.0)

	node, priority := h.Pop()
	assert.Equal(t, int32(3), node, "smallest priority pops first")
	assert.Equal(t, 3.0, priority)

	h.Push(1, 1.0)
	node, _ = h.Pop()
	assert.Equal(t, int32(1), node, "a later cheaper push overtakes older entries")

	node, _ = h.Pop()
	assert.Equal(t, int32(5), node)
	node, _ = h.Pop()
	assert.Equal(t, int32(8), node)
	assert.Equal(t, 0, h.Len(), "heap drains to empty")
}

// TestBinaryHeap_DuplicateNodes verifies lazy decrease-key entries coexist
// and pop by priority.
func TestBinaryHeap_DuplicateNodes(t *testing.T) {
	h := astar.NewBinaryHeap(4)
	h.Push(7, 9.0)
	h.Push(7, 2.0)
	h.Push(7, 5.0)

	_, first := h.Pop()
	_, second := h.Pop()
	_, third := h.Pop()
	assert.Equal(t, []float64{2.0, 5.0, 9.0}, []float64{first, second, third}, "duplicates pop in priority order")
}

// TestBinaryHeap_PopEmptyPanics pins the empty-pop contract.
func TestBinaryHeap_PopEmptyPanics(t *testing.T) {
	h := astar.NewBinaryHeap(0)
	assert.Panics(t, func() { h.Pop() }, "popping an empty heap must panic")
}
