// Package astar - array-backed binary min-heap used as the A* open set.
package astar

// heapNode pairs a flat cell index with its queue priority (f = g + h).
type heapNode struct {
	node     int32
	priority float64
}

// BinaryHeap is a min-heap over (node, priority) pairs ordered by ascending
// priority. The zero value is ready to use; NewBinaryHeap preallocates.
// Duplicate nodes may coexist (lazy decrease-key pushes fresh entries rather
// than updating old ones); consumers skip stale pops via their own
// bookkeeping.
type BinaryHeap struct {
	nodes []heapNode
}

// NewBinaryHeap returns a heap with capacity preallocated for roughly the
// expected open-set size.
//
// Complexity: O(1).
func NewBinaryHeap(capacity int) *BinaryHeap {
	return &BinaryHeap{nodes: make([]heapNode, 0, capacity)}
}

// Len returns the number of stored entries.
// Complexity: O(1).
func (h *BinaryHeap) Len() int {
	return len(h.nodes)
}

// Push inserts an entry and bubbles it up until its parent's priority is no
// greater than its own.
//
// Complexity: O(log n).
func (h *BinaryHeap) Push(node int32, priority float64) {
	h.nodes = append(h.nodes, heapNode{node: node, priority: priority})
	i := len(h.nodes) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes[parent].priority <= h.nodes[i].priority {
			break
		}
		h.nodes[i], h.nodes[parent] = h.nodes[parent], h.nodes[i]
		i = parent
	}
}

// Pop removes and returns the minimum-priority entry: the last element is
// swapped into the root and sunk until both children have priority no
// smaller than its own. Pop panics on an empty heap; guard with Len.
//
// Complexity: O(log n).
func (h *BinaryHeap) Pop() (node int32, priority float64) {
	n := len(h.nodes)
	if n == 0 {
		panic("astar: Pop on empty BinaryHeap")
	}
	top := h.nodes[0]
	h.nodes[0] = h.nodes[n-1]
	h.nodes = h.nodes[:n-1]
	n--

	i := 0
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.nodes[left].priority < h.nodes[smallest].priority {
			smallest = left
		}
		if right < n && h.nodes[right].priority < h.nodes[smallest].priority {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.nodes[i], h.nodes[smallest] = h.nodes[smallest], h.nodes[i]
		i = smallest
	}
	return top.node, top.priority
}
