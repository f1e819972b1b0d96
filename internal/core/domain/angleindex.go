package domain

import "container/heap"

// angleIndex is a priority index over the interior points of a path,
// keyed by removal rank with the arena id as tiebreak, so removal order
// is deterministic for equal ranks. A position table keyed by arena id
// lets a point's neighbors be evicted by identity before re-scoring.
type angleIndex struct {
	entries []indexEntry
	pos     []int // arena id -> position in entries, -1 when absent
}

type indexEntry struct {
	id   int
	rank float64
}

func newAngleIndex(n int) *angleIndex {
	ai := &angleIndex{
		entries: make([]indexEntry, 0, n),
		pos:     make([]int, n),
	}
	for i := range ai.pos {
		ai.pos[i] = -1
	}
	return ai
}

// insert adds an interior point under the given rank.
func (ai *angleIndex) insert(id int, rank float64) {
	heap.Push(ai, indexEntry{id: id, rank: rank})
}

// remove evicts the point if present, a no-op otherwise.
func (ai *angleIndex) remove(id int) {
	if p := ai.pos[id]; p >= 0 {
		heap.Remove(ai, p)
	}
}

// popMin removes and returns the id with the smallest (rank, id) key.
// The caller checks Len first.
func (ai *angleIndex) popMin() int {
	return heap.Pop(ai).(indexEntry).id
}

func (ai *angleIndex) Len() int { return len(ai.entries) }

func (ai *angleIndex) Less(i, j int) bool {
	if ai.entries[i].rank != ai.entries[j].rank {
		return ai.entries[i].rank < ai.entries[j].rank
	}
	return ai.entries[i].id < ai.entries[j].id
}

func (ai *angleIndex) Swap(i, j int) {
	ai.entries[i], ai.entries[j] = ai.entries[j], ai.entries[i]
	ai.pos[ai.entries[i].id] = i
	ai.pos[ai.entries[j].id] = j
}

// Push and Pop implement heap.Interface; callers use insert and popMin.
func (ai *angleIndex) Push(v any) {
	e := v.(indexEntry)
	ai.pos[e.id] = len(ai.entries)
	ai.entries = append(ai.entries, e)
}

func (ai *angleIndex) Pop() any {
	last := len(ai.entries) - 1
	e := ai.entries[last]
	ai.entries = ai.entries[:last]
	ai.pos[e.id] = -1
	return e
}
