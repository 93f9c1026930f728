package suffixtrie

import "curgo/internal/domain/models"

// rootHandle is the arena index of the trie's root node. The root is
// created once, by newArena, and never recreated.
const rootHandle = 0

// noLink marks the absence of a suffix link (only the root, and a node
// between its creation and the deferred assignment made at the next step
// of the same insertion, carries this).
const noLink = -1

// edgeKey is the branching key on an edge out of a trie node: either the
// Symbol at some offset, or — once, per generalized string — the string's
// unique end-marker Position. Both forms are comparable, so edgeKey can key
// a plain Go map.
type edgeKey struct {
	sym   models.Symbol
	end   models.Position
	isEnd bool
}

func symbolKey(s models.Symbol) edgeKey {
	return edgeKey{sym: s}
}

func endKey(p models.Position) edgeKey {
	return edgeKey{end: p, isEnd: true}
}

// childSet holds the outgoing edges of one node. It stores the first
// distinct edge inline and only allocates a map once a second distinct
// edge key appears, mirroring the donor's single-pair-or-map space
// optimization for the common case of degree-1 internal nodes. A separate
// insertion-order slice is kept for the (rarer) branching case so that DFS
// traversal order — and therefore extraction order — stays deterministic.
type childSet struct {
	key0  edgeKey
	val0  int
	has0  bool
	extra map[edgeKey]int
	order []edgeKey
}

func (c *childSet) get(k edgeKey) (int, bool) {
	if c.has0 && c.key0 == k {
		return c.val0, true
	}
	if c.extra != nil {
		if h, ok := c.extra[k]; ok {
			return h, true
		}
	}
	return 0, false
}

func (c *childSet) set(k edgeKey, h int) {
	if !c.has0 {
		c.key0, c.val0, c.has0 = k, h, true
		return
	}
	if c.key0 == k {
		c.val0 = h
		return
	}
	if c.extra == nil {
		c.extra = make(map[edgeKey]int)
	}
	if _, exists := c.extra[k]; !exists {
		c.order = append(c.order, k)
	}
	c.extra[k] = h
}

func (c *childSet) len() int {
	n := 0
	if c.has0 {
		n++
	}
	return n + len(c.extra)
}

// single returns the lone child of a degree-1 node. Callers must check
// len() == 1 first.
func (c *childSet) single() (edgeKey, int) {
	return c.key0, c.val0
}

// forEach visits every child edge in first-insertion order.
func (c *childSet) forEach(fn func(k edgeKey, child int)) {
	if c.has0 {
		fn(c.key0, c.val0)
	}
	for _, k := range c.order {
		fn(k, c.extra[k])
	}
}

// indexSet holds the occurrence positions of one node, with set semantics:
// adding a position already present is a no-op. It stores the first
// position inline and promotes to a slice on the second distinct position.
// Because positions are only ever appended in globally non-decreasing
// (StringID, Offset) order — strings are appended in order and each
// string's offsets are inserted left to right — the inline first position
// is always the minimum of the set, which is exactly what the dedup rule in
// the extractor needs without re-deriving it from a sort.
type indexSet struct {
	first models.Position
	has   bool
	rest  []models.Position
}

// add inserts p if it is not already present. A single insertion walk
// (strie.go's suffix-link chain update) can revisit the same node for the
// same position more than once — e.g. on "a a a a" the node for "a" is
// reached via more than one suffix-link chain during the same insert — so
// membership must be checked against every stored position, not just the
// first.
func (s *indexSet) add(p models.Position) {
	if !s.has {
		s.first, s.has = p, true
		return
	}
	if s.first == p {
		return
	}
	for _, q := range s.rest {
		if q == p {
			return
		}
	}
	s.rest = append(s.rest, p)
}

func (s *indexSet) len() int {
	if !s.has {
		return 0
	}
	return 1 + len(s.rest)
}

// firstInserted returns the earliest-added position, which by construction
// is also the minimum position in the set.
func (s *indexSet) firstInserted() models.Position {
	return s.first
}

// sorted returns a freshly allocated, lexicographically sorted copy of the
// occurrence positions, for attaching to an emitted MaximalRepeat.
func (s *indexSet) sorted() []models.Position {
	out := make([]models.Position, 0, s.len())
	if s.has {
		out = append(out, s.first)
	}
	out = append(out, s.rest...)
	insertionSortPositions(out)
	return out
}

// insertionSortPositions sorts in place. Occurrence lists are small in the
// overwhelming common case (most repeats occur a handful of times), so a
// simple insertion sort avoids the overhead of sort.Slice's reflection-free
// but still indirect-call-heavy machinery.
func insertionSortPositions(p []models.Position) {
	for i := 1; i < len(p); i++ {
		for j := i; j > 0 && p[j].Less(p[j-1]); j-- {
			p[j], p[j-1] = p[j-1], p[j]
		}
	}
}

// node is one trie node: its outgoing edges, its occurrence set, and a
// handle to the node reached by dropping this node's first symbol.
type node struct {
	children   childSet
	indices    indexSet
	suffixLink int
}

// arena owns every node created during construction as a flat, append-only
// slice; handles are dense integer indices into it. This breaks the
// ownership cycle that an idiomatic-pointer encoding of the trie would hit
// (parent->child edges plus a suffix-link forest that can point anywhere,
// including back near the root), the same technique the pack's
// itgcl-ahocorasick Matcher uses for its `trie []node` automaton.
type arena struct {
	nodes []node
}

func newArena() *arena {
	a := &arena{nodes: make([]node, 1, 64)}
	a.nodes[rootHandle] = node{suffixLink: noLink}
	return a
}

// newNode appends a fresh node with the given suffix link and returns its
// handle.
func (a *arena) newNode(suffixLink int) int {
	h := len(a.nodes)
	a.nodes = append(a.nodes, node{suffixLink: suffixLink})
	return h
}
