package suffixtrie

import "curgo/internal/domain/models"

// ProgressFunc is advisory: add emits the running node-visit counter every
// 1000 internal node visits, plus a final call at the end of the string,
// so a caller can show progress on large files. It carries no semantic
// content and construction proceeds to completion whether or not a caller
// supplies one.
type ProgressFunc func(nodesProcessed int)

// STrie is a generalized (multi-string) online suffix trie built with
// Ukkonen's suffix-link construction. Add extends the same trie with
// successive independent strings; MaximalRepeats performs the
// post-construction extraction pass.
//
// STrie is single-threaded: Add mutates the active point, the node-visit
// counter and node occurrence sets in place, and two Add calls (or an Add
// racing a MaximalRepeats call) must never run concurrently.
type STrie struct {
	arena          *arena
	strings        [][]models.Symbol
	nodesProcessed int
	current        int
	rootKeysOrder  []models.Symbol
	rootSeen       map[models.Symbol]bool
}

// NewSTrie returns an empty trie ready to accept its first Add.
func NewSTrie() *STrie {
	return &STrie{
		arena:    newArena(),
		rootSeen: make(map[models.Symbol]bool),
	}
}

// StringCount reports how many strings have been added so far.
func (t *STrie) StringCount() int {
	return len(t.strings)
}

// String returns the symbol sequence added with the given string_id.
func (t *STrie) String(stringID int) []models.Symbol {
	return t.strings[stringID]
}

// Add extends the trie with a new generalized string, assigning it the
// next string_id in insertion order. onProgress, if non-nil, is called
// with the running node-visit count every 1000 internal node visits and
// once more when the string is fully inserted.
func (t *STrie) Add(symbols []models.Symbol, onProgress ProgressFunc) {
	stringID := len(t.strings)
	t.strings = append(t.strings, symbols)
	t.current = rootHandle
	t.nodesProcessed = 0

	for i, sym := range symbols {
		if !t.rootSeen[sym] {
			t.rootSeen[sym] = true
			t.rootKeysOrder = append(t.rootKeysOrder, sym)
		}
		t.insert(symbolKey(sym), models.Position{StringID: stringID, Offset: i}, onProgress)
	}

	end := models.Position{StringID: stringID, Offset: len(symbols)}
	t.insert(endKey(end), end, onProgress)

	if onProgress != nil {
		onProgress(t.nodesProcessed)
	}
}

// insert runs one step of Ukkonen's construction: it extends every active
// suffix (the chain of nodes reachable from the current active point by
// following suffix links) with the same next edge key, in lock-step,
// deferring each new node's own suffix link until the next step of the
// chain, which links it to the child produced there.
func (t *STrie) insert(key edgeKey, p models.Position, onProgress ProgressFunc) {
	active := t.current
	cur := active
	last := noLink

	for cur != noLink {
		var child int
		if existing, ok := t.arena.nodes[cur].children.get(key); ok {
			// This edge already exists: no new node, but every suffix of
			// the extended substring (existing and its ancestors along
			// suffix links, stopping short of the root) now ends one
			// occurrence later at p. Positions only ever grow, so a node
			// already holding p has it as its latest entry, and an earlier
			// walk in this same step has already covered the rest of its
			// suffix-link chain.
			m := existing
			for m != rootHandle {
				ix := &t.arena.nodes[m].indices
				latest := ix.first
				if n := len(ix.rest); n > 0 {
					latest = ix.rest[n-1]
				}
				if ix.has && latest == p {
					break
				}
				ix.add(p)
				m = t.arena.nodes[m].suffixLink
			}
			child = existing
		} else if t.arena.nodes[cur].suffixLink == noLink {
			// cur is the root: a brand-new child of the root always links
			// back to the root itself.
			child = t.arena.newNode(cur)
			t.arena.nodes[child].indices.add(p)
		} else {
			// Suffix link resolved in the next iteration up the chain, by
			// the `last != noLink` assignment below.
			child = t.arena.newNode(noLink)
			t.arena.nodes[child].indices.add(p)
		}

		if last != noLink {
			t.arena.nodes[last].suffixLink = child
		}
		t.arena.nodes[cur].children.set(key, child)

		last = child
		cur = t.arena.nodes[cur].suffixLink

		t.nodesProcessed++
		if onProgress != nil && t.nodesProcessed%1000 == 0 {
			onProgress(t.nodesProcessed)
		}
	}

	t.current, _ = t.arena.nodes[active].children.get(key)
}
