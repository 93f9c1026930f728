package suffixtrie

import "curgo/internal/domain/models"

// Stats walks the arena and summarizes its shape: node and leaf counts,
// depth distribution and branching factor. Adapted from the donor's
// utils.TrieStats/analysis.go sizing helper, which served the same role
// for its trigram tries.
func (t *STrie) Stats() models.TrieStats {
	var stats models.TrieStats
	stats.Nodes = len(t.arena.nodes)

	var totalDepth int
	var walk func(handle, depth int)
	walk = func(handle, depth int) {
		n := &t.arena.nodes[handle]
		children := n.children.len()
		stats.TotalChildren += children

		if children == 0 {
			stats.Leaves++
			totalDepth += depth
			if depth > stats.MaxDepth {
				stats.MaxDepth = depth
			}
			return
		}
		n.children.forEach(func(_ edgeKey, child int) {
			walk(child, depth+1)
		})
	}
	walk(rootHandle, 0)

	if stats.Leaves > 0 {
		stats.AvgDepth = float64(totalDepth) / float64(stats.Leaves)
	}
	return stats
}
