package wbs

import (
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// OrphanPolicy names the treatment of nodes whose parent_id does not
// resolve to any known id.
type OrphanPolicy string

const (
	// OrphanPromoteToRoot places unresolved nodes at the top level.
	// This is the default and matches the backend's rendering contract.
	OrphanPromoteToRoot OrphanPolicy = "promote_to_root"

	// OrphanDrop omits unresolved nodes from the forest entirely.
	OrphanDrop OrphanPolicy = "drop"
)

type BuildInput struct {
	Nodes   []domain.WBSNode
	Orphans OrphanPolicy // empty selects OrphanPromoteToRoot
}

// TreeNode wraps one breakdown record with its resolved children.
// Children keep input order; they are never sorted.
type TreeNode struct {
	domain.WBSNode
	Children []*TreeNode
}

type BuildResult struct {
	Roots []*TreeNode

	// NodeCount is the number of nodes reachable from Roots. Under
	// OrphanPromoteToRoot it always equals the deduplicated input size.
	NodeCount int

	// OrphanCount is the number of nodes whose parent_id failed to
	// resolve, including self-references and links that would have
	// closed a cycle.
	OrphanCount int

	// DuplicateCount is the number of input records skipped because an
	// earlier record carried the same id.
	DuplicateCount int
}

// Build converts a flat parent-referencing collection into a forest.
// Nodes are held in an arena indexed by id; linking happens in a single
// pass and assignments are never revisited, so a malformed collection can
// degrade only into extra roots, never into a cycle or a dropped subtree.
func Build(input BuildInput) BuildResult {
	policy := input.Orphans
	if policy == "" {
		policy = OrphanPromoteToRoot
	}

	var result BuildResult

	// Arena allocation. Capacity is exact so wrapper pointers stay valid
	// while the slice grows.
	arena := make([]TreeNode, 0, len(input.Nodes))
	index := make(map[string]int, len(input.Nodes))
	for _, n := range input.Nodes {
		if _, seen := index[n.ID]; seen {
			result.DuplicateCount++
			continue
		}
		arena = append(arena, TreeNode{WBSNode: n})
		index[n.ID] = len(arena) - 1
	}

	// parentOf tracks assigned links for the cycle guard; -1 means root.
	parentOf := make([]int, len(arena))
	for i := range parentOf {
		parentOf[i] = -1
	}

	for i := range arena {
		node := &arena[i]

		parentIdx, ok := -1, false
		if node.ParentID != nil && *node.ParentID != "" {
			parentIdx, ok = resolveParent(index, parentOf, i, *node.ParentID)
		} else {
			// No parent reference at all: a plain root, not an orphan.
			result.Roots = append(result.Roots, node)
			continue
		}

		if !ok {
			result.OrphanCount++
			if policy == OrphanPromoteToRoot {
				result.Roots = append(result.Roots, node)
			}
			continue
		}

		parentOf[i] = parentIdx
		arena[parentIdx].Children = append(arena[parentIdx].Children, node)
	}

	for _, root := range result.Roots {
		result.NodeCount += countNodes(root)
	}
	return result
}

// resolveParent looks up the parent index for node i, rejecting
// self-references and links that would close a cycle through already
// assigned ancestors.
func resolveParent(index map[string]int, parentOf []int, i int, parentID string) (int, bool) {
	parentIdx, ok := index[parentID]
	if !ok || parentIdx == i {
		return -1, false
	}
	for cursor := parentIdx; cursor != -1; cursor = parentOf[cursor] {
		if cursor == i {
			return -1, false
		}
	}
	return parentIdx, true
}

func countNodes(n *TreeNode) int {
	count := 1
	for _, c := range n.Children {
		count += countNodes(c)
	}
	return count
}
