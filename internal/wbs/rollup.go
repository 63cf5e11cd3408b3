package wbs

import "github.com/vijaykmarupuudi/planhub/internal/domain"

// Rollup aggregates hour and completion figures across a subtree.
type Rollup struct {
	EstimatedHours float64
	ActualHours    float64
	NodeCount      int
	CompletedCount int
}

// Rollup walks the subtree rooted at n and sums its figures. The node
// itself is included.
func (n *TreeNode) Rollup() Rollup {
	r := Rollup{
		EstimatedHours: n.EstimatedHours,
		ActualHours:    n.ActualHours,
		NodeCount:      1,
	}
	if n.Status == domain.TaskCompleted {
		r.CompletedCount = 1
	}
	for _, c := range n.Children {
		cr := c.Rollup()
		r.EstimatedHours += cr.EstimatedHours
		r.ActualHours += cr.ActualHours
		r.NodeCount += cr.NodeCount
		r.CompletedCount += cr.CompletedCount
	}
	return r
}

// Walk visits every node of the forest depth-first in child order.
// isLast reports whether the node is the final sibling at its level,
// which the renderer needs for connector glyphs.
func Walk(roots []*TreeNode, visit func(n *TreeNode, depth int, isLast bool)) {
	for i, root := range roots {
		walkNode(root, 0, i == len(roots)-1, visit)
	}
}

func walkNode(n *TreeNode, depth int, isLast bool, visit func(*TreeNode, int, bool)) {
	visit(n, depth, isLast)
	for i, c := range n.Children {
		walkNode(c, depth+1, i == len(n.Children)-1, visit)
	}
}
