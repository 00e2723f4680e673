package domain

import "sort"

// HierarchyLevel names one level of the product/location hierarchy
// (e.g. Company > Division > Department > Class).
type HierarchyLevel struct {
	LevelID string
	Name    string
	Depth   int // 0 = coarsest
	AuditFields
}

// HierarchyNode is a single node of the planning hierarchy. A nil ParentID
// marks a root. SortOrder drives sibling ordering, which is load-bearing for
// disaggregation: the last-sorted sibling absorbs the rounding remainder.
type HierarchyNode struct {
	NodeID    string
	Name      string
	LevelID   string
	ParentID  *string
	SortOrder int
	AuditFields
}

// HierarchyTree is an immutable per-request snapshot of the node hierarchy,
// indexed for iterative traversal. Build one at the start of a pipeline
// invocation instead of holding long-lived trees that can drift from storage.
type HierarchyTree struct {
	nodes    map[string]HierarchyNode
	children map[string][]HierarchyNode // parent node ID -> ordered children
	roots    []HierarchyNode
}

// NewHierarchyTree indexes the given nodes. Children are ordered by
// SortOrder, then NodeID as a stable tie-break.
func NewHierarchyTree(nodes []HierarchyNode) *HierarchyTree {
	t := &HierarchyTree{
		nodes:    make(map[string]HierarchyNode, len(nodes)),
		children: make(map[string][]HierarchyNode),
	}
	for _, n := range nodes {
		t.nodes[n.NodeID] = n
		if n.ParentID == nil {
			t.roots = append(t.roots, n)
		} else {
			t.children[*n.ParentID] = append(t.children[*n.ParentID], n)
		}
	}
	sortNodes(t.roots)
	for _, siblings := range t.children {
		sortNodes(siblings)
	}
	return t
}

func sortNodes(ns []HierarchyNode) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].SortOrder != ns[j].SortOrder {
			return ns[i].SortOrder < ns[j].SortOrder
		}
		return ns[i].NodeID < ns[j].NodeID
	})
}

// Node returns the node with the given ID, if present.
func (t *HierarchyTree) Node(nodeID string) (HierarchyNode, bool) {
	n, ok := t.nodes[nodeID]
	return n, ok
}

// ChildrenOf returns the ordered direct children of a node.
func (t *HierarchyTree) ChildrenOf(nodeID string) []HierarchyNode {
	return t.children[nodeID]
}

// ParentOf returns the parent of a node, or false at a root.
func (t *HierarchyTree) ParentOf(nodeID string) (HierarchyNode, bool) {
	n, ok := t.nodes[nodeID]
	if !ok || n.ParentID == nil {
		return HierarchyNode{}, false
	}
	p, ok := t.nodes[*n.ParentID]
	return p, ok
}

// HasChildren reports whether the node is internal (spreadable).
func (t *HierarchyTree) HasChildren(nodeID string) bool {
	return len(t.children[nodeID]) > 0
}

// Roots returns the ordered root nodes of the forest.
func (t *HierarchyTree) Roots() []HierarchyNode {
	return t.roots
}

// DescendantsOf returns every node strictly below the given node, in
// breadth-first sibling order. Implemented with an explicit queue so that
// synthetic deep hierarchies cannot exhaust the stack.
func (t *HierarchyTree) DescendantsOf(nodeID string) []HierarchyNode {
	var out []HierarchyNode
	queue := append([]HierarchyNode(nil), t.children[nodeID]...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n)
		queue = append(queue, t.children[n.NodeID]...)
	}
	return out
}

// SubtreeOf returns the node itself followed by all its descendants.
func (t *HierarchyTree) SubtreeOf(nodeID string) []HierarchyNode {
	n, ok := t.nodes[nodeID]
	if !ok {
		return nil
	}
	return append([]HierarchyNode{n}, t.DescendantsOf(nodeID)...)
}
