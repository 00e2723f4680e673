package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

func strptr(s string) *string { return &s }

func testTree() *domain.HierarchyTree {
	return domain.NewHierarchyTree([]domain.HierarchyNode{
		{NodeID: "company", Name: "Company", LevelID: "lvl-0"},
		// Deliberately out of sort order to prove the tree re-sorts.
		{NodeID: "region-b", Name: "Region B", LevelID: "lvl-1", ParentID: strptr("company"), SortOrder: 2},
		{NodeID: "region-a", Name: "Region A", LevelID: "lvl-1", ParentID: strptr("company"), SortOrder: 1},
		{NodeID: "store-2", Name: "Store 2", LevelID: "lvl-2", ParentID: strptr("region-a"), SortOrder: 2},
		{NodeID: "store-1", Name: "Store 1", LevelID: "lvl-2", ParentID: strptr("region-a"), SortOrder: 1},
	})
}

func nodeIDs(nodes []domain.HierarchyNode) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.NodeID
	}
	return ids
}

func TestHierarchyTree_ChildrenOrderedBySortOrder(t *testing.T) {
	tree := testTree()
	assert.Equal(t, []string{"region-a", "region-b"}, nodeIDs(tree.ChildrenOf("company")))
	assert.Equal(t, []string{"store-1", "store-2"}, nodeIDs(tree.ChildrenOf("region-a")))
}

func TestHierarchyTree_SortOrderTieBreaksOnNodeID(t *testing.T) {
	tree := domain.NewHierarchyTree([]domain.HierarchyNode{
		{NodeID: "root", LevelID: "lvl-0"},
		{NodeID: "b", LevelID: "lvl-1", ParentID: strptr("root"), SortOrder: 1},
		{NodeID: "a", LevelID: "lvl-1", ParentID: strptr("root"), SortOrder: 1},
	})
	assert.Equal(t, []string{"a", "b"}, nodeIDs(tree.ChildrenOf("root")))
}

func TestHierarchyTree_ParentOf(t *testing.T) {
	tree := testTree()

	parent, ok := tree.ParentOf("store-1")
	require.True(t, ok)
	assert.Equal(t, "region-a", parent.NodeID)

	_, ok = tree.ParentOf("company")
	assert.False(t, ok, "a root has no parent")

	_, ok = tree.ParentOf("n-ghost")
	assert.False(t, ok)
}

func TestHierarchyTree_HasChildren(t *testing.T) {
	tree := testTree()
	assert.True(t, tree.HasChildren("company"))
	assert.True(t, tree.HasChildren("region-a"))
	assert.False(t, tree.HasChildren("region-b"))
	assert.False(t, tree.HasChildren("store-1"))
}

func TestHierarchyTree_DescendantsOfIsBreadthFirst(t *testing.T) {
	tree := testTree()
	assert.Equal(t, []string{"region-a", "region-b", "store-1", "store-2"}, nodeIDs(tree.DescendantsOf("company")))
	assert.Empty(t, tree.DescendantsOf("store-1"))
}

func TestHierarchyTree_SubtreeOf(t *testing.T) {
	tree := testTree()
	assert.Equal(t, []string{"region-a", "store-1", "store-2"}, nodeIDs(tree.SubtreeOf("region-a")))
	assert.Nil(t, tree.SubtreeOf("n-ghost"))
}

func TestHierarchyTree_Forest(t *testing.T) {
	tree := domain.NewHierarchyTree([]domain.HierarchyNode{
		{NodeID: "merch", LevelID: "lvl-0", SortOrder: 2},
		{NodeID: "finance", LevelID: "lvl-0", SortOrder: 1},
	})
	assert.Equal(t, []string{"finance", "merch"}, nodeIDs(tree.Roots()))
}
