package models

// HierarchyLevel represents one named stratum of the merchandise hierarchy.
type HierarchyLevel struct {
	LevelID string `db:"level_id"`
	Name    string `db:"name"`
	Depth   int    `db:"depth"`
	AuditFields
}

// HierarchyNode represents one node of the merchandise hierarchy forest.
// ParentID is nullable; root nodes carry NULL.
type HierarchyNode struct {
	NodeID    string  `db:"node_id"`
	Name      string  `db:"name"`
	LevelID   string  `db:"level_id"`
	ParentID  *string `db:"parent_id"`
	SortOrder int     `db:"sort_order"`
	AuditFields
}
