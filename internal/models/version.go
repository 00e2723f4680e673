package models

// Version represents one independent plane of plan data.
type Version struct {
	VersionID string `db:"version_id"`
	Name      string `db:"name"`
	IsDefault bool   `db:"is_default"`
	AuditFields
}
