package domain

// Version is an independent parallel plan ("scenario") sharing the same
// hierarchy, measure and period catalogs but an isolated set of cell values.
// At most one version should carry the default flag at a time; this is a
// soft invariant flipped by the version service, not enforced against
// concurrent flips.
type Version struct {
	VersionID string
	Name      string
	IsDefault bool
	AuditFields
}
