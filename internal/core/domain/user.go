package domain

// User is a planner account. It exists to authenticate edits and to supply
// the editor ID stamped onto cells; roles/permissions are out of scope.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string `json:"-"`
	IsActive     bool
	AuditFields
}
