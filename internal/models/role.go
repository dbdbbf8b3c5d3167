package models

// Role is the closed set of account roles. Permission decisions branch
// on these values in one place (services/records policy), never on raw
// strings in handlers.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Identity is the verified token payload attached to a request after the
// authorization gate has accepted it.
type Identity struct {
	UserID     int64 `json:"userId"`
	Role       Role  `json:"role"`
	EmployeeID *ID   `json:"employeeId"`
}
