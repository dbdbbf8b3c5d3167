package models

// User represents a login account. At most one account exists per
// employee; bootstrap admin accounts carry no employee reference.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Password   string `json:"-"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	EmployeeID *ID    `json:"employeeId"`
}
