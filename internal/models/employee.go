package models

// Employee represents a personnel record. The ID is assigned by the
// operator at creation time, never generated by the database.
type Employee struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
	ManagerID  *ID     `json:"managerId"`
}
