package models

import "time"

// Attendance statuses as written by the original clients. The column is
// an open string, duplicates per day are permitted.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLeave   = "leave"
)

// Leave request statuses. A request starts as pending and moves to
// approved or rejected exactly once.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// Task statuses. Transitions are unconstrained.
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

type AttendanceRecord struct {
	ID         int64     `json:"id"`
	EmployeeID ID        `json:"employeeId"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

type LeaveRequest struct {
	ID         int64     `json:"id"`
	EmployeeID ID        `json:"employeeId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
}

// PayrollSlip is immutable after creation. NetPay is supplied by the
// caller, not recomputed from the other amounts.
type PayrollSlip struct {
	ID         int64     `json:"id"`
	EmployeeID ID        `json:"employeeId"`
	Salary     float64   `json:"salary"`
	Deductions float64   `json:"deductions"`
	Bonuses    float64   `json:"bonuses"`
	NetPay     float64   `json:"netPay"`
	Date       time.Time `json:"date"`
}

type Task struct {
	ID          int64     `json:"id"`
	EmployeeID  ID        `json:"employeeId"`
	AssignedBy  ID        `json:"assignedBy"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Status      string    `json:"status"`
}
