package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/hera/internal/metrics"
	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
// CreateEmployeeWithUser and DeleteEmployeeCascade are single transactions: the caller
// either observes the whole state change or none of it.
type EmployeeRepoIface interface {
	CreateEmployeeWithUser(ctx context.Context, employee models.Employee, user *models.User) error
	GetEmployeeByID(ctx context.Context, identifier models.ID) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) error
	DeleteEmployeeCascade(ctx context.Context, identifier models.ID) error
}

func NewEmployeeRepository(db Database, mts *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mts}
}

// UserRepoIface represents the interface for interacting with login accounts.
type UserRepoIface interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, identifier int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (int64, error)
	UpdatePassword(ctx context.Context, identifier int64, passwordHash string) error
}

func NewUserRepository(db Database, mts *metrics.Metrics) UserRepoIface {
	return &Repository{db: db, metrics: mts}
}

// RecordsRepoIface represents the interface for the dependent record
// streams: attendance, leave requests, payroll slips and tasks.
type RecordsRepoIface interface {
	CreateAttendance(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error)
	ListAttendanceByEmployee(ctx context.Context, employeeID models.ID) ([]models.AttendanceRecord, error)

	CreateLeaveRequest(ctx context.Context, leave models.LeaveRequest) (models.LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, employeeID *models.ID) ([]models.LeaveRequest, error)
	DecideLeaveRequest(ctx context.Context, identifier int64, status string) (models.LeaveRequest, error)

	CreatePayrollSlip(ctx context.Context, slip models.PayrollSlip) (models.PayrollSlip, error)
	ListPayrollSlips(ctx context.Context, employeeID *models.ID) ([]models.PayrollSlip, error)

	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTaskByID(ctx context.Context, identifier int64) (models.Task, error)
	ListTasks(ctx context.Context, employeeID *models.ID) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, identifier int64, status string) (models.Task, error)
}

func NewRecordsRepository(db Database, mts *metrics.Metrics) RecordsRepoIface {
	return &Repository{db: db, metrics: mts}
}

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// classifyError maps driver failures onto the error taxonomy. Unique
// index violations become ErrDuplicateKey: the loser of two concurrent
// inserts with the same employee id or email fails here instead of
// overwriting the winner. Foreign key violations become ErrNotFound: a
// dependent record pointing at a nonexistent employee is rejected
// instead of dangling.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %s", models.ErrDuplicateKey, pgErr.ConstraintName)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: %s", models.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}
