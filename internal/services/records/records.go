// Package records serves the four record streams hanging off an
// employee: attendance, leave requests, payroll slips and tasks. Every
// operation takes the verified identity of the caller and enforces the
// role and ownership rules from policy.go.
package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/UnknownOlympus/hera/internal/repository"
)

type Service struct {
	log  *slog.Logger
	repo repository.RecordsRepoIface
}

func NewService(log *slog.Logger, repo repository.RecordsRepoIface) *Service {
	return &Service{log: log, repo: repo}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "records"),
	)
}

// MarkAttendance records an attendance row. Employees mark their own
// attendance; admins and managers may mark anyone's.
func (s *Service) MarkAttendance(
	ctx context.Context,
	identity models.Identity,
	record models.AttendanceRecord,
) (models.AttendanceRecord, error) {
	if record.Status == "" {
		return models.AttendanceRecord{}, fmt.Errorf("%w: attendance status is required", models.ErrValidation)
	}
	if err := requireOwnEmployee(identity, record.EmployeeID); err != nil {
		return models.AttendanceRecord{}, err
	}

	created, err := s.repo.CreateAttendance(ctx, record)
	if err != nil {
		return models.AttendanceRecord{}, s.classify("failed to mark attendance", err)
	}
	return created, nil
}

// ListAttendance returns the attendance rows of one employee, newest
// first. Non-privileged callers may only read their own.
func (s *Service) ListAttendance(
	ctx context.Context,
	identity models.Identity,
	employeeID models.ID,
) ([]models.AttendanceRecord, error) {
	if err := requireOwnEmployee(identity, employeeID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListAttendanceByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return list, nil
}

// RequestLeave files a leave request on behalf of the caller's
// employee record. The interval is stored as submitted; no ordering
// between the dates is enforced.
func (s *Service) RequestLeave(
	ctx context.Context,
	identity models.Identity,
	leave models.LeaveRequest,
) (models.LeaveRequest, error) {
	if err := requireOwnEmployee(identity, leave.EmployeeID); err != nil {
		return models.LeaveRequest{}, err
	}

	created, err := s.repo.CreateLeaveRequest(ctx, leave)
	if err != nil {
		return models.LeaveRequest{}, s.classify("failed to request leave", err)
	}
	return created, nil
}

// ListLeaves returns leave requests, newest start date first, scoped
// to the caller unless it may read any employee.
func (s *Service) ListLeaves(
	ctx context.Context,
	identity models.Identity,
	employeeID *models.ID,
) ([]models.LeaveRequest, error) {
	filter, err := scopeFilter(identity, employeeID)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListLeaveRequests(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return list, nil
}

// DecideLeave approves or rejects a pending request. Only admins and
// managers decide, and only once per request.
func (s *Service) DecideLeave(
	ctx context.Context,
	identity models.Identity,
	identifier int64,
	approve bool,
) (models.LeaveRequest, error) {
	const opn = "Records.DecideLeave"
	log := s.initLogger(opn)

	if !canDecideLeave(identity.Role) {
		return models.LeaveRequest{}, fmt.Errorf("%w: only an approver may decide leave", models.ErrForbidden)
	}

	status := models.LeaveRejected
	if approve {
		status = models.LeaveApproved
	}

	decided, err := s.repo.DecideLeaveRequest(ctx, identifier, status)
	if err != nil {
		return models.LeaveRequest{}, s.classify("failed to decide leave request", err)
	}

	log.InfoContext(ctx, "leave request decided", "leave_id", identifier, "status", status)
	return decided, nil
}

// CreatePayroll issues a payroll slip. Admin only. Net pay is stored
// as supplied by the caller, not recomputed.
func (s *Service) CreatePayroll(
	ctx context.Context,
	identity models.Identity,
	slip models.PayrollSlip,
) (models.PayrollSlip, error) {
	if !canCreatePayroll(identity.Role) {
		return models.PayrollSlip{}, fmt.Errorf("%w: only an admin may issue payroll", models.ErrForbidden)
	}

	created, err := s.repo.CreatePayrollSlip(ctx, slip)
	if err != nil {
		return models.PayrollSlip{}, s.classify("failed to create payroll slip", err)
	}
	return created, nil
}

// ListPayroll returns payroll slips, newest first, scoped to the
// caller unless it may read any employee.
func (s *Service) ListPayroll(
	ctx context.Context,
	identity models.Identity,
	employeeID *models.ID,
) ([]models.PayrollSlip, error) {
	filter, err := scopeFilter(identity, employeeID)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListPayrollSlips(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll slips: %w", err)
	}
	return list, nil
}

// CreateTask assigns a task to an employee. Admins and managers only.
func (s *Service) CreateTask(
	ctx context.Context,
	identity models.Identity,
	task models.Task,
) (models.Task, error) {
	if !canAssignTask(identity.Role) {
		return models.Task{}, fmt.Errorf("%w: only an admin or manager may assign tasks", models.ErrForbidden)
	}
	if task.Description == "" {
		return models.Task{}, fmt.Errorf("%w: task description is required", models.ErrValidation)
	}
	if task.Status == "" {
		task.Status = models.TaskPending
	}

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, s.classify("failed to create task", err)
	}
	return created, nil
}

// ListTasks returns tasks ordered by deadline, scoped to the caller
// unless it may read any employee.
func (s *Service) ListTasks(
	ctx context.Context,
	identity models.Identity,
	employeeID *models.ID,
) ([]models.Task, error) {
	filter, err := scopeFilter(identity, employeeID)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return list, nil
}

// UpdateTaskStatus sets the status of a task. The assignee and admins
// may update; managers who are not the assignee may not.
func (s *Service) UpdateTaskStatus(
	ctx context.Context,
	identity models.Identity,
	identifier int64,
	status string,
) (models.Task, error) {
	if status == "" {
		return models.Task{}, fmt.Errorf("%w: task status is required", models.ErrValidation)
	}

	task, err := s.repo.GetTaskByID(ctx, identifier)
	if err != nil {
		return models.Task{}, s.classify("failed to get task", err)
	}

	if identity.Role != models.RoleAdmin {
		if identity.EmployeeID == nil || *identity.EmployeeID != task.EmployeeID {
			return models.Task{}, fmt.Errorf("%w: only the assignee or an admin may update a task", models.ErrForbidden)
		}
	}

	updated, err := s.repo.UpdateTaskStatus(ctx, identifier, status)
	if err != nil {
		return models.Task{}, s.classify("failed to update task status", err)
	}
	return updated, nil
}

// classify keeps taxonomy errors intact and wraps everything else.
func (s *Service) classify(msg string, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrDuplicateKey),
		errors.Is(err, models.ErrConflict):
		return err
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
