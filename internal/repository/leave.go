package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateLeaveRequest inserts a leave request in the pending state. No
// ordering between start and end date is enforced, matching the
// upstream behavior.
func (r *Repository) CreateLeaveRequest(
	ctx context.Context,
	leave models.LeaveRequest,
) (models.LeaveRequest, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_leave_request").Observe(duration)
	}()

	query := `
		INSERT INTO leave_requests (employee_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	leave.Status = models.LeavePending
	err := r.db.QueryRow(ctx, query,
		leave.EmployeeID.Int64(), leave.StartDate, leave.EndDate, leave.Reason, leave.Status).Scan(&leave.ID)
	if err != nil {
		return models.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", classifyError(err))
	}

	return leave, nil
}

// ListLeaveRequests returns leave requests, optionally filtered by
// employee, newest start date first.
func (r *Repository) ListLeaveRequests(
	ctx context.Context,
	employeeID *models.ID,
) ([]models.LeaveRequest, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_leave_requests").Observe(duration)
	}()

	query := `
		SELECT id, employee_id, start_date, end_date, reason, status
		FROM leave_requests
		WHERE ($1::bigint IS NULL OR employee_id = $1)
		ORDER BY start_date DESC;
	`

	rows, err := r.db.Query(ctx, query, employeeArg(employeeID))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []models.LeaveRequest
	for rows.Next() {
		var leave models.LeaveRequest
		var rawEmployee int64
		if err = rows.Scan(&leave.ID, &rawEmployee, &leave.StartDate,
			&leave.EndDate, &leave.Reason, &leave.Status); err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		leave.EmployeeID = models.ID(rawEmployee)
		result = append(result, leave)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave request rows: %w", err)
	}

	return result, nil
}

// DecideLeaveRequest moves a pending request to approved or rejected.
// The transition is one-way: a request that already left the pending
// state is reported as ErrConflict, a missing id as ErrNotFound.
func (r *Repository) DecideLeaveRequest(
	ctx context.Context,
	identifier int64,
	status string,
) (models.LeaveRequest, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("decide_leave_request").Observe(duration)
	}()

	// One statement, one snapshot: the fallback branch that reports an
	// already-decided request cannot race a concurrent delete.
	query := `
		WITH decided AS (
			UPDATE leave_requests
			SET status = $2, updated_at = CURRENT_TIMESTAMP
			WHERE id = $1 AND status = 'pending'
			RETURNING id, employee_id, start_date, end_date, reason, status
		)
		SELECT id, employee_id, start_date, end_date, reason, status, TRUE AS applied
		FROM decided
		UNION ALL
		SELECT id, employee_id, start_date, end_date, reason, status, FALSE
		FROM leave_requests
		WHERE id = $1 AND NOT EXISTS (SELECT 1 FROM decided);
	`

	var leave models.LeaveRequest
	var rawEmployee int64
	var applied bool
	err := r.db.QueryRow(ctx, query, identifier, status).Scan(
		&leave.ID, &rawEmployee, &leave.StartDate, &leave.EndDate, &leave.Reason, &leave.Status, &applied)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.LeaveRequest{}, models.ErrNotFound
	}
	if err != nil {
		return models.LeaveRequest{}, fmt.Errorf("failed to decide leave request: %w", err)
	}
	if !applied {
		return models.LeaveRequest{}, models.ErrConflict
	}

	leave.EmployeeID = models.ID(rawEmployee)
	return leave, nil
}
