package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateTask inserts a task for an assignee. AssignedBy is stored as a
// plain reference, not enforced as a foreign key.
func (r *Repository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_task").Observe(duration)
	}()

	query := `
		INSERT INTO tasks (employee_id, assigned_by, description, deadline, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	err := r.db.QueryRow(ctx, query,
		task.EmployeeID.Int64(), task.AssignedBy.Int64(), task.Description, task.Deadline, task.Status).Scan(&task.ID)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %w", classifyError(err))
	}

	return task, nil
}

// ListTasks returns tasks, optionally filtered by assignee, earliest
// deadline first.
func (r *Repository) ListTasks(ctx context.Context, employeeID *models.ID) ([]models.Task, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_tasks").Observe(duration)
	}()

	query := `
		SELECT id, employee_id, assigned_by, description, deadline, status
		FROM tasks
		WHERE ($1::bigint IS NULL OR employee_id = $1)
		ORDER BY deadline ASC;
	`

	rows, err := r.db.Query(ctx, query, employeeArg(employeeID))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var result []models.Task
	for rows.Next() {
		var task models.Task
		var rawEmployee, rawAssigner int64
		if err = rows.Scan(&task.ID, &rawEmployee, &rawAssigner,
			&task.Description, &task.Deadline, &task.Status); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		task.EmployeeID = models.ID(rawEmployee)
		task.AssignedBy = models.ID(rawAssigner)
		result = append(result, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task rows: %w", err)
	}

	return result, nil
}

// GetTaskByID retrieves a single task.
func (r *Repository) GetTaskByID(ctx context.Context, identifier int64) (models.Task, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_task_by_id").Observe(duration)
	}()

	query := `SELECT id, employee_id, assigned_by, description, deadline, status FROM tasks WHERE id=$1`

	var task models.Task
	var rawEmployee, rawAssigner int64
	err := r.db.QueryRow(ctx, query, identifier).Scan(
		&task.ID, &rawEmployee, &rawAssigner, &task.Description, &task.Deadline, &task.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Task{}, models.ErrNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	task.EmployeeID = models.ID(rawEmployee)
	task.AssignedBy = models.ID(rawAssigner)
	return task, nil
}

// UpdateTaskStatus sets the status of a task. Transitions are
// unconstrained: any value may replace any value.
func (r *Repository) UpdateTaskStatus(
	ctx context.Context,
	identifier int64,
	status string,
) (models.Task, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_task_status").Observe(duration)
	}()

	query := `
		UPDATE tasks
		SET status = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, employee_id, assigned_by, description, deadline, status;
	`

	var task models.Task
	var rawEmployee, rawAssigner int64
	err := r.db.QueryRow(ctx, query, identifier, status).Scan(
		&task.ID, &rawEmployee, &rawAssigner, &task.Description, &task.Deadline, &task.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Task{}, models.ErrNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}

	task.EmployeeID = models.ID(rawEmployee)
	task.AssignedBy = models.ID(rawAssigner)
	return task, nil
}
