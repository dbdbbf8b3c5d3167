package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateEmployeeWithUser inserts an employee row and, when user is not
// nil, its linked login account in one transaction. The employee id is
// the caller-chosen value, never a sequence. A unique violation on
// either insert aborts the whole transaction and surfaces as
// ErrDuplicateKey, so no employee-without-user or user-without-employee
// state is ever committed.
func (r *Repository) CreateEmployeeWithUser(
	ctx context.Context,
	employee models.Employee,
	user *models.User,
) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_employee_with_user").Observe(duration)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	employeeQuery := `
		INSERT INTO employees (id, name, position, department, salary, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err = tx.Exec(ctx, employeeQuery,
		employee.ID.Int64(), employee.Name, employee.Position,
		employee.Department, employee.Salary, managerArg(employee.ManagerID))
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", classifyError(err))
	}

	if user != nil {
		userQuery := `
			INSERT INTO users (email, password, name, role, employee_id)
			VALUES ($1, $2, $3, $4, $5);
		`

		_, err = tx.Exec(ctx, userQuery,
			user.Email, user.Password, user.Name, string(user.Role), employee.ID.Int64())
		if err != nil {
			return fmt.Errorf("failed to insert linked user: %w", classifyError(err))
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit employee creation: %w", err)
	}

	return nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier models.ID) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(duration)
	}()

	query := `SELECT id, name, position, department, salary, manager_id FROM employees WHERE id=$1`

	result, err := scanEmployee(r.db.QueryRow(ctx, query, identifier.Int64()))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, models.ErrNotFound
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// ListEmployees returns all employees ordered by id.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_employees").Observe(duration)
	}()

	query := `SELECT id, name, position, department, salary, manager_id FROM employees ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var result []models.Employee
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", scanErr)
		}
		result = append(result, employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return result, nil
}

// UpdateEmployee updates the profile fields of an employee. The linked
// login account is not touched through this path.
func (r *Repository) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_employee").Observe(duration)
	}()

	query := `
		UPDATE employees
		SET name = $2, position = $3, department = $4, salary = $5, manager_id = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query,
		employee.ID.Int64(), employee.Name, employee.Position,
		employee.Department, employee.Salary, managerArg(employee.ManagerID))
	if err != nil {
		return fmt.Errorf("failed to update employee data: %w", classifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// DeleteEmployeeCascade removes an employee and every dependent record
// in one transaction. The order matters for referential safety: login
// account first, then the four record streams, then subordinates are
// re-pointed to no manager, then the employee row itself. Subordinates
// survive the deletion of their manager. A missing employee aborts the
// transaction with ErrNotFound and no step is committed.
func (r *Repository) DeleteEmployeeCascade(ctx context.Context, identifier models.ID) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_employee_cascade").Observe(duration)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	steps := []struct {
		name  string
		query string
	}{
		{"delete linked user", `DELETE FROM users WHERE employee_id = $1`},
		{"delete attendance", `DELETE FROM attendance_records WHERE employee_id = $1`},
		{"delete leave requests", `DELETE FROM leave_requests WHERE employee_id = $1`},
		{"delete payroll slips", `DELETE FROM payroll_slips WHERE employee_id = $1`},
		{"delete assigned tasks", `DELETE FROM tasks WHERE employee_id = $1`},
		{"orphan subordinates", `UPDATE employees SET manager_id = NULL WHERE manager_id = $1`},
	}

	for _, step := range steps {
		if _, err = tx.Exec(ctx, step.query, identifier.Int64()); err != nil {
			return fmt.Errorf("failed to %s: %w", step.name, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM employees WHERE id = $1`, identifier.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit employee cascade: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var result models.Employee
	var rawID int64
	var managerID *int64

	err := row.Scan(&rawID, &result.Name, &result.Position, &result.Department, &result.Salary, &managerID)
	if err != nil {
		return models.Employee{}, err
	}

	result.ID = models.ID(rawID)
	if managerID != nil {
		converted := models.ID(*managerID)
		result.ManagerID = &converted
	}

	return result, nil
}

// managerArg converts an optional manager reference into a nullable
// query argument.
func managerArg(identifier *models.ID) any {
	if identifier == nil {
		return nil
	}
	return identifier.Int64()
}
