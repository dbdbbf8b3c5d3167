package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hera/internal/models"
)

// CreatePayrollSlip inserts a payroll slip. Slips are immutable after
// creation; net pay is stored as supplied.
func (r *Repository) CreatePayrollSlip(
	ctx context.Context,
	slip models.PayrollSlip,
) (models.PayrollSlip, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_payroll_slip").Observe(duration)
	}()

	query := `
		INSERT INTO payroll_slips (employee_id, salary, deductions, bonuses, net_pay, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`

	err := r.db.QueryRow(ctx, query,
		slip.EmployeeID.Int64(), slip.Salary, slip.Deductions, slip.Bonuses, slip.NetPay, slip.Date).Scan(&slip.ID)
	if err != nil {
		return models.PayrollSlip{}, fmt.Errorf("failed to insert payroll slip: %w", classifyError(err))
	}

	return slip, nil
}

// ListPayrollSlips returns payroll slips, optionally filtered by
// employee, newest date first.
func (r *Repository) ListPayrollSlips(
	ctx context.Context,
	employeeID *models.ID,
) ([]models.PayrollSlip, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_payroll_slips").Observe(duration)
	}()

	query := `
		SELECT id, employee_id, salary, deductions, bonuses, net_pay, date
		FROM payroll_slips
		WHERE ($1::bigint IS NULL OR employee_id = $1)
		ORDER BY date DESC;
	`

	rows, err := r.db.Query(ctx, query, employeeArg(employeeID))
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll slips: %w", err)
	}
	defer rows.Close()

	var result []models.PayrollSlip
	for rows.Next() {
		var slip models.PayrollSlip
		var rawEmployee int64
		if err = rows.Scan(&slip.ID, &rawEmployee, &slip.Salary,
			&slip.Deductions, &slip.Bonuses, &slip.NetPay, &slip.Date); err != nil {
			return nil, fmt.Errorf("failed to scan payroll slip row: %w", err)
		}
		slip.EmployeeID = models.ID(rawEmployee)
		result = append(result, slip)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll slip rows: %w", err)
	}

	return result, nil
}
