package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hera/internal/models"
)

// CreateAttendance inserts an attendance row. Duplicate dates per
// employee are permitted.
func (r *Repository) CreateAttendance(
	ctx context.Context,
	record models.AttendanceRecord,
) (models.AttendanceRecord, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_attendance").Observe(duration)
	}()

	query := `
		INSERT INTO attendance_records (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	err := r.db.QueryRow(ctx, query, record.EmployeeID.Int64(), record.Date, record.Status).Scan(&record.ID)
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("failed to insert attendance record: %w", classifyError(err))
	}

	return record, nil
}

// ListAttendanceByEmployee returns attendance rows for one employee,
// newest date first.
func (r *Repository) ListAttendanceByEmployee(
	ctx context.Context,
	employeeID models.ID,
) ([]models.AttendanceRecord, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_attendance").Observe(duration)
	}()

	query := `
		SELECT id, employee_id, date, status
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date DESC;
	`

	rows, err := r.db.Query(ctx, query, employeeID.Int64())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var result []models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		var rawEmployee int64
		if err = rows.Scan(&record.ID, &rawEmployee, &record.Date, &record.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		record.EmployeeID = models.ID(rawEmployee)
		result = append(result, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return result, nil
}
