package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/jackc/pgx/v5"
)

// GetUserByEmail retrieves a login account by its unique email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_user_by_email").Observe(duration)
	}()

	query := `SELECT id, email, password, name, role, employee_id FROM users WHERE email=$1`

	result, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return result, nil
}

// GetUserByID retrieves a login account by its id.
func (r *Repository) GetUserByID(ctx context.Context, identifier int64) (models.User, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_user_by_id").Observe(duration)
	}()

	query := `SELECT id, email, password, name, role, employee_id FROM users WHERE id=$1`

	result, err := scanUser(r.db.QueryRow(ctx, query, identifier))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return result, nil
}

// CreateUser inserts a standalone login account, one that is not tied to
// an employee creation. Used by the bootstrap admin seeding.
func (r *Repository) CreateUser(ctx context.Context, user models.User) (int64, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_user").Observe(duration)
	}()

	query := `
		INSERT INTO users (email, password, name, role, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	var identifier int64
	err := r.db.QueryRow(ctx, query,
		user.Email, user.Password, user.Name, string(user.Role), employeeArg(user.EmployeeID)).Scan(&identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", classifyError(err))
	}

	return identifier, nil
}

// UpdatePassword overwrites the stored password hash atomically.
func (r *Repository) UpdatePassword(ctx context.Context, identifier int64, passwordHash string) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_password").Observe(duration)
	}()

	query := `UPDATE users SET password = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, identifier, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func scanUser(row rowScanner) (models.User, error) {
	var result models.User
	var role string
	var employeeID *int64

	err := row.Scan(&result.ID, &result.Email, &result.Password, &result.Name, &role, &employeeID)
	if err != nil {
		return models.User{}, err
	}

	result.Role = models.Role(role)
	if employeeID != nil {
		converted := models.ID(*employeeID)
		result.EmployeeID = &converted
	}

	return result, nil
}

func employeeArg(identifier *models.ID) any {
	if identifier == nil {
		return nil
	}
	return identifier.Int64()
}
