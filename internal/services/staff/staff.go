// Package staff is the identity lifecycle manager: it owns the coupled
// creation and destruction of an Employee profile and its login
// account, and the cascade that removes dependent records.
package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/UnknownOlympus/hera/internal/auth"
	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/UnknownOlympus/hera/internal/repository"
)

type Service struct {
	log             *slog.Logger
	repo            repository.EmployeeRepoIface
	defaultPassword string
}

// NewService creates the lifecycle manager. defaultPassword is the
// documented bootstrap credential assigned to auto-created accounts;
// operators are expected to have it rotated after first login.
func NewService(log *slog.Logger, repo repository.EmployeeRepoIface, defaultPassword string) *Service {
	return &Service{log: log, repo: repo, defaultPassword: defaultPassword}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "staff"),
	)
}

// CreateInput carries the operator-supplied fields for a new employee.
// The id is chosen by the caller, not generated. Email is optional:
// when empty, the employee is created without a login account.
type CreateInput struct {
	ID         models.ID
	Name       string
	Email      string
	Position   string
	Department string
	Salary     float64
	ManagerID  *models.ID
}

// Create inserts an employee and, when an email is supplied, a linked
// login account with the default password in a single transaction.
// Reusing an existing employee id or email fails with ErrDuplicateKey
// and leaves prior state unchanged.
func (s *Service) Create(ctx context.Context, input CreateInput) (models.Employee, error) {
	const opn = "Staff.Create"
	log := s.initLogger(opn)

	if err := validateInput(input); err != nil {
		return models.Employee{}, err
	}

	employee := models.Employee{
		ID:         input.ID,
		Name:       input.Name,
		Position:   input.Position,
		Department: input.Department,
		Salary:     input.Salary,
		ManagerID:  input.ManagerID,
	}

	var account *models.User
	if input.Email != "" {
		hash, err := auth.HashPassword(s.defaultPassword)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to prepare default credentials: %w", err)
		}
		employeeID := input.ID
		account = &models.User{
			Email:      input.Email,
			Password:   hash,
			Name:       input.Name,
			Role:       models.RoleEmployee,
			EmployeeID: &employeeID,
		}
	}

	if err := s.repo.CreateEmployeeWithUser(ctx, employee, account); err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			log.WarnContext(ctx, "employee id or email already taken", "employee_id", input.ID)
			return models.Employee{}, err
		}
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	log.InfoContext(ctx, "employee created", "employee_id", input.ID, "with_login", account != nil)
	return employee, nil
}

// Update mutates the profile fields only. The linked login account,
// including its email, is not editable through this path.
func (s *Service) Update(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Staff.Update"
	log := s.initLogger(opn)

	if employee.ID <= 0 {
		return models.Employee{}, fmt.Errorf("%w: employee id must be positive", models.ErrValidation)
	}
	if employee.Salary <= 0 {
		return models.Employee{}, fmt.Errorf("%w: salary must be positive", models.ErrValidation)
	}

	if err := s.repo.UpdateEmployee(ctx, employee); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Employee{}, err
		}
		return models.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	log.InfoContext(ctx, "employee updated", "employee_id", employee.ID)
	return employee, nil
}

// Delete removes the employee and everything that depends on it in one
// transaction: login account, attendance, leave requests, payroll
// slips, assigned tasks. Subordinates are kept and lose their manager
// reference. Deleting an already-deleted employee returns ErrNotFound
// and has no side effects.
func (s *Service) Delete(ctx context.Context, identifier models.ID) error {
	const opn = "Staff.Delete"
	log := s.initLogger(opn)

	if err := s.repo.DeleteEmployeeCascade(ctx, identifier); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	log.InfoContext(ctx, "employee deleted with dependents", "employee_id", identifier)
	return nil
}

// Get returns one employee profile.
func (s *Service) Get(ctx context.Context, identifier models.ID) (models.Employee, error) {
	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Employee{}, err
		}
		return models.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// List returns all employee profiles.
func (s *Service) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

const minNameLength = 2

func validateInput(input CreateInput) error {
	if input.ID <= 0 {
		return fmt.Errorf("%w: employee id must be positive", models.ErrValidation)
	}
	if len(input.Name) < minNameLength {
		return fmt.Errorf("%w: name is too short", models.ErrValidation)
	}
	if input.Position == "" || input.Department == "" {
		return fmt.Errorf("%w: position and department are required", models.ErrValidation)
	}
	if input.Salary <= 0 {
		return fmt.Errorf("%w: salary must be positive", models.ErrValidation)
	}
	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			return fmt.Errorf("%w: invalid email address", models.ErrValidation)
		}
	}
	return nil
}
