// Package accounts owns credential verification and everything a
// caller can do with its own login account.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/hera/internal/auth"
	"github.com/UnknownOlympus/hera/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hera/internal/metrics"
	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/UnknownOlympus/hera/internal/repository"
)

type Service struct {
	log     *slog.Logger
	users   repository.UserRepoIface
	tokener *auth.Tokener
	metrics *metrics.Metrics
}

func NewService(
	log *slog.Logger,
	users repository.UserRepoIface,
	tokener *auth.Tokener,
	mts *metrics.Metrics,
) *Service {
	return &Service{log: log, users: users, tokener: tokener, metrics: mts}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "accounts"),
	)
}

// Login verifies the credentials and mints an identity token. Unknown
// email and wrong password are indistinguishable from the outside:
// both produce ErrInvalidCredentials and nothing else. There is no
// lockout; repeated failures are independent.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.User, error) {
	const opn = "Accounts.Login"
	log := s.initLogger(opn)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.ErrorContext(ctx, "credential lookup failed", sl.Err(err))
		}
		s.metrics.Logins.WithLabelValues("failure").Inc()
		return "", models.User{}, models.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(user.Password, password) {
		s.metrics.Logins.WithLabelValues("failure").Inc()
		return "", models.User{}, models.ErrInvalidCredentials
	}

	token, err := s.tokener.Issue(models.Identity{
		UserID:     user.ID,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
	})
	if err != nil {
		s.metrics.Logins.WithLabelValues("failure").Inc()
		return "", models.User{}, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.Logins.WithLabelValues("success").Inc()
	log.InfoContext(ctx, "user logged in", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}

// Me returns the account behind a verified identity.
func (s *Service) Me(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

const minPasswordLength = 6

// ChangePassword verifies the current password and overwrites the
// stored hash. The wrong current password reads as invalid
// credentials, same as a failed login.
func (s *Service) ChangePassword(ctx context.Context, userID int64, current, replacement string) error {
	const opn = "Accounts.ChangePassword"
	log := s.initLogger(opn)

	if len(replacement) < minPasswordLength {
		return fmt.Errorf("%w: new password is too short", models.ErrValidation)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.VerifyPassword(user.Password, current) {
		return models.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(replacement)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err = s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	log.InfoContext(ctx, "password changed", "user_id", userID)
	return nil
}
