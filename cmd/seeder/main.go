// Seeder creates the bootstrap admin account: a standalone login with
// no linked employee. It is idempotent and safe to re-run.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/UnknownOlympus/hera/internal/auth"
	"github.com/UnknownOlympus/hera/internal/config"
	"github.com/UnknownOlympus/hera/internal/metrics"
	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/UnknownOlympus/hera/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.MustLoad()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@ems.com"
	}

	dbpool, dbErr := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	users := repository.NewUserRepository(dbpool, metrics.NewMetrics(prometheus.NewRegistry()))

	ctx := context.Background()
	if _, err := users.GetUserByEmail(ctx, adminEmail); err == nil {
		log.Println("Admin already exists.")
		return
	} else if !errors.Is(err, models.ErrNotFound) {
		log.Fatalf("Failed to check for existing admin: %v", err)
	}

	hash, err := auth.HashPassword(cfg.Auth.DefaultPassword)
	if err != nil {
		log.Fatalf("Failed to hash bootstrap password: %v", err)
	}

	if _, err = users.CreateUser(ctx, models.User{
		Email:    adminEmail,
		Password: hash,
		Name:     "Super Admin",
		Role:     models.RoleAdmin,
	}); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("✅ Admin created: %s (default password, rotate it after first login)", adminEmail)
}
