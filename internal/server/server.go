package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hera/internal/auth"
	"github.com/UnknownOlympus/hera/internal/metrics"
	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/UnknownOlympus/hera/internal/services/accounts"
	"github.com/UnknownOlympus/hera/internal/services/records"
	"github.com/UnknownOlympus/hera/internal/services/staff"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the services onto the HTTP surface. Every /api route
// except login sits behind the authorization gate.
type Server struct {
	log      *slog.Logger
	engine   *gin.Engine
	accounts *accounts.Service
	staff    *staff.Service
	records  *records.Service
}

type Options struct {
	Log        *slog.Logger
	Env        string
	CORSOrigin string
	Tokener    *auth.Tokener
	Metrics    *metrics.Metrics
	Registry   *prometheus.Registry
	Health     *HealthChecker
	Accounts   *accounts.Service
	Staff      *staff.Service
	Records    *records.Service
}

// New builds the router with all routes and middleware attached.
func New(opts Options) *Server {
	if opts.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(Observe(opts.Metrics))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{opts.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	srv := &Server{
		log:      opts.Log,
		engine:   engine,
		accounts: opts.Accounts,
		staff:    opts.Staff,
		records:  opts.Records,
	}

	engine.GET("/healthz", gin.WrapH(opts.Health))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	api.POST("/auth/login", srv.handleLogin)

	authed := api.Group("")
	authed.Use(Authenticate(opts.Tokener))
	{
		authed.GET("/auth/me", srv.handleMe)
		authed.POST("/auth/change-password", srv.handleChangePassword)

		authed.GET("/employees", srv.handleListEmployees)
		admin := authed.Group("/employees")
		admin.Use(RequireRole(models.RoleAdmin))
		{
			admin.POST("", srv.handleCreateEmployee)
			admin.PUT("/:id", srv.handleUpdateEmployee)
			admin.DELETE("/:id", srv.handleDeleteEmployee)
		}

		authed.GET("/attendance/:employeeId", srv.handleListAttendance)
		authed.POST("/attendance", srv.handleMarkAttendance)

		authed.GET("/leaves", srv.handleListLeaves)
		authed.POST("/leaves", srv.handleRequestLeave)
		approvers := authed.Group("/leaves")
		approvers.Use(RequireRole(models.RoleAdmin, models.RoleManager))
		{
			approvers.PATCH("/:id/approve", srv.handleDecideLeave(true))
			approvers.PATCH("/:id/reject", srv.handleDecideLeave(false))
		}

		authed.GET("/payroll", srv.handleListPayroll)
		payroll := authed.Group("/payroll")
		payroll.Use(RequireRole(models.RoleAdmin))
		{
			payroll.POST("", srv.handleCreatePayroll)
		}

		authed.GET("/tasks", srv.handleListTasks)
		assigners := authed.Group("/tasks")
		assigners.Use(RequireRole(models.RoleAdmin, models.RoleManager))
		{
			assigners.POST("", srv.handleCreateTask)
		}
		authed.PATCH("/tasks/:id/status", srv.handleUpdateTaskStatus)
	}

	return srv
}

// Handler exposes the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.InfoContext(ctx, "HTTP server started", "address", address)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	s.log.InfoContext(ctx, "HTTP server stopped gracefully")
	return nil
}
