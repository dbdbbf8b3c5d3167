package server_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/UnknownOlympus/hera/internal/auth"
	"github.com/UnknownOlympus/hera/internal/metrics"
	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/UnknownOlympus/hera/internal/server"
	"github.com/UnknownOlympus/hera/internal/services/accounts"
	"github.com/UnknownOlympus/hera/internal/services/records"
	"github.com/UnknownOlympus/hera/internal/services/staff"
	mocks "github.com/UnknownOlympus/hera/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type testEnv struct {
	handler   http.Handler
	tokener   *auth.Tokener
	employees *mocks.EmployeeRepoIface
	users     *mocks.UserRepoIface
	records   *mocks.RecordsRepoIface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()
	mts := metrics.NewMetrics(registry)
	tokener := auth.NewTokener("test-secret", time.Hour)

	employeeRepo := mocks.NewEmployeeRepoIface(t)
	userRepo := mocks.NewUserRepoIface(t)
	recordsRepo := mocks.NewRecordsRepoIface(t)

	srv := server.New(server.Options{
		Log:        logger,
		Env:        "test",
		CORSOrigin: "http://localhost:3000",
		Tokener:    tokener,
		Metrics:    mts,
		Registry:   registry,
		Health:     server.NewHealthChecker(stubPinger{}, logger),
		Accounts:   accounts.NewService(logger, userRepo, tokener, mts),
		Staff:      staff.NewService(logger, employeeRepo, "welcome123"),
		Records:    records.NewService(logger, recordsRepo),
	})

	return &testEnv{
		handler:   srv.Handler(),
		tokener:   tokener,
		employees: employeeRepo,
		users:     userRepo,
		records:   recordsRepo,
	}
}

func (e *testEnv) request(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.handler.ServeHTTP(recorder, req)
	return recorder
}

func (e *testEnv) tokenFor(t *testing.T, role models.Role, employeeID *models.ID) string {
	t.Helper()

	token, err := e.tokener.Issue(models.Identity{UserID: 1, Role: role, EmployeeID: employeeID})
	require.NoError(t, err)
	return token
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	recorder := env.request(t, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"database":"ok"}`, recorder.Body.String())
}

func TestProtectedRoutes_RejectMissingToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	for _, target := range []string{
		"/api/auth/me",
		"/api/employees",
		"/api/leaves",
		"/api/payroll",
		"/api/tasks",
	} {
		recorder := env.request(t, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, target)
	}
}

func TestProtectedRoutes_RejectBadToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	recorder := env.request(t, http.MethodGet, "/api/employees", "not-a-real-token", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// A token signed with a different secret is just as dead.
	foreign, err := auth.NewTokener("other-secret", time.Hour).
		Issue(models.Identity{UserID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)
	recorder = env.request(t, http.MethodGet, "/api/employees", foreign, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLogin_SuccessReturnsTokenAndUser(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	hash, err := auth.HashPassword("welcome123")
	require.NoError(t, err)
	employeeID := models.ID(42)
	env.users.On("GetUserByEmail", mock.Anything, "test@test.com").Return(models.User{
		ID:         1,
		Email:      "test@test.com",
		Password:   hash,
		Name:       "Test User",
		Role:       models.RoleEmployee,
		EmployeeID: &employeeID,
	}, nil)

	recorder := env.request(t, http.MethodPost, "/api/auth/login", "",
		`{"email":"test@test.com","password":"welcome123"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Token)
	// The password hash never leaves the server.
	assert.NotContains(t, string(payload.User), "password")

	// The returned token opens the gate.
	env.users.On("GetUserByID", mock.Anything, int64(1)).Return(models.User{ID: 1}, nil)
	me := env.request(t, http.MethodGet, "/api/auth/me", payload.Token, "")
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestLogin_UniformFailureBody(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	hash, err := auth.HashPassword("welcome123")
	require.NoError(t, err)
	env.users.On("GetUserByEmail", mock.Anything, "ghost@test.com").
		Return(models.User{}, models.ErrNotFound)
	env.users.On("GetUserByEmail", mock.Anything, "test@test.com").
		Return(models.User{ID: 1, Password: hash, Role: models.RoleEmployee}, nil)

	unknown := env.request(t, http.MethodPost, "/api/auth/login", "",
		`{"email":"ghost@test.com","password":"welcome123"}`)
	wrong := env.request(t, http.MethodPost, "/api/auth/login", "",
		`{"email":"test@test.com","password":"oops"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}

func TestEmployeeRoutes_AdminGate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employeeID := models.ID(42)
	employeeToken := env.tokenFor(t, models.RoleEmployee, &employeeID)

	body := `{"id":7,"name":"New Person","position":"qa","department":"Engineering","salary":1000}`

	recorder := env.request(t, http.MethodPost, "/api/employees", employeeToken, body)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = env.request(t, http.MethodDelete, "/api/employees/7", employeeToken, "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// Reading the directory stays open to every authenticated caller.
	env.employees.On("ListEmployees", mock.Anything).Return([]models.Employee{}, nil)
	recorder = env.request(t, http.MethodGet, "/api/employees", employeeToken, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCreateEmployee_AdminSucceeds(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	adminToken := env.tokenFor(t, models.RoleAdmin, nil)
	env.employees.On("CreateEmployeeWithUser", mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	body := `{"id":7,"name":"New Person","email":"new@test.com","position":"qa","department":"Engineering","salary":1000}`
	recorder := env.request(t, http.MethodPost, "/api/employees", adminToken, body)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCreateEmployee_DuplicateMapsToBadRequest(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	adminToken := env.tokenFor(t, models.RoleAdmin, nil)
	env.employees.On("CreateEmployeeWithUser", mock.Anything, mock.Anything, mock.Anything).
		Return(models.ErrDuplicateKey)

	body := `{"id":7,"name":"New Person","position":"qa","department":"Engineering","salary":1000}`
	recorder := env.request(t, http.MethodPost, "/api/employees", adminToken, body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateEmployee_ValidationDetailSurfaces(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	adminToken := env.tokenFor(t, models.RoleAdmin, nil)

	// A zero salary must reach the staff validation, not die in binding.
	body := `{"id":7,"name":"New Person","position":"qa","department":"Engineering","salary":0}`
	recorder := env.request(t, http.MethodPost, "/api/employees", adminToken, body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "salary must be positive")

	// Same for an absent id.
	body = `{"name":"New Person","position":"qa","department":"Engineering","salary":1000}`
	recorder = env.request(t, http.MethodPost, "/api/employees", adminToken, body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "employee id must be positive")
}

func TestCreateEmployee_StringIDAccepted(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	adminToken := env.tokenFor(t, models.RoleAdmin, nil)
	env.employees.On("CreateEmployeeWithUser", mock.Anything, mock.MatchedBy(func(e models.Employee) bool {
		return e.ID == models.ID(7)
	}), mock.Anything).Return(nil)

	// Clients serialize big ids as strings; both forms must parse.
	body := `{"id":"7","name":"New Person","position":"qa","department":"Engineering","salary":1000}`
	recorder := env.request(t, http.MethodPost, "/api/employees", adminToken, body)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	adminToken := env.tokenFor(t, models.RoleAdmin, nil)
	env.employees.On("DeleteEmployeeCascade", mock.Anything, models.ID(99)).
		Return(models.ErrNotFound)

	recorder := env.request(t, http.MethodDelete, "/api/employees/99", adminToken, "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestLeaveDecision_RoleGate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employeeID := models.ID(42)
	employeeToken := env.tokenFor(t, models.RoleEmployee, &employeeID)

	recorder := env.request(t, http.MethodPatch, "/api/leaves/3/approve", employeeToken, "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	managerID := models.ID(7)
	managerToken := env.tokenFor(t, models.RoleManager, &managerID)
	env.records.On("DecideLeaveRequest", mock.Anything, int64(3), "approved").
		Return(models.LeaveRequest{ID: 3, Status: "approved"}, nil)

	recorder = env.request(t, http.MethodPatch, "/api/leaves/3/approve", managerToken, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestLeaveDecision_ConflictMapsTo409(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	adminToken := env.tokenFor(t, models.RoleAdmin, nil)
	env.records.On("DecideLeaveRequest", mock.Anything, int64(3), "rejected").
		Return(models.LeaveRequest{}, models.ErrConflict)

	recorder := env.request(t, http.MethodPatch, "/api/leaves/3/reject", adminToken, "")

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestListPayroll_EmployeeScopedToSelf(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employeeID := models.ID(42)
	employeeToken := env.tokenFor(t, models.RoleEmployee, &employeeID)
	env.records.On("ListPayrollSlips", mock.Anything, &employeeID).
		Return([]models.PayrollSlip{}, nil)

	recorder := env.request(t, http.MethodGet, "/api/payroll", employeeToken, "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Asking for someone else's slips is refused outright.
	recorder = env.request(t, http.MethodGet, "/api/payroll?employeeId=43", employeeToken, "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestUpdateTaskStatus_AssigneeViaHTTP(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employeeID := models.ID(42)
	employeeToken := env.tokenFor(t, models.RoleEmployee, &employeeID)
	env.records.On("GetTaskByID", mock.Anything, int64(5)).
		Return(models.Task{ID: 5, EmployeeID: 42, Status: "pending"}, nil)
	env.records.On("UpdateTaskStatus", mock.Anything, int64(5), "completed").
		Return(models.Task{ID: 5, EmployeeID: 42, Status: "completed"}, nil)

	recorder := env.request(t, http.MethodPatch, "/api/tasks/5/status", employeeToken,
		`{"status":"completed"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
