package records_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/UnknownOlympus/hera/internal/services/records"
	mocks "github.com/UnknownOlympus/hera/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*records.Service, *mocks.RecordsRepoIface) {
	t.Helper()

	repo := mocks.NewRecordsRepoIface(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return records.NewService(logger, repo), repo
}

func employeeIdentity(employeeID models.ID) models.Identity {
	return models.Identity{UserID: 1, Role: models.RoleEmployee, EmployeeID: &employeeID}
}

func adminIdentity() models.Identity {
	return models.Identity{UserID: 2, Role: models.RoleAdmin}
}

func managerIdentity(employeeID models.ID) models.Identity {
	return models.Identity{UserID: 3, Role: models.RoleManager, EmployeeID: &employeeID}
}

func TestMarkAttendance_OwnRecord(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	record := models.AttendanceRecord{
		EmployeeID: 42,
		Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:     models.AttendancePresent,
	}
	repo.On("CreateAttendance", mock.Anything, record).Return(record, nil)

	_, err := svc.MarkAttendance(context.Background(), employeeIdentity(42), record)
	require.NoError(t, err)
}

func TestMarkAttendance_OtherEmployeeForbidden(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	record := models.AttendanceRecord{EmployeeID: 43, Status: models.AttendancePresent}

	_, err := svc.MarkAttendance(context.Background(), employeeIdentity(42), record)

	require.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "CreateAttendance")
}

func TestMarkAttendance_ManagerMarksAnyone(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	record := models.AttendanceRecord{EmployeeID: 43, Status: models.AttendanceAbsent}
	repo.On("CreateAttendance", mock.Anything, record).Return(record, nil)

	_, err := svc.MarkAttendance(context.Background(), managerIdentity(7), record)
	require.NoError(t, err)
}

func TestListAttendance_OwnOnly(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)

	_, err := svc.ListAttendance(context.Background(), employeeIdentity(42), 43)
	require.ErrorIs(t, err, models.ErrForbidden)

	repo.On("ListAttendanceByEmployee", mock.Anything, models.ID(42)).
		Return([]models.AttendanceRecord{}, nil)
	_, err = svc.ListAttendance(context.Background(), employeeIdentity(42), 42)
	require.NoError(t, err)
}

func TestListLeaves_EmployeePinnedToOwnID(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	own := models.ID(42)

	// Asking for no filter still narrows to the caller's employee.
	repo.On("ListLeaveRequests", mock.Anything, &own).
		Return([]models.LeaveRequest{}, nil)

	_, err := svc.ListLeaves(context.Background(), employeeIdentity(42), nil)
	require.NoError(t, err)
}

func TestListLeaves_EmployeeCannotWiden(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	other := models.ID(43)

	_, err := svc.ListLeaves(context.Background(), employeeIdentity(42), &other)

	require.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "ListLeaveRequests")
}

func TestListLeaves_AdminReadsAll(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	repo.On("ListLeaveRequests", mock.Anything, (*models.ID)(nil)).
		Return([]models.LeaveRequest{}, nil)

	_, err := svc.ListLeaves(context.Background(), adminIdentity(), nil)
	require.NoError(t, err)
}

func TestListLeaves_UnlinkedAccountForbidden(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	identity := models.Identity{UserID: 9, Role: models.RoleEmployee}

	_, err := svc.ListLeaves(context.Background(), identity, nil)

	require.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "ListLeaveRequests")
}

func TestDecideLeave_EmployeeForbidden(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)

	_, err := svc.DecideLeave(context.Background(), employeeIdentity(42), 3, true)

	require.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "DecideLeaveRequest")
}

func TestDecideLeave_ApproveAndReject(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	repo.On("DecideLeaveRequest", mock.Anything, int64(3), models.LeaveApproved).
		Return(models.LeaveRequest{ID: 3, Status: models.LeaveApproved}, nil)
	repo.On("DecideLeaveRequest", mock.Anything, int64(4), models.LeaveRejected).
		Return(models.LeaveRequest{ID: 4, Status: models.LeaveRejected}, nil)

	approved, err := svc.DecideLeave(context.Background(), managerIdentity(7), 3, true)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveApproved, approved.Status)

	rejected, err := svc.DecideLeave(context.Background(), adminIdentity(), 4, false)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveRejected, rejected.Status)
}

func TestDecideLeave_ConflictPassesThrough(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	repo.On("DecideLeaveRequest", mock.Anything, int64(3), models.LeaveApproved).
		Return(models.LeaveRequest{}, models.ErrConflict)

	_, err := svc.DecideLeave(context.Background(), adminIdentity(), 3, true)
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestCreatePayroll_AdminOnly(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	slip := models.PayrollSlip{EmployeeID: 42, Salary: 1000, NetPay: 950}

	_, err := svc.CreatePayroll(context.Background(), managerIdentity(7), slip)
	require.ErrorIs(t, err, models.ErrForbidden)

	_, err = svc.CreatePayroll(context.Background(), employeeIdentity(42), slip)
	require.ErrorIs(t, err, models.ErrForbidden)

	repo.On("CreatePayrollSlip", mock.Anything, slip).Return(slip, nil)
	_, err = svc.CreatePayroll(context.Background(), adminIdentity(), slip)
	require.NoError(t, err)
}

func TestCreatePayroll_NetPayStoredAsGiven(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	slip := models.PayrollSlip{EmployeeID: 42, Salary: 1000, Deductions: 100, Bonuses: 50, NetPay: 1}
	repo.On("CreatePayrollSlip", mock.Anything, slip).Return(slip, nil)

	created, err := svc.CreatePayroll(context.Background(), adminIdentity(), slip)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, created.NetPay, 0.001)
}

func TestCreateTask_DefaultsToPending(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	repo.On("CreateTask", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			task, _ := args.Get(1).(models.Task)
			assert.Equal(t, models.TaskPending, task.Status)
		}).
		Return(models.Task{ID: 1, Status: models.TaskPending}, nil)

	_, err := svc.CreateTask(context.Background(), managerIdentity(7), models.Task{
		EmployeeID:  42,
		Description: "review quarterly report",
	})
	require.NoError(t, err)
}

func TestCreateTask_EmployeeForbidden(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)

	_, err := svc.CreateTask(context.Background(), employeeIdentity(42), models.Task{
		EmployeeID:  42,
		Description: "self-assigned",
	})

	require.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "CreateTask")
}

func TestUpdateTaskStatus_AssigneeAllowed(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	repo.On("GetTaskByID", mock.Anything, int64(5)).
		Return(models.Task{ID: 5, EmployeeID: 42, Status: models.TaskPending}, nil)
	repo.On("UpdateTaskStatus", mock.Anything, int64(5), models.TaskCompleted).
		Return(models.Task{ID: 5, EmployeeID: 42, Status: models.TaskCompleted}, nil)

	updated, err := svc.UpdateTaskStatus(context.Background(), employeeIdentity(42), 5, models.TaskCompleted)

	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, updated.Status)
}

func TestUpdateTaskStatus_NonAssigneeManagerForbidden(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	repo.On("GetTaskByID", mock.Anything, int64(5)).
		Return(models.Task{ID: 5, EmployeeID: 42}, nil)

	_, err := svc.UpdateTaskStatus(context.Background(), managerIdentity(7), 5, models.TaskCompleted)

	require.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "UpdateTaskStatus")
}

func TestUpdateTaskStatus_AdminAllowed(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	repo.On("GetTaskByID", mock.Anything, int64(5)).
		Return(models.Task{ID: 5, EmployeeID: 42}, nil)
	repo.On("UpdateTaskStatus", mock.Anything, int64(5), models.TaskInProgress).
		Return(models.Task{ID: 5, EmployeeID: 42, Status: models.TaskInProgress}, nil)

	_, err := svc.UpdateTaskStatus(context.Background(), adminIdentity(), 5, models.TaskInProgress)
	require.NoError(t, err)
}

func TestUpdateTaskStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	repo.On("GetTaskByID", mock.Anything, int64(99)).
		Return(models.Task{}, models.ErrNotFound)

	_, err := svc.UpdateTaskStatus(context.Background(), adminIdentity(), 99, models.TaskCompleted)
	require.ErrorIs(t, err, models.ErrNotFound)
}
