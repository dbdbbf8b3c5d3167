package server

import (
	"net/http"
	"time"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/gin-gonic/gin"
)

// parseDate accepts calendar dates and full timestamps; clients send
// both shapes.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// optionalEmployeeFilter reads the employeeId query parameter, when
// present, into a filter.
func optionalEmployeeFilter(c *gin.Context) (*models.ID, error) {
	raw := c.Query("employeeId")
	if raw == "" {
		return nil, nil
	}
	identifier, err := models.ParseID(raw)
	if err != nil {
		return nil, err
	}
	return &identifier, nil
}

type markAttendanceRequest struct {
	EmployeeID models.ID `binding:"required" json:"employeeId"`
	Date       string    `binding:"required" json:"date"`
	Status     string    `binding:"required" json:"status"`
}

func (s *Server) handleMarkAttendance(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed attendance payload"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed attendance date"})
		return
	}

	record, err := s.records.MarkAttendance(c.Request.Context(), identity, models.AttendanceRecord{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) handleListAttendance(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	employeeID, err := models.ParseID(c.Param("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed employee id"})
		return
	}

	list, err := s.records.ListAttendance(c.Request.Context(), identity, employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

type requestLeaveRequest struct {
	EmployeeID models.ID `binding:"required" json:"employeeId"`
	StartDate  string    `binding:"required" json:"startDate"`
	EndDate    string    `binding:"required" json:"endDate"`
	Reason     string    `binding:"required" json:"reason"`
}

func (s *Server) handleRequestLeave(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req requestLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed leave payload"})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed leave start date"})
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed leave end date"})
		return
	}

	leave, err := s.records.RequestLeave(c.Request.Context(), identity, models.LeaveRequest{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leave)
}

func (s *Server) handleListLeaves(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	filter, err := optionalEmployeeFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed employee filter"})
		return
	}

	list, err := s.records.ListLeaves(c.Request.Context(), identity, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (s *Server) handleDecideLeave(approve bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		identifier, err := models.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed leave id"})
			return
		}

		leave, err := s.records.DecideLeave(c.Request.Context(), identity, identifier.Int64(), approve)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, leave)
	}
}

type createPayrollRequest struct {
	EmployeeID models.ID `binding:"required" json:"employeeId"`
	Salary     float64   `binding:"required" json:"salary"`
	Deductions float64   `json:"deductions"`
	Bonuses    float64   `json:"bonuses"`
	NetPay     float64   `binding:"required" json:"netPay"`
	Date       string    `binding:"required" json:"date"`
}

func (s *Server) handleCreatePayroll(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payroll payload"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payroll date"})
		return
	}

	slip, err := s.records.CreatePayroll(c.Request.Context(), identity, models.PayrollSlip{
		EmployeeID: req.EmployeeID,
		Salary:     req.Salary,
		Deductions: req.Deductions,
		Bonuses:    req.Bonuses,
		NetPay:     req.NetPay,
		Date:       date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, slip)
}

func (s *Server) handleListPayroll(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	filter, err := optionalEmployeeFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed employee filter"})
		return
	}

	list, err := s.records.ListPayroll(c.Request.Context(), identity, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

type createTaskRequest struct {
	EmployeeID  models.ID `binding:"required" json:"employeeId"`
	AssignedBy  models.ID `binding:"required" json:"assignedBy"`
	Description string    `binding:"required" json:"description"`
	Deadline    string    `binding:"required" json:"deadline"`
	Status      string    `json:"status"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed task payload"})
		return
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed task deadline"})
		return
	}

	task, err := s.records.CreateTask(c.Request.Context(), identity, models.Task{
		EmployeeID:  req.EmployeeID,
		AssignedBy:  req.AssignedBy,
		Description: req.Description,
		Deadline:    deadline,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (s *Server) handleListTasks(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	filter, err := optionalEmployeeFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed employee filter"})
		return
	}

	list, err := s.records.ListTasks(c.Request.Context(), identity, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

type updateTaskStatusRequest struct {
	Status string `binding:"required" json:"status"`
}

func (s *Server) handleUpdateTaskStatus(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	identifier, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed task id"})
		return
	}

	var req updateTaskStatusRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed task payload"})
		return
	}

	task, err := s.records.UpdateTaskStatus(c.Request.Context(), identity, identifier.Int64(), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}
