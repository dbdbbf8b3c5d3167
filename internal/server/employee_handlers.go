package server

import (
	"net/http"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/UnknownOlympus/hera/internal/services/staff"
	"github.com/gin-gonic/gin"
)

// id and salary are validated in the staff service, not by the binder.
type createEmployeeRequest struct {
	ID         models.ID  `json:"id"`
	Name       string     `binding:"required" json:"name"`
	Email      string     `                   json:"email"`
	Position   string     `binding:"required" json:"position"`
	Department string     `binding:"required" json:"department"`
	Salary     float64    `json:"salary"`
	ManagerID  *models.ID `json:"managerId"`
}

func (s *Server) handleListEmployees(c *gin.Context) {
	employees, err := s.staff.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (s *Server) handleCreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed employee payload"})
		return
	}

	employee, err := s.staff.Create(c.Request.Context(), staff.CreateInput{
		ID:         req.ID,
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		ManagerID:  req.ManagerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

type updateEmployeeRequest struct {
	Name       string     `binding:"required" json:"name"`
	Position   string     `binding:"required" json:"position"`
	Department string     `binding:"required" json:"department"`
	Salary     float64    `json:"salary"`
	ManagerID  *models.ID `json:"managerId"`
}

func (s *Server) handleUpdateEmployee(c *gin.Context) {
	identifier, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed employee id"})
		return
	}

	var req updateEmployeeRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed employee payload"})
		return
	}

	employee, err := s.staff.Update(c.Request.Context(), models.Employee{
		ID:         identifier,
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		ManagerID:  req.ManagerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (s *Server) handleDeleteEmployee(c *gin.Context) {
	identifier, err := models.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed employee id"})
		return
	}

	if err = s.staff.Delete(c.Request.Context(), identifier); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
