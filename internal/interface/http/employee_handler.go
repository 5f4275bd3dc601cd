// Package handlers translates HTTP requests into typed commands and queries
// and maps core error kinds to transport status codes. Status mapping lives
// here and nowhere else.
package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/application/commands"
	"github.com/oksasatya/employee-management-api/internal/application/dispatch"
	"github.com/oksasatya/employee-management-api/internal/application/dto"
	"github.com/oksasatya/employee-management-api/internal/application/queries"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	"github.com/oksasatya/employee-management-api/pkg/helpers"
	"github.com/oksasatya/employee-management-api/pkg/response"
	"github.com/oksasatya/employee-management-api/pkg/validation"
)

type EmployeeHandler struct {
	Mediator  *dispatch.Mediator
	Logger    *logrus.Logger
	GCS       *storage.Client
	GCSBucket string
}

func NewEmployeeHandler(m *dispatch.Mediator, logger *logrus.Logger, gcs *storage.Client, gcsBucket string) *EmployeeHandler {
	return &EmployeeHandler{Mediator: m, Logger: logger, GCS: gcs, GCSBucket: gcsBucket}
}

type createEmployeeRequest struct {
	Name         string    `json:"name" binding:"required"`
	Address      string    `json:"address" binding:"required"`
	Email        string    `json:"email" binding:"required"`
	Phone        string    `json:"phone"`
	Age          int       `json:"age" binding:"omitempty,gte=0"`
	Salary       float64   `json:"salary" binding:"omitempty,gte=0"`
	IsActive     bool      `json:"is_active"`
	JoiningDate  time.Time `json:"joining_date"`
	DepartmentID string    `json:"department_id"`
}

type updateEmployeeRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
}

// writeError maps core error kinds onto HTTP statuses.
func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		resp := response.Error[any](c, http.StatusBadRequest, "validation failed", verr.Details)
		c.JSON(resp.Status, resp)
		return
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		resp := response.Error[any](c, http.StatusNotFound, "employee not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if errors.Is(err, apperrors.ErrAmbiguous) {
		resp := response.Error[any](c, http.StatusConflict, "more than one employee matches", nil)
		c.JSON(resp.Status, resp)
		return
	}
	var derr *apperrors.DependencyError
	if errors.As(err, &derr) {
		h.Logger.WithError(err).WithField("dependency", derr.Service).Error("dependency unavailable")
		resp := response.Error[any](c, http.StatusServiceUnavailable, "a required service is unavailable", nil)
		c.JSON(resp.Status, resp)
		return
	}
	h.Logger.WithError(err).Error("unhandled error")
	resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	c.JSON(resp.Status, resp)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	res, err := dispatch.Send[commands.CreateEmployee, dto.EmployeeResponse](c.Request.Context(), h.Mediator, commands.CreateEmployee{
		Name:         req.Name,
		Address:      req.Address,
		Email:        req.Email,
		Phone:        req.Phone,
		Age:          req.Age,
		Salary:       req.Salary,
		IsActive:     req.IsActive,
		JoiningDate:  req.JoiningDate,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, "employee created", nil)
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	res, err := dispatch.Send[queries.GetEmployeeByID, dto.EmployeeResponse](c.Request.Context(), h.Mediator, queries.GetEmployeeByID{ID: c.Param("id")})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "employee", nil)
}

// List also serves the single-match email lookup (?email=) and the summary
// projection (?summary=true); a route like /employees/email/:email would
// collide with the :id wildcard in gin's route tree.
func (h *EmployeeHandler) List(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		res, err := dispatch.Send[queries.GetEmployeeByEmail, dto.EmployeeResponse](c.Request.Context(), h.Mediator, queries.GetEmployeeByEmail{Email: email})
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, res, "employee", nil)
		return
	}

	if c.Query("summary") == "true" {
		summaries, err := dispatch.Send[queries.ListEmployeeSummaries, []entity.EmployeeSummary](c.Request.Context(), h.Mediator, queries.ListEmployeeSummaries{})
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, summaries, "employee summaries", map[string]any{"count": len(summaries)})
		return
	}

	list, err := dispatch.Send[queries.ListEmployees, []dto.EmployeeResponse](c.Request.Context(), h.Mediator, queries.ListEmployees{})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list, "employees", map[string]any{"count": len(list)})
}

func (h *EmployeeHandler) ListByDepartment(c *gin.Context) {
	list, err := dispatch.Send[queries.GetEmployeesByDepartment, []dto.EmployeeResponse](c.Request.Context(), h.Mediator, queries.GetEmployeesByDepartment{DepartmentID: c.Param("id")})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list, "employees", map[string]any{"count": len(list)})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var req updateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	res, err := dispatch.Send[commands.UpdateEmployee, dto.EmployeeResponse](c.Request.Context(), h.Mediator, commands.UpdateEmployee{
		ID:      c.Param("id"),
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "employee updated", nil)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	count, err := dispatch.Send[commands.DeleteEmployee, int64](c.Request.Context(), h.Mediator, commands.DeleteEmployee{ID: c.Param("id")})
	if err != nil {
		h.writeError(c, err)
		return
	}
	if count == 0 {
		h.writeError(c, apperrors.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, map[string]any{"deleted": count}, "employee deleted", nil)
}

// UploadPhoto stores the uploaded image in GCS and records its URL.
func (h *EmployeeHandler) UploadPhoto(c *gin.Context) {
	if h.GCS == nil || h.GCSBucket == "" {
		resp := response.Error[any](c, http.StatusServiceUnavailable, "photo storage not configured", nil)
		c.JSON(resp.Status, resp)
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "missing photo file", nil)
		c.JSON(resp.Status, resp)
		return
	}
	defer func() { _ = file.Close() }()

	id := c.Param("id")
	ext := filepath.Ext(header.Filename)
	objectPath := filepath.ToSlash(filepath.Join("photos", id, uuid.NewString()+ext))
	contentType := header.Header.Get("Content-Type")

	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.GCSBucket, objectPath, contentType, file)
	if err != nil {
		h.writeError(c, apperrors.NewDependencyError("gcs", err))
		return
	}

	res, err := dispatch.Send[commands.SetEmployeePhoto, dto.EmployeeResponse](c.Request.Context(), h.Mediator, commands.SetEmployeePhoto{ID: id, PhotoURL: url})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "photo uploaded", nil)
}
