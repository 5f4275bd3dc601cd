// Package commands contains the write use cases. Each handler runs the same
// linear pipeline: validate, stage through the unit of work, commit, then
// publish best-effort notifications.
package commands

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/application/dto"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	"github.com/oksasatya/employee-management-api/internal/domain/event"
	"github.com/oksasatya/employee-management-api/internal/domain/repository"
	"github.com/oksasatya/employee-management-api/internal/domain/validation"
)

// CreateEmployee is the request to create a new employee.
type CreateEmployee struct {
	Name         string
	Address      string
	Email        string
	Phone        string
	Age          int
	Salary       float64
	IsActive     bool
	JoiningDate  time.Time
	DepartmentID string
}

type CreateEmployeeHandler struct {
	uow       repository.UnitOfWorkFactory
	validator *validation.EmployeeValidator
	publisher event.Publisher
	logger    *logrus.Logger
}

func NewCreateEmployeeHandler(uow repository.UnitOfWorkFactory, validator *validation.EmployeeValidator, publisher event.Publisher, logger *logrus.Logger) *CreateEmployeeHandler {
	return &CreateEmployeeHandler{uow: uow, validator: validator, publisher: publisher, logger: logger}
}

func (h *CreateEmployeeHandler) Handle(ctx context.Context, cmd CreateEmployee) (dto.EmployeeResponse, error) {
	emp := entity.NewEmployee(cmd.Name, cmd.Address, cmd.Email, cmd.Phone, entity.ExtendedDetails{
		Age:          cmd.Age,
		Salary:       cmd.Salary,
		IsActive:     cmd.IsActive,
		JoiningDate:  cmd.JoiningDate,
		DepartmentID: cmd.DepartmentID,
	})

	if err := h.validator.Validate(ctx, emp); err != nil {
		return dto.EmployeeResponse{}, err
	}

	uow := h.uow.New()
	if err := uow.Employees().Add(ctx, emp); err != nil {
		return dto.EmployeeResponse{}, err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return dto.EmployeeResponse{}, err
	}

	// The write is durable at this point; a failed publish is logged and
	// swallowed rather than surfaced.
	if h.publisher != nil {
		if err := h.publisher.Publish(ctx, event.NewEmployeeCreated(emp)); err != nil {
			h.logger.WithError(err).WithField("employee_id", emp.ID).Warn("employee created event publish failed")
		}
	}

	return dto.FromEmployee(emp), nil
}
