package commands

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/application/dto"
	"github.com/oksasatya/employee-management-api/internal/domain/repository"
	"github.com/oksasatya/employee-management-api/internal/domain/validation"
)

// UpdateEmployee replaces name, address, email and phone of an existing
// employee together; there is no field-level partial update.
type UpdateEmployee struct {
	ID      string
	Name    string
	Address string
	Email   string
	Phone   string
}

type UpdateEmployeeHandler struct {
	uow       repository.UnitOfWorkFactory
	validator *validation.EmployeeValidator
	logger    *logrus.Logger
}

func NewUpdateEmployeeHandler(uow repository.UnitOfWorkFactory, validator *validation.EmployeeValidator, logger *logrus.Logger) *UpdateEmployeeHandler {
	return &UpdateEmployeeHandler{uow: uow, validator: validator, logger: logger}
}

func (h *UpdateEmployeeHandler) Handle(ctx context.Context, cmd UpdateEmployee) (dto.EmployeeResponse, error) {
	uow := h.uow.New()

	emp, err := uow.Employees().GetByID(ctx, cmd.ID)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}
	if emp == nil {
		return dto.EmployeeResponse{}, apperrors.ErrNotFound
	}

	emp.UpdateDetails(cmd.Name, cmd.Address, cmd.Email, cmd.Phone)

	if err := h.validator.Validate(ctx, emp); err != nil {
		return dto.EmployeeResponse{}, err
	}

	if err := uow.Employees().Update(ctx, emp); err != nil {
		return dto.EmployeeResponse{}, err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return dto.EmployeeResponse{}, err
	}

	return dto.FromEmployee(emp), nil
}

// SetEmployeePhoto records the stored photo URL after an upload.
type SetEmployeePhoto struct {
	ID       string
	PhotoURL string
}

type SetEmployeePhotoHandler struct {
	uow    repository.UnitOfWorkFactory
	logger *logrus.Logger
}

func NewSetEmployeePhotoHandler(uow repository.UnitOfWorkFactory, logger *logrus.Logger) *SetEmployeePhotoHandler {
	return &SetEmployeePhotoHandler{uow: uow, logger: logger}
}

func (h *SetEmployeePhotoHandler) Handle(ctx context.Context, cmd SetEmployeePhoto) (dto.EmployeeResponse, error) {
	uow := h.uow.New()

	emp, err := uow.Employees().GetByID(ctx, cmd.ID)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}
	if emp == nil {
		return dto.EmployeeResponse{}, apperrors.ErrNotFound
	}

	emp.PhotoURL = cmd.PhotoURL

	if err := uow.Employees().Update(ctx, emp); err != nil {
		return dto.EmployeeResponse{}, err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return dto.EmployeeResponse{}, err
	}

	return dto.FromEmployee(emp), nil
}
