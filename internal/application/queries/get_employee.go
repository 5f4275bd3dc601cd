// Package queries contains the read use cases. Queries never stage writes;
// they read committed state through a fresh unit of work per request.
package queries

import (
	"context"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/application/dto"
	"github.com/oksasatya/employee-management-api/internal/domain/repository"
)

// GetEmployeeByID fetches one employee by its identifier.
type GetEmployeeByID struct {
	ID string
}

type GetEmployeeByIDHandler struct {
	uow repository.UnitOfWorkFactory
}

func NewGetEmployeeByIDHandler(uow repository.UnitOfWorkFactory) *GetEmployeeByIDHandler {
	return &GetEmployeeByIDHandler{uow: uow}
}

func (h *GetEmployeeByIDHandler) Handle(ctx context.Context, q GetEmployeeByID) (dto.EmployeeResponse, error) {
	emp, err := h.uow.New().Employees().GetByID(ctx, q.ID)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}
	if emp == nil {
		return dto.EmployeeResponse{}, apperrors.ErrNotFound
	}
	return dto.FromEmployee(emp), nil
}

// GetEmployeeByEmail fetches one employee by email. Because the store does
// not enforce email uniqueness, duplicate matches surface as ErrAmbiguous.
type GetEmployeeByEmail struct {
	Email string
}

type GetEmployeeByEmailHandler struct {
	uow repository.UnitOfWorkFactory
}

func NewGetEmployeeByEmailHandler(uow repository.UnitOfWorkFactory) *GetEmployeeByEmailHandler {
	return &GetEmployeeByEmailHandler{uow: uow}
}

func (h *GetEmployeeByEmailHandler) Handle(ctx context.Context, q GetEmployeeByEmail) (dto.EmployeeResponse, error) {
	emp, err := h.uow.New().Employees().GetByEmail(ctx, q.Email)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}
	if emp == nil {
		return dto.EmployeeResponse{}, apperrors.ErrNotFound
	}
	return dto.FromEmployee(emp), nil
}
