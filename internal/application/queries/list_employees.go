package queries

import (
	"context"

	"github.com/oksasatya/employee-management-api/internal/application/dto"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	"github.com/oksasatya/employee-management-api/internal/domain/repository"
)

// ListEmployees returns the full collection. An empty store yields an empty
// slice, never an error.
type ListEmployees struct{}

type ListEmployeesHandler struct {
	uow repository.UnitOfWorkFactory
}

func NewListEmployeesHandler(uow repository.UnitOfWorkFactory) *ListEmployeesHandler {
	return &ListEmployeesHandler{uow: uow}
}

func (h *ListEmployeesHandler) Handle(ctx context.Context, _ ListEmployees) ([]dto.EmployeeResponse, error) {
	list, err := h.uow.New().Employees().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromEmployees(list), nil
}

// ListEmployeeSummaries narrows the listing to a lighter read shape without
// materializing full aggregates.
type ListEmployeeSummaries struct{}

type ListEmployeeSummariesHandler struct {
	uow repository.UnitOfWorkFactory
}

func NewListEmployeeSummariesHandler(uow repository.UnitOfWorkFactory) *ListEmployeeSummariesHandler {
	return &ListEmployeeSummariesHandler{uow: uow}
}

func (h *ListEmployeeSummariesHandler) Handle(ctx context.Context, _ ListEmployeeSummaries) ([]entity.EmployeeSummary, error) {
	summaries, err := h.uow.New().Employees().ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []entity.EmployeeSummary{}
	}
	return summaries, nil
}

// GetEmployeesByDepartment returns every employee referencing a department.
type GetEmployeesByDepartment struct {
	DepartmentID string
}

type GetEmployeesByDepartmentHandler struct {
	uow repository.UnitOfWorkFactory
}

func NewGetEmployeesByDepartmentHandler(uow repository.UnitOfWorkFactory) *GetEmployeesByDepartmentHandler {
	return &GetEmployeesByDepartmentHandler{uow: uow}
}

func (h *GetEmployeesByDepartmentHandler) Handle(ctx context.Context, q GetEmployeesByDepartment) ([]dto.EmployeeResponse, error) {
	list, err := h.uow.New().Employees().GetByDepartmentID(ctx, q.DepartmentID)
	if err != nil {
		return nil, err
	}
	return dto.FromEmployees(list), nil
}
