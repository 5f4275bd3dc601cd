package commands

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/domain/repository"
)

// DeleteEmployee removes an employee by id. The result is the affected
// count; 0 means nothing matched and is not an error.
type DeleteEmployee struct {
	ID string
}

type DeleteEmployeeHandler struct {
	uow    repository.UnitOfWorkFactory
	logger *logrus.Logger
}

func NewDeleteEmployeeHandler(uow repository.UnitOfWorkFactory, logger *logrus.Logger) *DeleteEmployeeHandler {
	return &DeleteEmployeeHandler{uow: uow, logger: logger}
}

func (h *DeleteEmployeeHandler) Handle(ctx context.Context, cmd DeleteEmployee) (int64, error) {
	uow := h.uow.New()

	count, err := uow.Employees().Delete(ctx, cmd.ID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	return uow.SaveChanges(ctx)
}
