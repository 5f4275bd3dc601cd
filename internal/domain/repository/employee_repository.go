package repository

import (
	"context"

	"github.com/oksasatya/employee-management-api/internal/domain/entity"
)

// EmployeeRepository defines the persistence operations for the employee
// aggregate. Writes (Add, Update, Delete) are staged and become visible only
// after the owning unit of work commits. Reads always serve committed state.
//
// GetByID and GetByEmail return (nil, nil) when no record matches; "not
// found" is a result, not an error, at this layer.
type EmployeeRepository interface {
	Add(ctx context.Context, emp *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// GetByEmail returns apperrors.ErrAmbiguous when more than one record
	// carries the email; the store does not enforce uniqueness.
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	GetByDepartmentID(ctx context.Context, departmentID string) ([]*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	ListSummaries(ctx context.Context) ([]entity.EmployeeSummary, error)
	Update(ctx context.Context, emp *entity.Employee) error
	// Delete stages a removal and returns the number of records that will be
	// affected (0 when nothing matched). Callers check the count to tell
	// "not found" from "deleted".
	Delete(ctx context.Context, id string) (int64, error)
}

// UnitOfWork groups repository writes staged since it was obtained into one
// commit. Scoped to a single logical request; never reused across requests.
type UnitOfWork interface {
	Employees() EmployeeRepository
	// SaveChanges applies all staged writes and returns the affected count.
	// Not calling SaveChanges discards the staged writes.
	SaveChanges(ctx context.Context) (int64, error)
}

// UnitOfWorkFactory creates a fresh unit of work per request.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
