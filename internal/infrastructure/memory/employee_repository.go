// Package memory provides an in-memory employee store with the same staging
// and commit semantics as the MongoDB implementation. Used by tests and
// local tooling; not meant for production traffic.
package memory

import (
	"context"
	"sync"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	"github.com/oksasatya/employee-management-api/internal/domain/repository"
)

// Store holds committed state shared by every unit of work created from the
// same factory. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	employees map[string]entity.Employee
}

func NewStore() *Store {
	return &Store{employees: map[string]entity.Employee{}}
}

// Factory creates a fresh unit of work per request over the shared store.
type Factory struct {
	store *Store
}

func NewFactory(store *Store) *Factory { return &Factory{store: store} }

func (f *Factory) New() repository.UnitOfWork {
	return &unitOfWork{store: f.store}
}

type stagedOp func(employees map[string]entity.Employee) int64

// unitOfWork stages writes locally; nothing touches the store until
// SaveChanges runs. Reads serve committed state only.
type unitOfWork struct {
	store  *Store
	staged []stagedOp
}

func (u *unitOfWork) Employees() repository.EmployeeRepository { return u }

func (u *unitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	var affected int64
	for _, op := range u.staged {
		affected += op(u.store.employees)
	}
	u.staged = nil
	return affected, nil
}

func (u *unitOfWork) Add(ctx context.Context, emp *entity.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := *emp
	u.staged = append(u.staged, func(employees map[string]entity.Employee) int64 {
		employees[snapshot.ID] = snapshot
		return 1
	})
	return nil
}

func (u *unitOfWork) Update(ctx context.Context, emp *entity.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := *emp
	u.staged = append(u.staged, func(employees map[string]entity.Employee) int64 {
		if _, ok := employees[snapshot.ID]; !ok {
			return 0
		}
		employees[snapshot.ID] = snapshot
		return 1
	})
	return nil
}

func (u *unitOfWork) Delete(ctx context.Context, id string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	u.store.mu.RLock()
	_, exists := u.store.employees[id]
	u.store.mu.RUnlock()
	if !exists {
		return 0, nil
	}
	u.staged = append(u.staged, func(employees map[string]entity.Employee) int64 {
		if _, ok := employees[id]; !ok {
			return 0
		}
		delete(employees, id)
		return 1
	})
	return 1, nil
}

func (u *unitOfWork) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	emp, ok := u.store.employees[id]
	if !ok {
		return nil, nil
	}
	cp := emp
	return &cp, nil
}

func (u *unitOfWork) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	var found *entity.Employee
	for _, emp := range u.store.employees {
		if emp.Email != email {
			continue
		}
		if found != nil {
			return nil, apperrors.ErrAmbiguous
		}
		cp := emp
		found = &cp
	}
	return found, nil
}

func (u *unitOfWork) GetByDepartmentID(ctx context.Context, departmentID string) ([]*entity.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	out := []*entity.Employee{}
	for _, emp := range u.store.employees {
		if emp.DepartmentID == departmentID {
			cp := emp
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (u *unitOfWork) List(ctx context.Context) ([]*entity.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	out := []*entity.Employee{}
	for _, emp := range u.store.employees {
		cp := emp
		out = append(out, &cp)
	}
	return out, nil
}

func (u *unitOfWork) ListSummaries(ctx context.Context) ([]entity.EmployeeSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	out := []entity.EmployeeSummary{}
	for _, emp := range u.store.employees {
		out = append(out, entity.EmployeeSummary{
			EmployeeID:   emp.ID,
			FullName:     emp.Name,
			ContactEmail: emp.Email,
		})
	}
	return out, nil
}

var (
	_ repository.UnitOfWork         = (*unitOfWork)(nil)
	_ repository.EmployeeRepository = (*unitOfWork)(nil)
)
