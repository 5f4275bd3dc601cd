package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/application/queries"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	"github.com/oksasatya/employee-management-api/internal/infrastructure/memory"
)

func seed(t *testing.T, factory *memory.Factory, emps ...*entity.Employee) {
	t.Helper()
	uow := factory.New()
	for _, e := range emps {
		if err := uow.Employees().Add(context.Background(), e); err != nil {
			t.Fatalf("stage: %v", err)
		}
	}
	if _, err := uow.SaveChanges(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestGetEmployeeByID(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	emp := entity.NewEmployee("Ana", "1 Main St", "ana@example.com", "", entity.ExtendedDetails{})
	seed(t, factory, emp)

	h := queries.NewGetEmployeeByIDHandler(factory)

	res, err := h.Handle(ctx, queries.GetEmployeeByID{ID: emp.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != emp.ID || res.Name != "Ana" {
		t.Errorf("unexpected response: %+v", res)
	}

	_, err = h.Handle(ctx, queries.GetEmployeeByID{ID: "missing"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetEmployeeByEmail(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	emp := entity.NewEmployee("Ana", "1 Main St", "ana@example.com", "", entity.ExtendedDetails{})
	seed(t, factory, emp)

	h := queries.NewGetEmployeeByEmailHandler(factory)

	res, err := h.Handle(ctx, queries.GetEmployeeByEmail{Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != emp.ID {
		t.Errorf("unexpected response: %+v", res)
	}

	_, err = h.Handle(ctx, queries.GetEmployeeByEmail{Email: "nobody@example.com"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetEmployeeByEmailAmbiguous(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	seed(t, factory,
		entity.NewEmployee("One", "a", "dup@example.com", "", entity.ExtendedDetails{}),
		entity.NewEmployee("Two", "b", "dup@example.com", "", entity.ExtendedDetails{}),
	)

	h := queries.NewGetEmployeeByEmailHandler(factory)
	_, err := h.Handle(ctx, queries.GetEmployeeByEmail{Email: "dup@example.com"})
	if !errors.Is(err, apperrors.ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
}

func TestListEmployeesEmptyStore(t *testing.T) {
	factory := memory.NewFactory(memory.NewStore())

	h := queries.NewListEmployeesHandler(factory)
	list, err := h.Handle(context.Background(), queries.ListEmployees{})
	if err != nil {
		t.Fatalf("listing an empty store must not error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty collection, got %v", list)
	}
}

func TestListEmployeeSummaries(t *testing.T) {
	factory := memory.NewFactory(memory.NewStore())
	emp := entity.NewEmployee("Ana", "1 Main St", "ana@example.com", "", entity.ExtendedDetails{})
	seed(t, factory, emp)

	h := queries.NewListEmployeeSummariesHandler(factory)
	summaries, err := h.Handle(context.Background(), queries.ListEmployeeSummaries{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	s := summaries[0]
	if s.EmployeeID != emp.ID || s.FullName != "Ana" || s.ContactEmail != "ana@example.com" {
		t.Errorf("unexpected summary: %+v", s)
	}
}

func TestGetEmployeesByDepartment(t *testing.T) {
	factory := memory.NewFactory(memory.NewStore())
	inDept := entity.NewEmployee("In", "a", "in@example.com", "", entity.ExtendedDetails{DepartmentID: "d-1"})
	seed(t, factory,
		inDept,
		entity.NewEmployee("Out", "b", "out@example.com", "", entity.ExtendedDetails{DepartmentID: "d-2"}),
	)

	h := queries.NewGetEmployeesByDepartmentHandler(factory)
	list, err := h.Handle(context.Background(), queries.GetEmployeesByDepartment{DepartmentID: "d-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != inDept.ID {
		t.Errorf("unexpected result: %+v", list)
	}

	empty, err := h.Handle(context.Background(), queries.GetEmployeesByDepartment{DepartmentID: "d-9"})
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty result for unknown department, got (%v, %v)", empty, err)
	}
}
