package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/application/commands"
	"github.com/oksasatya/employee-management-api/internal/infrastructure/memory"
)

func seedEmployee(t *testing.T, factory *memory.Factory) string {
	t.Helper()
	h := commands.NewCreateEmployeeHandler(factory, newValidator(&stubDepartmentChecker{}), nil, testLogger())
	res, err := h.Handle(context.Background(), commands.CreateEmployee{
		Name:    "Before",
		Address: "1 Old Rd",
		Email:   "before@example.com",
		Phone:   "111",
		Age:     28,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return res.ID
}

func TestUpdateEmployeeReplacesDetails(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	id := seedEmployee(t, factory)

	h := commands.NewUpdateEmployeeHandler(factory, newValidator(&stubDepartmentChecker{}), testLogger())
	res, err := h.Handle(ctx, commands.UpdateEmployee{
		ID:      id,
		Name:    "After",
		Address: "2 New Rd",
		Email:   "after@example.com",
		Phone:   "222",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Name != "After" || res.Email != "after@example.com" {
		t.Errorf("response not updated: %+v", res)
	}

	got, _ := factory.New().Employees().GetByID(ctx, id)
	if got == nil {
		t.Fatal("employee vanished")
	}
	if got.Name != "After" || got.Address != "2 New Rd" || got.Email != "after@example.com" || got.Phone != "222" {
		t.Errorf("fetch after update mismatch: %+v", got)
	}
	if got.Age != 28 {
		t.Errorf("fields outside the update shape must retain prior values, got age %d", got.Age)
	}
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	factory := memory.NewFactory(memory.NewStore())
	h := commands.NewUpdateEmployeeHandler(factory, newValidator(&stubDepartmentChecker{}), testLogger())

	_, err := h.Handle(context.Background(), commands.UpdateEmployee{
		ID:      "does-not-exist",
		Name:    "X",
		Address: "Y",
		Email:   "x@example.com",
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateEmployeeValidationFailureLeavesRecordIntact(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	id := seedEmployee(t, factory)

	h := commands.NewUpdateEmployeeHandler(factory, newValidator(&stubDepartmentChecker{}), testLogger())
	_, err := h.Handle(ctx, commands.UpdateEmployee{
		ID:      id,
		Name:    "", // violates the name rule
		Address: "2 New Rd",
		Email:   "after@example.com",
	})

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	got, _ := factory.New().Employees().GetByID(ctx, id)
	if got.Name != "Before" || got.Email != "before@example.com" {
		t.Errorf("failed update must not change committed state: %+v", got)
	}
}

func TestSetEmployeePhoto(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	id := seedEmployee(t, factory)

	h := commands.NewSetEmployeePhotoHandler(factory, testLogger())
	res, err := h.Handle(ctx, commands.SetEmployeePhoto{ID: id, PhotoURL: "https://storage.googleapis.com/b/p.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PhotoURL == "" {
		t.Error("photo url not set on response")
	}

	got, _ := factory.New().Employees().GetByID(ctx, id)
	if got.PhotoURL != "https://storage.googleapis.com/b/p.png" {
		t.Errorf("photo url not persisted: %+v", got)
	}

	_, err = h.Handle(ctx, commands.SetEmployeePhoto{ID: "missing", PhotoURL: "u"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing employee, got %v", err)
	}
}
