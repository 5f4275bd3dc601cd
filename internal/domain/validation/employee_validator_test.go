package validation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	"github.com/oksasatya/employee-management-api/internal/domain/service"
)

type stubDepartmentChecker struct {
	fn    func(ctx context.Context, id string) error
	calls int
}

func (s *stubDepartmentChecker) ValidateDepartmentExists(ctx context.Context, id string) error {
	s.calls++
	if s.fn != nil {
		return s.fn(ctx, id)
	}
	return nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(&strings.Builder{})
	return l
}

func validEmployee() *entity.Employee {
	return entity.NewEmployee("Test Employee 1", "123 Praline Ave", "employee1@gmail.com", "404-111-1234", entity.ExtendedDetails{})
}

func TestValidateAcceptsValidEmployee(t *testing.T) {
	v := NewEmployeeValidator(&stubDepartmentChecker{}, testLogger())
	if err := v.Validate(context.Background(), validEmployee()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateFieldRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(e *entity.Employee)
		field   string
	}{
		{"empty name", func(e *entity.Employee) { e.Name = "" }, "name"},
		{"long name", func(e *entity.Employee) { e.Name = strings.Repeat("x", 51) }, "name"},
		{"empty address", func(e *entity.Employee) { e.Address = "" }, "address"},
		{"long address", func(e *entity.Employee) { e.Address = strings.Repeat("x", 201) }, "address"},
		{"empty email", func(e *entity.Employee) { e.Email = "" }, "email"},
		{"malformed email", func(e *entity.Employee) { e.Email = "not-an-email" }, "email"},
	}

	v := NewEmployeeValidator(&stubDepartmentChecker{}, testLogger())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			emp := validEmployee()
			tc.mutate(emp)

			err := v.Validate(context.Background(), emp)
			var verr *apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Details[tc.field]; !ok {
				t.Errorf("expected failure naming %q, got %v", tc.field, verr.Details)
			}
			if len(verr.Details) != 1 {
				t.Errorf("valid sibling fields must not fail: %v", verr.Details)
			}
		})
	}
}

func TestValidateSkipsDepartmentCheckWhenUnset(t *testing.T) {
	checker := &stubDepartmentChecker{}
	v := NewEmployeeValidator(checker, testLogger())
	if err := v.Validate(context.Background(), validEmployee()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checker.calls != 0 {
		t.Errorf("department checker called %d times for employee without department", checker.calls)
	}
}

func TestValidateMissingDepartmentBecomesFieldError(t *testing.T) {
	checker := &stubDepartmentChecker{fn: func(ctx context.Context, id string) error {
		return service.ErrDepartmentNotFound
	}}
	v := NewEmployeeValidator(checker, testLogger())

	emp := validEmployee()
	emp.DepartmentID = "missing-dept"

	err := v.Validate(context.Background(), emp)
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if msg := verr.Details["department_id"]; msg == "" {
		t.Errorf("expected department_id failure, got %v", verr.Details)
	}
}

func TestValidateDepartmentOutagePropagatesAsDependencyError(t *testing.T) {
	depErr := apperrors.NewDependencyError("departments", errors.New("connection refused"))
	checker := &stubDepartmentChecker{fn: func(ctx context.Context, id string) error {
		return depErr
	}}
	v := NewEmployeeValidator(checker, testLogger())

	emp := validEmployee()
	emp.DepartmentID = "d-1"

	err := v.Validate(context.Background(), emp)
	var derr *apperrors.DependencyError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		t.Error("outage must never be converted into a validation failure")
	}
}
