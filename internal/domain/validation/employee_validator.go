// Package validation runs the declarative field rules against a candidate
// employee before persistence and folds the out-of-process department
// existence check into the same failure shape.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	"github.com/oksasatya/employee-management-api/internal/domain/service"
)

// EmployeeValidator validates an employee aggregate. The department rule may
// suspend on a network call; the caller blocks until it resolves.
type EmployeeValidator struct {
	validate    *validator.Validate
	departments service.DepartmentChecker
	logger      *logrus.Logger
}

func NewEmployeeValidator(departments service.DepartmentChecker, logger *logrus.Logger) *EmployeeValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &EmployeeValidator{validate: v, departments: departments, logger: logger}
}

// Validate returns *apperrors.ValidationError when any rule fails. A
// department that does not exist becomes a validation failure on the
// department_id field; a department service outage propagates as
// *apperrors.DependencyError instead.
func (ev *EmployeeValidator) Validate(ctx context.Context, emp *entity.Employee) error {
	verr := apperrors.NewValidationError()

	if err := ev.validate.StructCtx(ctx, emp); err != nil {
		var ferrs validator.ValidationErrors
		if !errors.As(err, &ferrs) {
			return err
		}
		for _, fe := range ferrs {
			verr.Add(fe.Field(), fieldMessage(fe))
		}
	}

	if emp.DepartmentID != "" {
		if err := ev.departments.ValidateDepartmentExists(ctx, emp.DepartmentID); err != nil {
			if errors.Is(err, service.ErrDepartmentNotFound) {
				verr.Add("department_id", fmt.Sprintf("department %q does not exist", emp.DepartmentID))
			} else {
				ev.logger.WithError(err).WithField("department_id", emp.DepartmentID).Error("department check failed")
				return err
			}
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "max":
		return "cannot exceed " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
