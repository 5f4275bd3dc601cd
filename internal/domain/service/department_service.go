package service

import (
	"context"
	"errors"
)

// ErrDepartmentNotFound is returned by a DepartmentChecker when the
// referenced department does not exist. Transport or availability failures
// are reported as *apperrors.DependencyError instead, never as this error.
var ErrDepartmentNotFound = errors.New("department does not exist")

// DepartmentChecker is the out-of-process collaborator that confirms a
// department id exists. Checked on every create/update that references a
// department; results are never cached.
type DepartmentChecker interface {
	ValidateDepartmentExists(ctx context.Context, departmentID string) error
}
