// Package event defines the domain events emitted after successful mutations
// and the abstract sink they are published through.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/employee-management-api/internal/domain/entity"
)

const EmployeeCreatedType = "employee.created"

// Event is the minimal contract every domain event satisfies.
type Event interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
}

// Publisher is the abstract event sink. Delivery is best-effort and
// fire-and-forget: a failed publish must never roll back a committed write.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Handler reacts to an event delivered through an in-process sink.
type Handler interface {
	Handle(ctx context.Context, evt Event) error
}

// HandlerFunc adapts ordinary functions to the Handler interface.
type HandlerFunc func(ctx context.Context, evt Event) error

func (f HandlerFunc) Handle(ctx context.Context, evt Event) error { return f(ctx, evt) }

// EmployeeCreated is emitted once per successfully created employee.
type EmployeeCreated struct {
	ID         string    `json:"event_id"`
	At         time.Time `json:"occurred_at"`
	EmployeeID string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department_id,omitempty"`
}

func NewEmployeeCreated(emp *entity.Employee) EmployeeCreated {
	return EmployeeCreated{
		ID:         uuid.NewString(),
		At:         time.Now().UTC(),
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Address:    emp.Address,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Department: emp.DepartmentID,
	}
}

func (e EmployeeCreated) EventID() string       { return e.ID }
func (e EmployeeCreated) EventType() string     { return EmployeeCreatedType }
func (e EmployeeCreated) OccurredAt() time.Time { return e.At }
