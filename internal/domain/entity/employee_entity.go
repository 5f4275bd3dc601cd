package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is the aggregate root for the employee domain.
// Field rules (lengths, email syntax, department existence) are enforced by
// the validation service before persistence, not by the constructor.
type Employee struct {
	ID      string `bson:"_id" json:"id"`
	Name    string `bson:"name" json:"name" validate:"required,max=50"`
	Address string `bson:"address" json:"address" validate:"required,max=200"`
	Email   string `bson:"email" json:"email" validate:"required,email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`

	// Extended attributes added over later schema revisions; all optional.
	Age          int       `bson:"age,omitempty" json:"age,omitempty"`
	Salary       float64   `bson:"salary,omitempty" json:"salary,omitempty"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	JoiningDate  time.Time `bson:"joining_date,omitempty" json:"joining_date,omitempty"`
	DepartmentID string    `bson:"department_id,omitempty" json:"department_id,omitempty"`
	PhotoURL     string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ExtendedDetails groups the optional attributes accepted at creation time.
type ExtendedDetails struct {
	Age          int
	Salary       float64
	IsActive     bool
	JoiningDate  time.Time
	DepartmentID string
}

// NewEmployee creates an employee with a freshly generated identifier.
// The ID is assigned exactly once here and never reassigned.
func NewEmployee(name, address, email, phone string, ext ExtendedDetails) *Employee {
	now := time.Now().UTC()
	return &Employee{
		ID:           primitive.NewObjectID().Hex(),
		Name:         name,
		Address:      address,
		Email:        email,
		Phone:        phone,
		Age:          ext.Age,
		Salary:       ext.Salary,
		IsActive:     ext.IsActive,
		JoiningDate:  ext.JoiningDate,
		DepartmentID: ext.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UpdateDetails replaces name, address, email and phone together in memory.
// It does not persist; callers stage the change through the unit of work.
func (e *Employee) UpdateDetails(name, address, email, phone string) {
	e.Name = name
	e.Address = address
	e.Email = email
	e.Phone = phone
	e.UpdatedAt = time.Now().UTC()
}

// Equal reports aggregate identity; employees are equal by ID only.
func (e *Employee) Equal(other *Employee) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ID == other.ID
}

// EmployeeSummary is a lighter read shape for list display.
type EmployeeSummary struct {
	EmployeeID   string `bson:"_id" json:"employee_id"`
	FullName     string `bson:"name" json:"full_name"`
	ContactEmail string `bson:"email" json:"contact_email"`
}
