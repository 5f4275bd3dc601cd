// Package dto holds the response shapes use cases return to the API layer.
package dto

import (
	"time"

	"github.com/oksasatya/employee-management-api/internal/domain/entity"
)

// EmployeeResponse is the full read shape of an employee.
type EmployeeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Age          int       `json:"age,omitempty"`
	Salary       float64   `json:"salary,omitempty"`
	IsActive     bool      `json:"is_active"`
	JoiningDate  time.Time `json:"joining_date,omitempty"`
	DepartmentID string    `json:"department_id,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromEmployee(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Address:      e.Address,
		Email:        e.Email,
		Phone:        e.Phone,
		Age:          e.Age,
		Salary:       e.Salary,
		IsActive:     e.IsActive,
		JoiningDate:  e.JoiningDate,
		DepartmentID: e.DepartmentID,
		PhotoURL:     e.PhotoURL,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromEmployees(list []*entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEmployee(e))
	}
	return out
}
