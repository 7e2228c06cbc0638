//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "EmployeeRepository=EmployeeRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const Name = "staff"

var ErrEmployeeNotFound = errors.New("employee not found")

type (
	Employee struct {
		ID           EmployeeID
		Name         string
		Title        string
		SupervisorID *EmployeeID
		HiredAt      time.Time
		DeletedAt    *time.Time
	}

	EmployeeRepository interface {
		NextID() EmployeeID
		Store(context.Context, *Employee) error
		Find(context.Context, FindEmployeeSpecification) ([]Employee, error)
		FindOne(context.Context, FindEmployeeSpecification) (*Employee, error)
		DeleteAll(ctx context.Context, deletedBefore time.Time) (int, error)
	}

	FindEmployeeSpecification struct {
		IDs           []EmployeeID
		SupervisorIDs []EmployeeID
		WithDeleted   bool
	}

	EmployeeID struct{ uuid.UUID }
)

func (e *Employee) SetDeletedAt(t time.Time) {
	e.DeletedAt = &t
	e.SupervisorID = nil
}

func (e *Employee) SetSupervisor(id *EmployeeID) {
	e.SupervisorID = id
}
