package api

import (
	"context"

	"github.com/stafftools/staff-service/internal/staff/app/service"
	"github.com/stafftools/staff-service/internal/staff/domain"
)

var (
	ErrEmployeeNotFound     = service.ErrEmployeeNotFound
	ErrSupervisorNotFound   = service.ErrSupervisorNotFound
	ErrSupervisorCycle      = service.ErrSupervisorCycle
	ErrEmployeeAlreadyFired = service.ErrEmployeeAlreadyFired
)

type StaffService interface {
	Hire(ctx context.Context, data service.HireEmployeeData) (domain.EmployeeID, error)
	GetByID(ctx context.Context, id domain.EmployeeID) (*service.EmployeeData, error)
	List(ctx context.Context, supervisorID *domain.EmployeeID) ([]service.EmployeeData, error)
	ChangeSupervisor(ctx context.Context, id domain.EmployeeID, supervisorID *domain.EmployeeID) error
	Fire(ctx context.Context, id domain.EmployeeID) error
}
