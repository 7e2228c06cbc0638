package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/staff/domain"
	"github.com/stafftools/staff-service/pkg/persistence"
	pkgtime "github.com/stafftools/staff-service/pkg/time"
)

const (
	deletedEmployeeRetention = 30 * 24 * time.Hour

	// A single lock for all supervisor changes: two concurrent changes on
	// different employees (A to B, B to A) would each see the other's
	// uncommitted state as acyclic and commit a cycle.
	changeSupervisorLockName = "change_supervisor"
)

var (
	ErrEmployeeNotFound     = domain.ErrEmployeeNotFound
	ErrSupervisorNotFound   = errors.New("supervisor not found")
	ErrSupervisorCycle      = errors.New("employee cannot supervise itself")
	ErrEmployeeAlreadyFired = errors.New("employee is already fired")
)

type (
	Staff interface {
		Hire(ctx context.Context, data HireEmployeeData) (domain.EmployeeID, error)
		GetByID(ctx context.Context, id domain.EmployeeID) (*EmployeeData, error)
		List(ctx context.Context, supervisorID *domain.EmployeeID) ([]EmployeeData, error)
		ChangeSupervisor(ctx context.Context, id domain.EmployeeID, supervisorID *domain.EmployeeID) error
		Fire(ctx context.Context, id domain.EmployeeID) error
		PurgeFired(ctx context.Context) error
	}

	HireEmployeeData struct {
		Name         string
		Title        string
		SupervisorID *uuid.UUID
	}

	EmployeeData struct {
		ID           uuid.UUID
		Name         string
		Title        string
		SupervisorID *uuid.UUID
		HiredAt      time.Time
	}
)

type staffService struct {
	clock        pkgtime.Clock
	transaction  persistence.Transaction
	employeeRepo domain.EmployeeRepository
	converter    DTOConverter
}

func NewStaffService(
	clock pkgtime.Clock,
	transaction persistence.Transaction,
	employeeRepo domain.EmployeeRepository,
	converter DTOConverter,
) Staff {
	return staffService{
		clock:        clock,
		transaction:  transaction,
		employeeRepo: employeeRepo,
		converter:    converter,
	}
}

func (s staffService) Hire(ctx context.Context, data HireEmployeeData) (domain.EmployeeID, error) {
	var employeeID domain.EmployeeID
	err := s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		supervisorID, err := s.findSupervisorID(ctx, data.SupervisorID)
		if err != nil {
			return err
		}

		employee := domain.Employee{
			ID:           s.employeeRepo.NextID(),
			Name:         data.Name,
			Title:        data.Title,
			SupervisorID: supervisorID,
			HiredAt:      s.clock.Now(ctx),
		}

		err = s.employeeRepo.Store(ctx, &employee)
		if err != nil {
			return fmt.Errorf("store employee: %w", err)
		}

		employeeID = employee.ID
		return nil
	})

	return employeeID, err
}

func (s staffService) GetByID(ctx context.Context, id domain.EmployeeID) (*EmployeeData, error) {
	employee, err := s.employeeRepo.FindOne(ctx, domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{id}})
	if err != nil {
		return nil, err
	}

	return s.converter.ToDTOEmployeeData(employee), nil
}

func (s staffService) List(ctx context.Context, supervisorID *domain.EmployeeID) ([]EmployeeData, error) {
	spec := domain.FindEmployeeSpecification{}
	if supervisorID != nil {
		spec.SupervisorIDs = []domain.EmployeeID{*supervisorID}
	}

	employees, err := s.employeeRepo.Find(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}

	return s.converter.ToDTOEmployeesData(employees), nil
}

func (s staffService) ChangeSupervisor(ctx context.Context, id domain.EmployeeID, supervisorID *domain.EmployeeID) error {
	return s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		employee, err := s.employeeRepo.FindOne(ctx, domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{id}})
		if err != nil {
			return err
		}

		if supervisorID != nil {
			err = s.checkSupervisorChain(ctx, id, *supervisorID)
			if err != nil {
				return err
			}
		}

		employee.SetSupervisor(supervisorID)
		err = s.employeeRepo.Store(ctx, employee)
		if err != nil {
			return fmt.Errorf("store employee: %w", err)
		}

		return nil
	}, changeSupervisorLockName)
}

func (s staffService) Fire(ctx context.Context, id domain.EmployeeID) error {
	return s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		// deleted employees included, firing twice must report the conflict
		// rather than a not-found
		employee, err := s.employeeRepo.FindOne(ctx, domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{id}, WithDeleted: true})
		if err != nil {
			return err
		}
		if employee.DeletedAt != nil {
			return ErrEmployeeAlreadyFired
		}

		err = s.reassignSubordinates(ctx, employee)
		if err != nil {
			return err
		}

		employee.SetDeletedAt(s.clock.Now(ctx))
		err = s.employeeRepo.Store(ctx, employee)
		if err != nil {
			return fmt.Errorf("store employee: %w", err)
		}

		return nil
	})
}

func (s staffService) PurgeFired(ctx context.Context) error {
	deletedBefore := s.clock.Now(ctx).Add(-deletedEmployeeRetention)
	_, err := s.employeeRepo.DeleteAll(ctx, deletedBefore)
	if err != nil {
		return fmt.Errorf("purge fired employees: %w", err)
	}

	return nil
}

func (s staffService) findSupervisorID(ctx context.Context, id *uuid.UUID) (*domain.EmployeeID, error) {
	if id == nil {
		return nil, nil
	}

	supervisorID := domain.EmployeeID{UUID: *id}
	_, err := s.employeeRepo.FindOne(ctx, domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{supervisorID}})
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, ErrSupervisorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find supervisor: %w", err)
	}

	return &supervisorID, nil
}

// checkSupervisorChain walks up from the new supervisor, an already visited
// employee means the hierarchy is or would become cyclic. The visited set
// also terminates the walk over an existing cycle that does not contain the
// changed employee.
func (s staffService) checkSupervisorChain(ctx context.Context, id, supervisorID domain.EmployeeID) error {
	visited := map[domain.EmployeeID]struct{}{id: {}}
	for {
		if _, ok := visited[supervisorID]; ok {
			return ErrSupervisorCycle
		}
		visited[supervisorID] = struct{}{}

		supervisor, err := s.employeeRepo.FindOne(ctx, domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{supervisorID}})
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return ErrSupervisorNotFound
		}
		if err != nil {
			return fmt.Errorf("find supervisor: %w", err)
		}

		if supervisor.SupervisorID == nil {
			return nil
		}
		supervisorID = *supervisor.SupervisorID
	}
}

func (s staffService) reassignSubordinates(ctx context.Context, employee *domain.Employee) error {
	subordinates, err := s.employeeRepo.Find(ctx, domain.FindEmployeeSpecification{
		SupervisorIDs: []domain.EmployeeID{employee.ID},
	})
	if err != nil {
		return fmt.Errorf("find subordinates: %w", err)
	}

	for i := range subordinates {
		subordinates[i].SetSupervisor(employee.SupervisorID)
		err = s.employeeRepo.Store(ctx, &subordinates[i])
		if err != nil {
			return fmt.Errorf("store subordinate: %w", err)
		}
	}

	return nil
}
