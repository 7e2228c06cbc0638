package service

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/stafftools/staff-service/internal/staff/domain"
)

type DTOConverter interface {
	ToDTOEmployeeData(*domain.Employee) *EmployeeData
	ToDTOEmployeesData([]domain.Employee) []EmployeeData
}

type dtoConverter struct{}

func NewDTOConverter() DTOConverter {
	return dtoConverter{}
}

func (c dtoConverter) ToDTOEmployeeData(employee *domain.Employee) *EmployeeData {
	if employee == nil {
		return nil
	}

	var supervisorID *uuid.UUID
	if employee.SupervisorID != nil {
		supervisorID = &employee.SupervisorID.UUID
	}

	return &EmployeeData{
		ID:           employee.ID.UUID,
		Name:         employee.Name,
		Title:        employee.Title,
		SupervisorID: supervisorID,
		HiredAt:      employee.HiredAt,
	}
}

func (c dtoConverter) ToDTOEmployeesData(employees []domain.Employee) []EmployeeData {
	return lo.Map(employees, func(employee domain.Employee, _ int) EmployeeData {
		return *c.ToDTOEmployeeData(&employee)
	})
}
