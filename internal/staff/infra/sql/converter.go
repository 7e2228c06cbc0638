package sql

import (
	"github.com/samber/lo"

	"github.com/stafftools/staff-service/internal/staff/domain"
)

type SqlxConverter interface {
	ToDomainEmployee(*SqlxEmployee) *domain.Employee
	ToDomainEmployees([]SqlxEmployee) []domain.Employee
}

type sqlxConverter struct{}

func NewSqlxConverter() SqlxConverter {
	return sqlxConverter{}
}

func (c sqlxConverter) ToDomainEmployee(row *SqlxEmployee) *domain.Employee {
	if row == nil {
		return nil
	}

	return &domain.Employee{
		ID:           row.ID,
		Name:         row.Name,
		Title:        row.Title,
		SupervisorID: row.SupervisorID,
		HiredAt:      row.HiredAt,
		DeletedAt:    row.DeletedAt,
	}
}

func (c sqlxConverter) ToDomainEmployees(rows []SqlxEmployee) []domain.Employee {
	return lo.Map(rows, func(row SqlxEmployee, _ int) domain.Employee {
		return *c.ToDomainEmployee(&row)
	})
}
