package service

import (
	"github.com/samber/lo"

	"github.com/stafftools/staff-service/internal/orgchart/app/staff"
)

type (
	// EmployeeConverter maps a single gateway employee to the employee
	// fields of HierarchyData, leaving Subordinates untouched.
	EmployeeConverter interface {
		ToDTOEmployee(staff.Employee) HierarchyData
	}

	// HierarchyConverter converts a subordinate tree recursively. The
	// employee converter is an explicit dependency here, substituting it in
	// a test takes a plain constructor argument.
	HierarchyConverter interface {
		ToDTOHierarchyData(EmployeeNode) *HierarchyData
	}
)

type employeeConverter struct{}

func NewEmployeeConverter() EmployeeConverter {
	return employeeConverter{}
}

func (c employeeConverter) ToDTOEmployee(employee staff.Employee) HierarchyData {
	return HierarchyData{
		ID:           employee.ID,
		Name:         employee.Name,
		Title:        employee.Title,
		HiredAt:      employee.HiredAt,
		Subordinates: nil,
	}
}

type hierarchyConverter struct {
	employee EmployeeConverter
}

func NewHierarchyConverter(employee EmployeeConverter) HierarchyConverter {
	return hierarchyConverter{employee: employee}
}

func (c hierarchyConverter) ToDTOHierarchyData(node EmployeeNode) *HierarchyData {
	data := c.employee.ToDTOEmployee(node.Employee)
	data.Subordinates = lo.Map(node.Subordinates, func(subordinate EmployeeNode, _ int) HierarchyData {
		return *c.ToDTOHierarchyData(subordinate)
	})

	return &data
}
