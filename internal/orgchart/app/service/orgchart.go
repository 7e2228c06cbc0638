package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/orgchart/app/staff"
)

// maxHierarchyDepth caps the recursion while building a hierarchy, the staff
// service guards against supervisor cycles but the data crosses a network
// boundary and is not trusted blindly.
const maxHierarchyDepth = 100

var (
	ErrEmployeeNotFound = staff.ErrEmployeeNotFound
	ErrHierarchyTooDeep = errors.New("employee hierarchy is too deep")
)

type (
	OrgChart interface {
		GetHierarchy(ctx context.Context, rootID uuid.UUID) (*HierarchyData, error)
	}

	// EmployeeNode is an employee with the subtree of employees reporting
	// to it, directly or through others.
	EmployeeNode struct {
		Employee     staff.Employee
		Subordinates []EmployeeNode
	}

	HierarchyData struct {
		ID           uuid.UUID
		Name         string
		Title        string
		HiredAt      time.Time
		Subordinates []HierarchyData
	}
)

type orgChartService struct {
	staffGateway staff.Gateway
	converter    HierarchyConverter
}

func NewOrgChartService(staffGateway staff.Gateway, converter HierarchyConverter) OrgChart {
	return orgChartService{
		staffGateway: staffGateway,
		converter:    converter,
	}
}

func (s orgChartService) GetHierarchy(ctx context.Context, rootID uuid.UUID) (*HierarchyData, error) {
	root, err := s.staffGateway.GetEmployee(ctx, rootID)
	if errors.Is(err, staff.ErrEmployeeNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get root employee: %w", err)
	}

	node, err := s.buildNode(ctx, *root, maxHierarchyDepth)
	if err != nil {
		return nil, err
	}

	return s.converter.ToDTOHierarchyData(node), nil
}

func (s orgChartService) buildNode(ctx context.Context, employee staff.Employee, depthLeft int) (EmployeeNode, error) {
	if depthLeft == 0 {
		return EmployeeNode{}, ErrHierarchyTooDeep
	}

	subordinates, err := s.staffGateway.ListSubordinates(ctx, employee.ID)
	if err != nil {
		return EmployeeNode{}, fmt.Errorf("list subordinates: %w", err)
	}

	node := EmployeeNode{Employee: employee, Subordinates: nil}
	for _, subordinate := range subordinates {
		subordinateNode, err := s.buildNode(ctx, subordinate, depthLeft-1)
		if err != nil {
			return EmployeeNode{}, err
		}

		node.Subordinates = append(node.Subordinates, subordinateNode)
	}

	return node, nil
}
