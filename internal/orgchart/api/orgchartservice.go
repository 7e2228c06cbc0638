package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/orgchart/app/service"
)

var (
	ErrEmployeeNotFound = service.ErrEmployeeNotFound
	ErrHierarchyTooDeep = service.ErrHierarchyTooDeep
)

type OrgChartService interface {
	GetHierarchy(ctx context.Context, rootID uuid.UUID) (*service.HierarchyData, error)
}
