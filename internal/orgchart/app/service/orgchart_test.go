package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stafftools/staff-service/internal/orgchart/app/service"
	"github.com/stafftools/staff-service/internal/orgchart/app/staff"
	staffmock "github.com/stafftools/staff-service/internal/orgchart/app/staff/mock"
)

func TestOrgChartService_GetHierarchy_Returns(t *testing.T) {
	hiredAt := time.Date(2023, time.June, 15, 9, 0, 0, 0, time.UTC)
	jonasID := uuid.New()
	sophieID := uuid.New()
	rootID := uuid.New()

	jonas := staff.Employee{ID: jonasID, Name: "Jonas", Title: "CTO", HiredAt: hiredAt}
	sophie := staff.Employee{ID: sophieID, Name: "Sophie", Title: "Engineer", SupervisorID: &jonasID, HiredAt: hiredAt.AddDate(0, 3, 0)}

	tests := []struct {
		name         string
		rootID       uuid.UUID
		staffGateway func(ctrl *gomock.Controller) staff.Gateway
		expect       func(t *testing.T, hierarchy *service.HierarchyData, err error)
	}{
		{
			name:   "success_with_single_subordinate",
			rootID: jonasID,
			staffGateway: func(ctrl *gomock.Controller) staff.Gateway {
				mock := staffmock.NewMockGateway(ctrl)
				mock.EXPECT().GetEmployee(gomock.Any(), jonasID).Return(&jonas, nil)
				mock.EXPECT().ListSubordinates(gomock.Any(), jonasID).Return([]staff.Employee{sophie}, nil)
				mock.EXPECT().ListSubordinates(gomock.Any(), sophieID).Return(nil, nil)
				return mock
			},
			expect: func(t *testing.T, hierarchy *service.HierarchyData, err error) {
				require.NoError(t, err)
				require.NotNil(t, hierarchy)
				assert.Equal(t, jonasID, hierarchy.ID)
				assert.Equal(t, "Jonas", hierarchy.Name)
				assert.Equal(t, "CTO", hierarchy.Title)
				assert.Equal(t, hiredAt, hierarchy.HiredAt)

				require.Len(t, hierarchy.Subordinates, 1)
				subordinate := hierarchy.Subordinates[0]
				assert.Equal(t, sophieID, subordinate.ID)
				assert.Equal(t, "Sophie", subordinate.Name)
				assert.Equal(t, "Engineer", subordinate.Title)
				assert.Equal(t, hiredAt.AddDate(0, 3, 0), subordinate.HiredAt)
				assert.Empty(t, subordinate.Subordinates)
			},
		},
		{
			name:   "success_with_leaf_employee",
			rootID: sophieID,
			staffGateway: func(ctrl *gomock.Controller) staff.Gateway {
				mock := staffmock.NewMockGateway(ctrl)
				mock.EXPECT().GetEmployee(gomock.Any(), sophieID).Return(&sophie, nil)
				mock.EXPECT().ListSubordinates(gomock.Any(), sophieID).Return(nil, nil)
				return mock
			},
			expect: func(t *testing.T, hierarchy *service.HierarchyData, err error) {
				require.NoError(t, err)
				require.NotNil(t, hierarchy)
				assert.Equal(t, "Sophie", hierarchy.Name)
				assert.Empty(t, hierarchy.Subordinates)
			},
		},
		{
			name:   "error_when_root_not_found",
			rootID: rootID,
			staffGateway: func(ctrl *gomock.Controller) staff.Gateway {
				mock := staffmock.NewMockGateway(ctrl)
				mock.EXPECT().GetEmployee(gomock.Any(), rootID).Return(nil, staff.ErrEmployeeNotFound)
				return mock
			},
			expect: func(t *testing.T, hierarchy *service.HierarchyData, err error) {
				assert.ErrorIs(t, err, service.ErrEmployeeNotFound)
				assert.Nil(t, hierarchy)
			},
		},
		{
			name:   "error_when_gateway_fails",
			rootID: jonasID,
			staffGateway: func(ctrl *gomock.Controller) staff.Gateway {
				mock := staffmock.NewMockGateway(ctrl)
				mock.EXPECT().GetEmployee(gomock.Any(), jonasID).Return(&jonas, nil)
				mock.EXPECT().ListSubordinates(gomock.Any(), jonasID).Return(nil, errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, hierarchy *service.HierarchyData, err error) {
				assert.Error(t, err)
				assert.Nil(t, hierarchy)
			},
		},
		{
			name:   "error_when_hierarchy_cyclic",
			rootID: jonasID,
			staffGateway: func(ctrl *gomock.Controller) staff.Gateway {
				mock := staffmock.NewMockGateway(ctrl)
				mock.EXPECT().GetEmployee(gomock.Any(), jonasID).Return(&jonas, nil)
				mock.EXPECT().ListSubordinates(gomock.Any(), jonasID).Return([]staff.Employee{sophie}, nil).AnyTimes()
				mock.EXPECT().ListSubordinates(gomock.Any(), sophieID).Return([]staff.Employee{jonas}, nil).AnyTimes()
				return mock
			},
			expect: func(t *testing.T, hierarchy *service.HierarchyData, err error) {
				assert.ErrorIs(t, err, service.ErrHierarchyTooDeep)
				assert.Nil(t, hierarchy)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := service.NewOrgChartService(
				tc.staffGateway(ctrl),
				service.NewHierarchyConverter(service.NewEmployeeConverter()),
			)

			hierarchy, err := srv.GetHierarchy(context.Background(), tc.rootID)
			tc.expect(t, hierarchy, err)
		})
	}
}

func TestHierarchyConverter_ConvertsSubtreeRecursively(t *testing.T) {
	hiredAt := time.Date(2023, time.June, 15, 9, 0, 0, 0, time.UTC)
	node := service.EmployeeNode{
		Employee: staff.Employee{ID: uuid.New(), Name: "Jonas", Title: "CTO", HiredAt: hiredAt},
		Subordinates: []service.EmployeeNode{
			{Employee: staff.Employee{ID: uuid.New(), Name: "Sophie", Title: "Engineer", HiredAt: hiredAt}},
			{
				Employee: staff.Employee{ID: uuid.New(), Name: "Marc", Title: "Engineer", HiredAt: hiredAt},
				Subordinates: []service.EmployeeNode{
					{Employee: staff.Employee{ID: uuid.New(), Name: "Lena", Title: "Intern", HiredAt: hiredAt}},
				},
			},
		},
	}

	converter := service.NewHierarchyConverter(service.NewEmployeeConverter())
	data := converter.ToDTOHierarchyData(node)

	require.NotNil(t, data)
	assert.Equal(t, "Jonas", data.Name)
	require.Len(t, data.Subordinates, 2)
	assert.Equal(t, "Sophie", data.Subordinates[0].Name)
	assert.Empty(t, data.Subordinates[0].Subordinates)
	assert.Equal(t, "Marc", data.Subordinates[1].Name)
	require.Len(t, data.Subordinates[1].Subordinates, 1)
	assert.Equal(t, "Lena", data.Subordinates[1].Subordinates[0].Name)
}
