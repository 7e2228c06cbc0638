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

	"github.com/stafftools/staff-service/internal/staff/app/service"
	"github.com/stafftools/staff-service/internal/staff/domain"
	staffdomainmock "github.com/stafftools/staff-service/internal/staff/domain/mock"
	"github.com/stafftools/staff-service/pkg/persistence"
	pkgpersistencemock "github.com/stafftools/staff-service/pkg/persistence/mock"
	pkgpersistencestub "github.com/stafftools/staff-service/pkg/persistence/stub"
	pkgtime "github.com/stafftools/staff-service/pkg/time"
)

func TestStaffService_Hire_Returns(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	employeeID := domain.EmployeeID{UUID: uuid.New()}
	supervisorID := domain.EmployeeID{UUID: uuid.New()}

	tests := []struct {
		name         string
		data         service.HireEmployeeData
		transaction  func(ctrl *gomock.Controller) persistence.Transaction
		employeeRepo func(ctrl *gomock.Controller) domain.EmployeeRepository
		expect       func(t *testing.T, id domain.EmployeeID, err error)
	}{
		{
			name: "success_without_supervisor",
			data: service.HireEmployeeData{Name: "Jonas", Title: "CTO"},
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().NextID().Return(employeeID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, employee *domain.Employee) {
						require.NotNil(t, employee)
						assert.Equal(t, employeeID, employee.ID)
						assert.Equal(t, "Jonas", employee.Name)
						assert.Equal(t, "CTO", employee.Title)
						assert.Nil(t, employee.SupervisorID)
						assert.Equal(t, now, employee.HiredAt)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, id domain.EmployeeID, err error) {
				require.NoError(t, err)
				assert.Equal(t, employeeID, id)
			},
		},
		{
			name: "success_with_supervisor",
			data: service.HireEmployeeData{Name: "Sophie", Title: "Engineer", SupervisorID: &supervisorID.UUID},
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{supervisorID}}).
					Return(&domain.Employee{ID: supervisorID}, nil)
				mock.EXPECT().NextID().Return(employeeID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, employee *domain.Employee) {
						require.NotNil(t, employee.SupervisorID)
						assert.Equal(t, supervisorID, *employee.SupervisorID)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, id domain.EmployeeID, err error) {
				require.NoError(t, err)
				assert.Equal(t, employeeID, id)
			},
		},
		{
			name: "error_when_supervisor_not_found",
			data: service.HireEmployeeData{Name: "Sophie", Title: "Engineer", SupervisorID: &supervisorID.UUID},
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrEmployeeNotFound)
				return mock
			},
			expect: func(t *testing.T, _ domain.EmployeeID, err error) {
				assert.ErrorIs(t, err, service.ErrSupervisorNotFound)
			},
		},
		{
			name: "error_when_repo_returns_error",
			data: service.HireEmployeeData{Name: "Jonas", Title: "CTO"},
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().NextID().Return(employeeID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, _ domain.EmployeeID, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "error_when_transaction_returns_error",
			data: service.HireEmployeeData{Name: "Jonas", Title: "CTO"},
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				return staffdomainmock.NewEmployeeRepository(ctrl)
			},
			transaction: func(ctrl *gomock.Controller) persistence.Transaction {
				mock := pkgpersistencemock.NewTransaction(ctrl)
				mock.EXPECT().WithinContext(gomock.Any(), gomock.Any()).Return(errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, _ domain.EmployeeID, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transaction := pkgpersistencestub.NewTransaction()
			if tc.transaction != nil {
				transaction = tc.transaction(ctrl)
			}

			clock := pkgtime.NewAdjustableClock()
			ctx := clock.Set(context.Background(), now)

			srv := service.NewStaffService(clock, transaction, tc.employeeRepo(ctrl), service.NewDTOConverter())

			id, err := srv.Hire(ctx, tc.data)
			tc.expect(t, id, err)
		})
	}
}

func TestStaffService_ChangeSupervisor_Returns(t *testing.T) {
	employeeID := domain.EmployeeID{UUID: uuid.New()}
	supervisorID := domain.EmployeeID{UUID: uuid.New()}
	topID := domain.EmployeeID{UUID: uuid.New()}

	tests := []struct {
		name         string
		supervisorID *domain.EmployeeID
		employeeRepo func(ctrl *gomock.Controller) domain.EmployeeRepository
		expect       func(t *testing.T, err error)
	}{
		{
			name:         "success_with_supervisor_chain",
			supervisorID: &supervisorID,
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{employeeID}}).
					Return(&domain.Employee{ID: employeeID}, nil)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{supervisorID}}).
					Return(&domain.Employee{ID: supervisorID, SupervisorID: &topID}, nil)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{topID}}).
					Return(&domain.Employee{ID: topID}, nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, employee *domain.Employee) {
						require.NotNil(t, employee.SupervisorID)
						assert.Equal(t, supervisorID, *employee.SupervisorID)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:         "success_clearing_supervisor",
			supervisorID: nil,
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).
					Return(&domain.Employee{ID: employeeID, SupervisorID: &supervisorID}, nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, employee *domain.Employee) {
						assert.Nil(t, employee.SupervisorID)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:         "error_when_self_supervision",
			supervisorID: &employeeID,
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{employeeID}}).
					Return(&domain.Employee{ID: employeeID}, nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrSupervisorCycle)
			},
		},
		{
			name:         "error_when_indirect_cycle",
			supervisorID: &supervisorID,
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{employeeID}}).
					Return(&domain.Employee{ID: employeeID}, nil)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{supervisorID}}).
					Return(&domain.Employee{ID: supervisorID, SupervisorID: &employeeID}, nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrSupervisorCycle)
			},
		},
		{
			// a cycle persisted by concurrent changes must terminate the
			// chain walk even though the changed employee is not part of it
			name:         "error_when_existing_chain_cyclic",
			supervisorID: &supervisorID,
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{employeeID}}).
					Return(&domain.Employee{ID: employeeID}, nil)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{supervisorID}}).
					Return(&domain.Employee{ID: supervisorID, SupervisorID: &topID}, nil)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{topID}}).
					Return(&domain.Employee{ID: topID, SupervisorID: &supervisorID}, nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrSupervisorCycle)
			},
		},
		{
			name:         "error_when_supervisor_not_found",
			supervisorID: &supervisorID,
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{employeeID}}).
					Return(&domain.Employee{ID: employeeID}, nil)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{supervisorID}}).
					Return(nil, domain.ErrEmployeeNotFound)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrSupervisorNotFound)
			},
		},
		{
			name:         "error_when_employee_not_found",
			supervisorID: &supervisorID,
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrEmployeeNotFound)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrEmployeeNotFound)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := service.NewStaffService(
				pkgtime.NewAdjustableClock(),
				pkgpersistencestub.NewTransaction(),
				tc.employeeRepo(ctrl),
				service.NewDTOConverter(),
			)

			err := srv.ChangeSupervisor(context.Background(), employeeID, tc.supervisorID)
			tc.expect(t, err)
		})
	}
}

func TestStaffService_Fire_Returns(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	employeeID := domain.EmployeeID{UUID: uuid.New()}
	supervisorID := domain.EmployeeID{UUID: uuid.New()}
	subordinateID := domain.EmployeeID{UUID: uuid.New()}

	tests := []struct {
		name         string
		employeeRepo func(ctrl *gomock.Controller) domain.EmployeeRepository
		expect       func(t *testing.T, err error)
	}{
		{
			name: "success_reassigns_subordinates",
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{employeeID}, WithDeleted: true}).
					Return(&domain.Employee{ID: employeeID, SupervisorID: &supervisorID}, nil)
				mock.EXPECT().Find(gomock.Any(), domain.FindEmployeeSpecification{SupervisorIDs: []domain.EmployeeID{employeeID}}).
					Return([]domain.Employee{{ID: subordinateID, SupervisorID: &employeeID}}, nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, employee *domain.Employee) {
						assert.Equal(t, subordinateID, employee.ID)
						require.NotNil(t, employee.SupervisorID)
						assert.Equal(t, supervisorID, *employee.SupervisorID)
					}).
					Return(nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, employee *domain.Employee) {
						assert.Equal(t, employeeID, employee.ID)
						require.NotNil(t, employee.DeletedAt)
						assert.Equal(t, now, *employee.DeletedAt)
						assert.Nil(t, employee.SupervisorID)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			// the lookup must include deleted employees, otherwise a second
			// Fire reports not-found instead of the conflict
			name: "error_when_already_fired",
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				deletedAt := now.Add(-time.Hour)
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{employeeID}, WithDeleted: true}).
					Return(&domain.Employee{ID: employeeID, DeletedAt: &deletedAt}, nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrEmployeeAlreadyFired)
			},
		},
		{
			name: "error_when_employee_not_found",
			employeeRepo: func(ctrl *gomock.Controller) domain.EmployeeRepository {
				mock := staffdomainmock.NewEmployeeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrEmployeeNotFound)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrEmployeeNotFound)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clock := pkgtime.NewAdjustableClock()
			ctx := clock.Set(context.Background(), now)

			srv := service.NewStaffService(
				clock,
				pkgpersistencestub.NewTransaction(),
				tc.employeeRepo(ctrl),
				service.NewDTOConverter(),
			)

			err := srv.Fire(ctx, employeeID)
			tc.expect(t, err)
		})
	}
}

func TestStaffService_PurgeFired_DeletesPastRetention(t *testing.T) {
	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := staffdomainmock.NewEmployeeRepository(ctrl)
	repoMock.EXPECT().DeleteAll(gomock.Any(), now.Add(-30*24*time.Hour)).Return(2, nil)

	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Set(context.Background(), now)

	srv := service.NewStaffService(clock, pkgpersistencestub.NewTransaction(), repoMock, service.NewDTOConverter())
	require.NoError(t, srv.PurgeFired(ctx))
}

func TestStaffService_GetByID_Returns(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	employeeID := domain.EmployeeID{UUID: uuid.New()}
	supervisorID := domain.EmployeeID{UUID: uuid.New()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := staffdomainmock.NewEmployeeRepository(ctrl)
	repoMock.EXPECT().FindOne(gomock.Any(), domain.FindEmployeeSpecification{IDs: []domain.EmployeeID{employeeID}}).
		Return(&domain.Employee{
			ID:           employeeID,
			Name:         "Sophie",
			Title:        "Engineer",
			SupervisorID: &supervisorID,
			HiredAt:      now,
		}, nil)

	srv := service.NewStaffService(
		pkgtime.NewAdjustableClock(),
		pkgpersistencestub.NewTransaction(),
		repoMock,
		service.NewDTOConverter(),
	)

	data, err := srv.GetByID(context.Background(), employeeID)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, employeeID.UUID, data.ID)
	assert.Equal(t, "Sophie", data.Name)
	assert.Equal(t, "Engineer", data.Title)
	require.NotNil(t, data.SupervisorID)
	assert.Equal(t, supervisorID.UUID, *data.SupervisorID)
	assert.Equal(t, now, data.HiredAt)
}
