package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftools/staff-service/internal/staff/domain"
)

func TestEmployee_SetDeletedAt_ClearsSupervisor(t *testing.T) {
	supervisorID := domain.EmployeeID{UUID: uuid.New()}
	employee := domain.Employee{
		ID:           domain.EmployeeID{UUID: uuid.New()},
		SupervisorID: &supervisorID,
	}

	deletedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	employee.SetDeletedAt(deletedAt)

	require.NotNil(t, employee.DeletedAt)
	assert.Equal(t, deletedAt, *employee.DeletedAt)
	assert.Nil(t, employee.SupervisorID)
}

func TestEmployee_SetSupervisor(t *testing.T) {
	employee := domain.Employee{ID: domain.EmployeeID{UUID: uuid.New()}}

	supervisorID := domain.EmployeeID{UUID: uuid.New()}
	employee.SetSupervisor(&supervisorID)
	require.NotNil(t, employee.SupervisorID)
	assert.Equal(t, supervisorID, *employee.SupervisorID)

	employee.SetSupervisor(nil)
	assert.Nil(t, employee.SupervisorID)
}
