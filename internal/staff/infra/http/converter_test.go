package http_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftools/staff-service/internal/staff/app/service"
	staffhttp "github.com/stafftools/staff-service/internal/staff/infra/http"
	"github.com/stafftools/staff-service/pkg/convert"
)

func TestMustConverterRegistry_CoversHandlerConversions(t *testing.T) {
	registry := staffhttp.MustConverterRegistry()

	requestedPairs := []struct {
		source reflect.Type
		target reflect.Type
	}{
		{reflect.TypeOf((*service.EmployeeData)(nil)), reflect.TypeOf((*staffhttp.EmployeeOut)(nil))},
		{reflect.TypeOf([]service.EmployeeData(nil)), reflect.TypeOf([]staffhttp.EmployeeOut(nil))},
	}

	for _, pair := range requestedPairs {
		_, ok := registry.Lookup(pair.source, pair.target)
		assert.True(t, ok, "no converter for %s to %s", pair.source, pair.target)
	}
}

func TestMustConverterRegistry_ConvertsEmployeeData(t *testing.T) {
	hiredAt := time.Date(2023, time.June, 15, 9, 0, 0, 0, time.UTC)
	supervisorID := uuid.New()
	data := service.EmployeeData{
		ID:           uuid.New(),
		Name:         "Sophie",
		Title:        "Engineer",
		SupervisorID: &supervisorID,
		HiredAt:      hiredAt,
	}

	registry := staffhttp.MustConverterRegistry()

	out, err := convert.To[*staffhttp.EmployeeOut](registry, &data)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, data.ID, out.ID)
	assert.Equal(t, "Sophie", out.Name)
	assert.Equal(t, "Engineer", out.Title)
	assert.Equal(t, &supervisorID, out.SupervisorID)
	assert.Equal(t, hiredAt, out.HiredAt)

	listOut, err := convert.To[[]staffhttp.EmployeeOut](registry, []service.EmployeeData{data})
	require.NoError(t, err)
	require.Len(t, listOut, 1)
	assert.Equal(t, *out, listOut[0])

	emptyOut, err := convert.To[[]staffhttp.EmployeeOut](registry, []service.EmployeeData{})
	require.NoError(t, err)
	assert.NotNil(t, emptyOut)
	assert.Empty(t, emptyOut)
}
