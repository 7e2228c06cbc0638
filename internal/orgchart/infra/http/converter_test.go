package http_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftools/staff-service/internal/orgchart/app/service"
	orgcharthttp "github.com/stafftools/staff-service/internal/orgchart/infra/http"
	"github.com/stafftools/staff-service/pkg/convert"
)

func TestMustConverterRegistry_ConvertsHierarchyRecursively(t *testing.T) {
	hiredAt := time.Date(2023, time.June, 15, 9, 0, 0, 0, time.UTC)
	data := service.HierarchyData{
		ID:      uuid.New(),
		Name:    "Jonas",
		Title:   "CTO",
		HiredAt: hiredAt,
		Subordinates: []service.HierarchyData{
			{
				ID:      uuid.New(),
				Name:    "Sophie",
				Title:   "Engineer",
				HiredAt: hiredAt.AddDate(0, 3, 0),
			},
		},
	}

	registry := orgcharthttp.MustConverterRegistry()

	out, err := convert.To[*orgcharthttp.HierarchyOut](registry, &data)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, data.ID, out.ID)
	assert.Equal(t, "Jonas", out.Name)
	assert.Equal(t, "CTO", out.Title)
	assert.Equal(t, hiredAt, out.HiredAt)

	require.Len(t, out.Subordinates, 1)
	subordinate := out.Subordinates[0]
	assert.Equal(t, data.Subordinates[0].ID, subordinate.ID)
	assert.Equal(t, "Sophie", subordinate.Name)
	assert.Equal(t, "Engineer", subordinate.Title)
	assert.Equal(t, hiredAt.AddDate(0, 3, 0), subordinate.HiredAt)
	assert.Empty(t, subordinate.Subordinates)
}

func TestMustConverterRegistry_UnknownPair_Fails(t *testing.T) {
	registry := orgcharthttp.MustConverterRegistry()

	_, err := convert.To[*orgcharthttp.HierarchyOut](registry, "not a hierarchy")
	assert.ErrorIs(t, err, convert.ErrConverterNotFound)
}
