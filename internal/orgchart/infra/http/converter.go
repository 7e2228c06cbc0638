package http

import (
	"github.com/stafftools/staff-service/internal/orgchart/app/service"
	"github.com/stafftools/staff-service/pkg/convert"
)

func MustConverterRegistry() convert.Registry {
	return convert.MustRegistry(
		convert.New(toHTTPHierarchyOut),
	)
}

func toHTTPHierarchyOut(data *service.HierarchyData) (*HierarchyOut, error) {
	if data == nil {
		return nil, nil
	}

	subordinates := make([]HierarchyOut, 0, len(data.Subordinates))
	for _, subordinate := range data.Subordinates {
		out, err := toHTTPHierarchyOut(&subordinate)
		if err != nil {
			return nil, err
		}

		subordinates = append(subordinates, *out)
	}

	return &HierarchyOut{
		ID:           data.ID,
		Name:         data.Name,
		Title:        data.Title,
		HiredAt:      data.HiredAt,
		Subordinates: subordinates,
	}, nil
}
