package http

import (
	"github.com/stafftools/staff-service/internal/staff/app/service"
	"github.com/stafftools/staff-service/pkg/convert"
)

// MustConverterRegistry assembles the converters of the staff HTTP boundary.
// The handlers request conversion by target type only, so the registry is the
// single place listing which DTO leaves the service for which application
// type. An integration test asserts the list is complete.
func MustConverterRegistry() convert.Registry {
	return convert.MustRegistry(
		convert.New(toHTTPEmployeeOut),
		convert.New(toHTTPEmployeesOut),
	)
}

func toHTTPEmployeeOut(data *service.EmployeeData) (*EmployeeOut, error) {
	if data == nil {
		return nil, nil
	}

	return &EmployeeOut{
		ID:           data.ID,
		Name:         data.Name,
		Title:        data.Title,
		SupervisorID: data.SupervisorID,
		HiredAt:      data.HiredAt,
	}, nil
}

func toHTTPEmployeesOut(data []service.EmployeeData) ([]EmployeeOut, error) {
	result := make([]EmployeeOut, 0, len(data))
	for _, item := range data {
		out, err := toHTTPEmployeeOut(&item)
		if err != nil {
			return nil, err
		}

		result = append(result, *out)
	}

	return result, nil
}
