package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/staff/api"
	"github.com/stafftools/staff-service/internal/staff/domain"
	"github.com/stafftools/staff-service/pkg/convert"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
)

type GetEmployeeByIDHandler struct {
	staffService api.StaffService
	converters   convert.Registry
}

func NewGetEmployeeByIDHandler(staffService api.StaffService, converters convert.Registry) GetEmployeeByIDHandler {
	return GetEmployeeByIDHandler{
		staffService: staffService,
		converters:   converters,
	}
}

func (h GetEmployeeByIDHandler) Method() string {
	return http.MethodGet
}

func (h GetEmployeeByIDHandler) Path() string {
	return "/employees/{employeeID}"
}

func (h GetEmployeeByIDHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	employeeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("employeeID"), err)
	if err != nil {
		return err
	}

	result, err := h.staffService.GetByID(r.Context(), domain.EmployeeID{UUID: employeeID})
	switch {
	case errors.Is(err, api.ErrEmployeeNotFound):
		w.SetStatusCode(http.StatusNotFound)
		return nil
	case err != nil:
		return err
	}

	out, err := convert.To[*EmployeeOut](h.converters, result)
	if err != nil {
		return err
	}

	w.SetJSONBody(out)
	return nil
}
