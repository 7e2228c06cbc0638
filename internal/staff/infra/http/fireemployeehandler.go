package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/staff/api"
	"github.com/stafftools/staff-service/internal/staff/domain"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
)

type FireEmployeeHandler struct {
	staffService api.StaffService
}

func NewFireEmployeeHandler(staffService api.StaffService) FireEmployeeHandler {
	return FireEmployeeHandler{staffService: staffService}
}

func (h FireEmployeeHandler) Method() string {
	return http.MethodDelete
}

func (h FireEmployeeHandler) Path() string {
	return "/employees/{employeeID}"
}

func (h FireEmployeeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	employeeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("employeeID"), err)
	if err != nil {
		return err
	}

	err = h.staffService.Fire(r.Context(), domain.EmployeeID{UUID: employeeID})
	switch {
	case errors.Is(err, api.ErrEmployeeNotFound):
		w.SetStatusCode(http.StatusNotFound)
		return nil
	case errors.Is(err, api.ErrEmployeeAlreadyFired):
		w.SetStatusCode(http.StatusConflict)
		return nil
	case err != nil:
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
