package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/staff/api"
	"github.com/stafftools/staff-service/internal/staff/domain"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
)

type ChangeSupervisorHandler struct {
	staffService api.StaffService
}

func NewChangeSupervisorHandler(staffService api.StaffService) ChangeSupervisorHandler {
	return ChangeSupervisorHandler{staffService: staffService}
}

func (h ChangeSupervisorHandler) Method() string {
	return http.MethodPut
}

func (h ChangeSupervisorHandler) Path() string {
	return "/employees/{employeeID}/supervisor"
}

func (h ChangeSupervisorHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	employeeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("employeeID"), err)
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[ChangeSupervisorIn](), err)
	if err != nil {
		return err
	}

	var supervisorID *domain.EmployeeID
	if body.SupervisorID != nil {
		supervisorID = &domain.EmployeeID{UUID: *body.SupervisorID}
	}

	err = h.staffService.ChangeSupervisor(r.Context(), domain.EmployeeID{UUID: employeeID}, supervisorID)
	switch {
	case errors.Is(err, api.ErrEmployeeNotFound):
		w.SetStatusCode(http.StatusNotFound)
		return nil
	case errors.Is(err, api.ErrSupervisorNotFound), errors.Is(err, api.ErrSupervisorCycle):
		w.SetStatusCode(http.StatusConflict)
		return nil
	case err != nil:
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}

type ChangeSupervisorIn struct {
	SupervisorID *uuid.UUID `json:"supervisorId"`
}
