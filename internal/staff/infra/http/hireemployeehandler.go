package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/staff/api"
	"github.com/stafftools/staff-service/internal/staff/app/service"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
)

type HireEmployeeHandler struct {
	staffService api.StaffService
}

func NewHireEmployeeHandler(staffService api.StaffService) HireEmployeeHandler {
	return HireEmployeeHandler{staffService: staffService}
}

func (h HireEmployeeHandler) Method() string {
	return http.MethodPost
}

func (h HireEmployeeHandler) Path() string {
	return "/employees"
}

func (h HireEmployeeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[HireEmployeeIn](), err)
	if err != nil {
		return err
	}

	employeeID, err := h.staffService.Hire(r.Context(), service.HireEmployeeData{
		Name:         body.Name,
		Title:        body.Title,
		SupervisorID: body.SupervisorID,
	})
	switch {
	case errors.Is(err, api.ErrSupervisorNotFound):
		w.SetStatusCode(http.StatusConflict)
		return nil
	case err != nil:
		return err
	}

	w.
		SetStatusCode(http.StatusCreated).
		SetJSONBody(EmployeeCreatedOut{ID: employeeID.UUID})
	return nil
}

type (
	HireEmployeeIn struct {
		Name         string     `json:"name"`
		Title        string     `json:"title"`
		SupervisorID *uuid.UUID `json:"supervisorId"`
	}

	EmployeeCreatedOut struct {
		ID uuid.UUID `json:"id"`
	}

	EmployeeOut struct {
		ID           uuid.UUID  `json:"id"`
		Name         string     `json:"name"`
		Title        string     `json:"title"`
		SupervisorID *uuid.UUID `json:"supervisorId"`
		HiredAt      time.Time  `json:"hiredAt"`
	}
)
