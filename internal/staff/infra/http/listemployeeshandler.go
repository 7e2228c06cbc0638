package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/staff/api"
	"github.com/stafftools/staff-service/internal/staff/domain"
	"github.com/stafftools/staff-service/pkg/convert"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
)

type ListEmployeesHandler struct {
	staffService api.StaffService
	converters   convert.Registry
}

func NewListEmployeesHandler(staffService api.StaffService, converters convert.Registry) ListEmployeesHandler {
	return ListEmployeesHandler{
		staffService: staffService,
		converters:   converters,
	}
}

func (h ListEmployeesHandler) Method() string {
	return http.MethodGet
}

func (h ListEmployeesHandler) Path() string {
	return "/employees"
}

func (h ListEmployeesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	// absent means the full list, present but malformed must fail the request
	var supervisorID *domain.EmployeeID
	if r.URL.Query().Has("supervisorId") {
		rawID, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[uuid.UUID]("supervisorId"), nil)
		if err != nil {
			return err
		}

		supervisorID = &domain.EmployeeID{UUID: rawID}
	}

	result, err := h.staffService.List(r.Context(), supervisorID)
	if err != nil {
		return err
	}

	out, err := convert.To[[]EmployeeOut](h.converters, result)
	if err != nil {
		return err
	}

	w.SetJSONBody(out)
	return nil
}
