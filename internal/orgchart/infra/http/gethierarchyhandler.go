package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/orgchart/api"
	"github.com/stafftools/staff-service/pkg/convert"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
)

type GetHierarchyHandler struct {
	orgChartService api.OrgChartService
	converters      convert.Registry
}

func NewGetHierarchyHandler(orgChartService api.OrgChartService, converters convert.Registry) GetHierarchyHandler {
	return GetHierarchyHandler{
		orgChartService: orgChartService,
		converters:      converters,
	}
}

func (h GetHierarchyHandler) Method() string {
	return http.MethodGet
}

func (h GetHierarchyHandler) Path() string {
	return "/orgchart/{employeeID}"
}

func (h GetHierarchyHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	employeeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("employeeID"), err)
	if err != nil {
		return err
	}

	hierarchy, err := h.orgChartService.GetHierarchy(r.Context(), employeeID)
	switch {
	case errors.Is(err, api.ErrEmployeeNotFound):
		w.SetStatusCode(http.StatusNotFound)
		return nil
	case err != nil:
		return err
	}

	out, err := convert.To[*HierarchyOut](h.converters, hierarchy)
	if err != nil {
		return err
	}

	w.SetJSONBody(out)
	return nil
}

type HierarchyOut struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Title        string         `json:"title"`
	HiredAt      time.Time      `json:"hiredAt"`
	Subordinates []HierarchyOut `json:"subordinates"`
}
