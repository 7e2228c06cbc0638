package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/stafftools/staff-service/internal/orgchart/app/staff"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
)

type gateway struct {
	client pkghttp.Client
}

func NewGateway(client pkghttp.Client) staff.Gateway {
	return gateway{client: client}
}

func (g gateway) GetEmployee(ctx context.Context, id uuid.UUID) (*staff.Employee, error) {
	var out employeeOut
	resp, err := g.client.NewRequest(ctx).
		SetPathParam("employeeID", id.String()).
		SetResult(&out).
		Get("/employees/{employeeID}")
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, staff.ErrEmployeeNotFound
	case resp.IsError():
		return nil, fmt.Errorf("get employee: unexpected response %d", resp.StatusCode())
	}

	employee := toEmployee(out)
	return &employee, nil
}

func (g gateway) ListSubordinates(ctx context.Context, supervisorID uuid.UUID) ([]staff.Employee, error) {
	var out []employeeOut
	resp, err := g.client.NewRequest(ctx).
		SetQueryParam("supervisorId", supervisorID.String()).
		SetResult(&out).
		Get("/employees")
	if err != nil {
		return nil, fmt.Errorf("list subordinates: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list subordinates: unexpected response %d", resp.StatusCode())
	}

	return lo.Map(out, func(item employeeOut, _ int) staff.Employee {
		return toEmployee(item)
	}), nil
}

type employeeOut struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	SupervisorID *uuid.UUID `json:"supervisorId"`
	HiredAt      time.Time  `json:"hiredAt"`
}

func toEmployee(out employeeOut) staff.Employee {
	return staff.Employee{
		ID:           out.ID,
		Name:         out.Name,
		Title:        out.Title,
		SupervisorID: out.SupervisorID,
		HiredAt:      out.HiredAt,
	}
}
