//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock
package staff

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type (
	// Gateway is the read side of the staff service used to assemble
	// hierarchies.
	Gateway interface {
		GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error)
		ListSubordinates(ctx context.Context, supervisorID uuid.UUID) ([]Employee, error)
	}

	Employee struct {
		ID           uuid.UUID
		Name         string
		Title        string
		SupervisorID *uuid.UUID
		HiredAt      time.Time
	}
)
