package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/stafftools/staff-service/internal/staff/domain"
	pkgsql "github.com/stafftools/staff-service/pkg/sql"
)

type employeeRepository struct {
	db        pkgsql.Client
	converter SqlxConverter
}

func NewEmployeeRepository(db pkgsql.Client, converter SqlxConverter) domain.EmployeeRepository {
	return employeeRepository{db: db, converter: converter}
}

func (r employeeRepository) NextID() domain.EmployeeID {
	return domain.EmployeeID{UUID: uuid.New()}
}

func (r employeeRepository) Store(ctx context.Context, employee *domain.Employee) error {
	query, args, err := sq.
		Insert("employee").
		Columns("id", "name", "title", "supervisor_id", "hired_at", "deleted_at").
		Values(employee.ID, employee.Name, employee.Title, employee.SupervisorID, employee.HiredAt, employee.DeletedAt).
		Suffix(`on conflict (id) do update set
			name = excluded.name,
			title = excluded.title,
			supervisor_id = excluded.supervisor_id,
			hired_at = excluded.hired_at,
			deleted_at = excluded.deleted_at,
			updated_at = now()
		`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r employeeRepository) Find(ctx context.Context, spec domain.FindEmployeeSpecification) ([]domain.Employee, error) {
	query, args, err := r.buildFindQuery(spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []SqlxEmployee
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	return r.converter.ToDomainEmployees(rows), nil
}

func (r employeeRepository) FindOne(ctx context.Context, spec domain.FindEmployeeSpecification) (*domain.Employee, error) {
	query, args, err := r.buildFindQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row SqlxEmployee
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}

	return r.converter.ToDomainEmployee(&row), nil
}

func (r employeeRepository) DeleteAll(ctx context.Context, deletedBefore time.Time) (int, error) {
	query, args, err := sq.
		Delete("employee").
		Where(sq.Lt{"deleted_at": deletedBefore}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(deleted), nil
}

func (r employeeRepository) buildFindQuery(spec domain.FindEmployeeSpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "name", "title", "supervisor_id", "hired_at", "deleted_at").
		From("employee").
		PlaceholderFormat(sq.Dollar)
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if len(spec.SupervisorIDs) > 0 {
		qb = qb.Where(sq.Eq{"supervisor_id": spec.SupervisorIDs})
	}
	if !spec.WithDeleted {
		qb = qb.Where(sq.Eq{"deleted_at": nil})
	}

	return qb
}

type SqlxEmployee struct {
	ID           domain.EmployeeID  `db:"id"`
	Name         string             `db:"name"`
	Title        string             `db:"title"`
	SupervisorID *domain.EmployeeID `db:"supervisor_id"`
	HiredAt      time.Time          `db:"hired_at"`
	DeletedAt    *time.Time         `db:"deleted_at"`
}
