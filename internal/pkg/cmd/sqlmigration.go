package cmd

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/stafftools/staff-service/pkg/log"
	pkgsql "github.com/stafftools/staff-service/pkg/sql"
)

// SQLMigrations executes migration sources as bounded contexts register them
// during container construction, before any query runs against their tables.
type SQLMigrations struct {
	ctx    context.Context
	db     pkgsql.Database
	logger log.Logger
}

func NewSQLMigrations(ctx context.Context, db pkgsql.Database, logger log.Logger) SQLMigrations {
	return SQLMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

func (m SQLMigrations) MustRegisterSource(migrations fs.ReadDirFS) {
	err := pkgsql.NewMigration(m.db, migrations, m.logger).Execute(m.ctx)
	if err != nil {
		panic(fmt.Errorf("perform sql migrations: %w", err))
	}
}
