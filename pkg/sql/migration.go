package sql

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/stafftools/staff-service/pkg/log"
)

const (
	migrationLockName = "perform_migration"

	migrationTableDDL = `
		create table if not exists migration (
			id text primary key
		)
	`
)

type Migration struct {
	txClient   TxClient
	migrations fs.ReadDirFS
	logger     log.Logger
}

func NewMigration(txClient TxClient, migrations fs.ReadDirFS, logger log.Logger) *Migration {
	return &Migration{
		txClient:   txClient,
		migrations: migrations,
		logger:     logger,
	}
}

// Execute applies pending migration files in lexicographic order, all within
// a single transaction holding an advisory lock, so concurrent service
// instances don't race on the schema.
func (m *Migration) Execute(ctx context.Context) error {
	tx, err := m.txClient.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start migration transaction: %w", err)
	}

	err = m.performMigrations(ctx, tx)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit migrations: %w", err)
	}

	return nil
}

func (m *Migration) performMigrations(ctx context.Context, tx ClientTx) error {
	err := withTransactionLevelLock(ctx, migrationLockName, tx)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	migrationIDs, err := m.getFileNames()
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}

	performedIDs, err := m.getPerformedMigrationIDs(ctx, tx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedIDs[migrationID]; ok {
			continue
		}

		err = m.performMigration(ctx, tx, migrationID)
		if err != nil {
			return fmt.Errorf("migration %s: %w", migrationID, err)
		}

		m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	}

	return nil
}

func (m *Migration) performMigration(ctx context.Context, tx ClientTx, migrationID string) error {
	content, err := fs.ReadFile(m.migrations, migrationID)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}

	_, err = tx.ExecContext(ctx, string(content))
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "insert into migration (id) values ($1)", migrationID)
	return err
}

func (m *Migration) getFileNames() ([]string, error) {
	entries, err := m.migrations.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)

	return result, nil
}

func (m *Migration) getPerformedMigrationIDs(ctx context.Context, tx ClientTx) (map[string]struct{}, error) {
	var ids []string
	err := tx.SelectContext(ctx, &ids, "select id from migration")
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}

	return result, nil
}
