package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/repertoire-hero/pkg/log"
)

const (
	querySeparator = ";\n"

	migrationTableDDL = `
		create table if not exists migration (
			id text primary key
		)
	`
)

// Migration applies every file of the directory once, in file name order.
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

func (m *Migration) Execute(ctx context.Context) error {
	_, err := m.txClient.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	migrationIDs, err := m.getFileNames()
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		migrationSQL, err := fs.ReadFile(m.migrations, migrationID)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", migrationID, err)
		}

		err = m.performMigration(ctx, migrationID, string(migrationSQL))
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration) getFileNames() ([]string, error) {
	entries, err := m.migrations.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		result = append(result, entry.Name())
	}

	sort.Strings(result)
	return result, nil
}

func (m *Migration) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	tx, err := m.txClient.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	err = m.processMigration(ctx, tx, migrationID, migrationSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migrationID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	return nil
}

func (m *Migration) processMigration(ctx context.Context, client Client, migrationID, migrationSQL string) error {
	if strings.TrimSpace(migrationSQL) == "" {
		return errors.New("empty migration")
	}

	_, err := client.ExecContext(ctx, client.Rebind(`insert into migration (id) values (?)`), migrationID)
	if err != nil {
		return fmt.Errorf("insert migration record: %w", err)
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	err := m.txClient.SelectContext(ctx, &ids, `select id from migration`)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}
