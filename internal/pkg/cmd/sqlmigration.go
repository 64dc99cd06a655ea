package cmd

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/klwxsrx/repertoire-hero/pkg/log"
	"github.com/klwxsrx/repertoire-hero/pkg/sql"
)

type (
	SQLMigrations interface {
		MustRegister(sources ...fs.ReadDirFS)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.Database
		logger log.Logger
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

// MustRegister applies every source right away, so that a module sees its
// tables as soon as its container is loaded.
func (s *sqlMigrations) MustRegister(sources ...fs.ReadDirFS) {
	for _, source := range sources {
		err := sql.NewMigration(s.db, source, s.logger).Execute(s.ctx)
		if err != nil {
			panic(fmt.Errorf("execute migrations: %w", err))
		}
	}
}
