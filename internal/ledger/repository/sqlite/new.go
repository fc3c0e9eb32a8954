package sqlite

import (
	"database/sql"
	"fmt"

	"finbook/internal/ledger/repository"
	"finbook/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the ledger domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("ledger/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("ledger/repository/sqlite.%s", method)
}
