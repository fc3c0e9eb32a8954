package sqlite

import (
	"database/sql"
	"fmt"

	"finbook/internal/parsing/repository"
	"finbook/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed audit repository.
func New(db *sql.DB, l log.Logger) repository.AuditRepository {
	if db == nil {
		panic("parsing/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("parsing/repository/sqlite.%s", method)
}
