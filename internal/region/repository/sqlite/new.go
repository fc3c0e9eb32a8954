package sqlite

import (
	"database/sql"

	"finbook/pkg/log"
)

type implStore struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed country store.
func New(db *sql.DB, l log.Logger) *implStore {
	if db == nil {
		panic("region/repository/sqlite: db is required")
	}
	return &implStore{db: db, l: l}
}
