package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// memoryDSN keeps the registry in process memory. The database disappears
// when the last connection closes.
const memoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS student (
	email TEXT PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	password_digest TEXT NOT NULL,
	cohort TEXT NOT NULL,
	program TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_student_cohort ON student(cohort);
`

type DB struct {
	*sqlx.DB
}

// New opens an in-memory database and creates the schema.
func New() (*DB, error) {
	db, err := sqlx.Connect("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin the pool
	// to one connection and never let it expire.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
