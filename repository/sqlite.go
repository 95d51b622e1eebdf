package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) the sqlite database at dbPath. Each repository
// creates its own table on construction, so Open only has to hand out the
// connection.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Cross-repository statements (log seeding after habit insert) assume
	// a single writer.
	db.SetMaxOpenConns(1)
	return db, nil
}
