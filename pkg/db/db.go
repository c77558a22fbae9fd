package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// migrations create the word-bank schema. Each statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS words (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT    NOT NULL,
		word     TEXT    NOT NULL,
		position INTEGER NOT NULL,
		UNIQUE(category, word)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_words_category_position ON words(category, position)`,
}

// InitDB applies the schema migrations in a single transaction.
func InitDB(conn *sql.DB) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range migrations {
		if _, err := tx.Exec(stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return tx.Commit()
}
