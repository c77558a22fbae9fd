package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// InsertWord stores word under category at position.
// A word already present in the category keeps its original position.
func InsertWord(db DBExecutor, category, word string, position int) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("category must be non-empty")
	}
	if word == "" {
		return fmt.Errorf("word must be non-empty")
	}
	if position < 0 {
		return fmt.Errorf("position must not be negative, got %d", position)
	}
	_, err := db.Exec(`INSERT INTO words (category, word, position) VALUES (?, ?, ?)
		ON CONFLICT(category, word) DO NOTHING`, category, word, position)
	if err != nil {
		return fmt.Errorf("insert word: %w", err)
	}
	return nil
}

// ClearWords deletes every stored word so the next inserts define the bank alone.
func ClearWords(db DBExecutor) error {
	if _, err := db.Exec(`DELETE FROM words`); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}
	return nil
}

// WordsByCategory returns the words of category in declared order.
func WordsByCategory(db DBExecutor, category string) ([]Word, error) {
	rows, err := db.Query(`SELECT id, category, word, position FROM words WHERE category = ? ORDER BY position, id`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.ID, &w.Category, &w.Text, &w.Position); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// Categories returns every distinct category stored, sorted by name.
func Categories(db DBExecutor) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT category FROM words ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// CountWords returns the number of stored words across all categories.
func CountWords(db DBExecutor) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
