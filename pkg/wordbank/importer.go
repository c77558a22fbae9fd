package wordbank

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/japaniel/sentencer/pkg/db"
	"go.uber.org/zap"

	_ "github.com/mattn/go-sqlite3"
)

const importBatchSize = 200

// Import replaces the contents of the words table with bank, keeping each
// category's declared order. The old rows are deleted in the same transaction
// as the first batch of words. It returns the number of words submitted.
func Import(ctx context.Context, conn *sql.DB, bank Bank, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.InitDB(conn); err != nil {
		return 0, fmt.Errorf("init word bank schema: %w", err)
	}

	bw := db.NewBatchWriter(ctx, conn, importBatchSize)
	bw.OnError = func(err error) {
		logger.Warn("word batch failed", zap.Error(err))
	}

	if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
		return db.ClearWords(tx)
	}); err != nil {
		_ = bw.Close()
		return 0, fmt.Errorf("queue clear: %w", err)
	}

	// Sorted so repeated imports commit in the same order.
	cats := make([]string, 0, len(bank))
	for c := range bank {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	count := 0
	for _, cat := range cats {
		for pos, w := range bank[cat] {
			if strings.TrimSpace(w) == "" {
				logger.Debug("skipping blank word", zap.String("category", cat), zap.Int("position", pos))
				continue
			}
			if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
				return db.InsertWord(tx, cat, w, pos)
			}); err != nil {
				_ = bw.Close()
				return count, fmt.Errorf("queue %s/%s: %w", cat, w, err)
			}
			count++
		}
		logger.Debug("queued category", zap.String("category", cat), zap.Int("words", len(bank[cat])))
	}

	if err := bw.Close(); err != nil {
		return count, fmt.Errorf("import word bank: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return count, err
	}
	logger.Info("word bank imported", zap.Int("words", count), zap.Int("batches", bw.Batches()))
	return count, nil
}

// LoadDB reads every stored category back into a Bank.
func LoadDB(conn *sql.DB) (Bank, error) {
	cats, err := db.Categories(conn)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	bank := make(Bank, len(cats))
	for _, c := range cats {
		words, err := db.WordsByCategory(conn, c)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", c, err)
		}
		list := make([]string, len(words))
		for i, w := range words {
			list[i] = w.Text
		}
		bank[c] = list
	}
	return bank, nil
}

// IsDatabase reports whether path names a SQLite word bank rather than a JSON document.
func IsDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Open loads a word bank from a JSON document or, judging by extension, a SQLite database.
func Open(path string) (Bank, error) {
	if !IsDatabase(path) {
		return Load(path)
	}
	// sql.Open would create a missing file.
	if _, err := os.Stat(path); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer conn.Close()

	bank, err := LoadDB(conn)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	return bank, nil
}
