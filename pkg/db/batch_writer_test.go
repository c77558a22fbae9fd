package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func TestBatchWriterTransactions(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	bw := NewBatchWriter(context.Background(), db, 2)
	for i, w := range []string{"apple", "ball", "cat"} {
		if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			return InsertWord(tx, "nouns", w, i)
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	// Close and wait for pending batches to be committed. Use a timeout to avoid hanging tests.
	doneCh := make(chan error, 1)
	go func() {
		doneCh <- bw.Close()
	}()
	select {
	case err := <-doneCh:
		if err != nil {
			t.Fatalf("close failed: %v", err)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for batch commit/close")
	}

	n, err := CountWords(db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}
	if got := bw.Batches(); got != 2 {
		t.Fatalf("expected 2 committed batches, got %d", got)
	}
}

func TestBatchWriterRollback(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	bw := NewBatchWriter(context.Background(), db, 2)
	var mu sync.Mutex
	var reported []error
	bw.OnError = func(e error) {
		mu.Lock()
		reported = append(reported, e)
		mu.Unlock()
	}

	// Batch of 2: first succeeds, second fails. Whole batch should roll back.
	bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
		return InsertWord(tx, "verbs", "act", 0)
	})
	bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
		return fmt.Errorf("intentional error")
	})

	if err := bw.Close(); err == nil || !strings.Contains(err.Error(), "intentional error") {
		t.Fatalf("expected intentional error from Close, got %v", err)
	}
	mu.Lock()
	if len(reported) != 1 {
		t.Fatalf("expected OnError once, got %d", len(reported))
	}
	mu.Unlock()

	n, err := CountWords(db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows (rollback), got %d", n)
	}
}

func TestBatchWriterFlushesBySize(t *testing.T) {
	bw := NewBatchWriter(context.Background(), nil, 5)
	var mu sync.Mutex
	called := 0
	for i := 0; i < 12; i++ {
		if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			mu.Lock()
			called++
			mu.Unlock()
			return nil
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if called != 12 {
		t.Fatalf("expected 12 calls, got %d", called)
	}
	if got := bw.Batches(); got != 3 {
		t.Fatalf("expected 3 batches (5+5+2), got %d", got)
	}
}

func TestBatchWriterDropsBufferedBatchAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	bw := NewBatchWriter(ctx, nil, 10)

	ran := false
	if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
		ran = true
		return nil
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	cancel()

	// The committer has capacity, so the buffered batch may still be handed over;
	// either it ran or it was reported as dropped.
	err := bw.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected close error: %v", err)
	}
	if err == nil && !ran {
		t.Fatal("batch neither ran nor reported as dropped")
	}
}

func TestBatchWriterClosedTwice(t *testing.T) {
	bw := NewBatchWriter(context.Background(), nil, 1)
	if err := bw.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := bw.Close(); err != ErrBatchWriterClosed {
		t.Fatalf("expected ErrBatchWriterClosed, got %v", err)
	}
	if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error { return nil }); err != ErrBatchWriterClosed {
		t.Fatalf("expected ErrBatchWriterClosed on submit, got %v", err)
	}
}
