package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// WriteFunc performs database writes inside a batch transaction.
type WriteFunc func(ctx context.Context, tx *sql.Tx) error

// BatchWriter buffers writes and commits them in batches, one transaction per batch,
// on a single background committer. A failing write rolls back its whole batch.
type BatchWriter struct {
	ctx  context.Context
	conn *sql.DB
	size int

	mu     sync.Mutex
	buf    []WriteFunc
	closed bool

	commitCh chan []WriteFunc
	wg       sync.WaitGroup

	// OnError is called for every failed or dropped batch. Set it before the first Submit.
	OnError func(error)

	errMu    sync.Mutex
	firstErr error
	batches  int
}

// NewBatchWriter starts a writer that flushes every size submissions.
// When ctx is cancelled, batches not yet handed to the committer are dropped and reported.
// A nil conn runs the callbacks with a nil transaction.
func NewBatchWriter(ctx context.Context, conn *sql.DB, size int) *BatchWriter {
	if size <= 0 {
		size = 10
	}
	bw := &BatchWriter{
		ctx:      ctx,
		conn:     conn,
		size:     size,
		buf:      make([]WriteFunc, 0, size),
		commitCh: make(chan []WriteFunc, 2),
	}
	bw.wg.Add(1)
	go bw.committer()
	return bw
}

// Submit enqueues a write. It blocks while the committer is two batches behind.
func (bw *BatchWriter) Submit(w WriteFunc) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.closed {
		return ErrBatchWriterClosed
	}
	bw.buf = append(bw.buf, w)
	if len(bw.buf) >= bw.size {
		bw.flushLocked()
	}
	return nil
}

// flushLocked assumes bw.mu is held.
func (bw *BatchWriter) flushLocked() {
	if len(bw.buf) == 0 {
		return
	}
	batch := bw.buf
	bw.buf = make([]WriteFunc, 0, bw.size)

	select {
	case bw.commitCh <- batch:
	case <-bw.ctx.Done():
		bw.fail(fmt.Errorf("batch writer: dropping batch of %d writes: %w", len(batch), bw.ctx.Err()))
	}
}

func (bw *BatchWriter) committer() {
	defer bw.wg.Done()
	for batch := range bw.commitCh {
		if err := bw.execute(batch); err != nil {
			bw.fail(err)
			continue
		}
		bw.errMu.Lock()
		bw.batches++
		bw.errMu.Unlock()
	}
}

func (bw *BatchWriter) execute(batch []WriteFunc) error {
	// Committed batches are never abandoned half way, so flushing ignores cancellation.
	ctx := context.WithoutCancel(bw.ctx)
	if bw.conn == nil {
		for _, w := range batch {
			if err := w(ctx, nil); err != nil {
				return err
			}
		}
		return nil
	}

	tx, err := bw.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	for _, w := range batch {
		if err := w(ctx, tx); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch (%d writes): %w", len(batch), err)
	}
	return nil
}

func (bw *BatchWriter) fail(err error) {
	bw.errMu.Lock()
	if bw.firstErr == nil {
		bw.firstErr = err
	}
	bw.errMu.Unlock()
	if bw.OnError != nil {
		bw.OnError(err)
	}
}

// Batches returns how many batches have been committed so far.
func (bw *BatchWriter) Batches() int {
	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	return bw.batches
}

// Close flushes what is buffered, waits for the committer and returns the first error seen.
func (bw *BatchWriter) Close() error {
	bw.mu.Lock()
	if bw.closed {
		bw.mu.Unlock()
		return ErrBatchWriterClosed
	}
	bw.closed = true
	bw.flushLocked()
	bw.mu.Unlock()

	close(bw.commitCh)
	bw.wg.Wait()

	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	return bw.firstErr
}

// ErrBatchWriterClosed is returned by Submit and Close once the writer is closed.
var ErrBatchWriterClosed = &BatchWriterError{"batch writer closed"}

// BatchWriterError is a typed error for batch writer state errors.
type BatchWriterError struct{ msg string }

func (e *BatchWriterError) Error() string { return e.msg }
