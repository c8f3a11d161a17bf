package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

// DBTxKey is the context key under which an open transaction is stored.
const DBTxKey contextKey = "db_tx"

// StorageError marks a transaction infrastructure failure (begin or commit).
// Business-rule errors returned by the work function are never wrapped; they
// cross the transaction boundary with their identity intact.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// WithTx returns a context carrying an open transaction. Repositories pick
// it up through TxFromContext so every statement issued within RunInTx runs
// on the same connection.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, DBTxKey, tx)
}

// TxFromContext retrieves the open transaction from the context, or nil.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(DBTxKey).(pgx.Tx)
	return tx
}

// TxRunner binds RunInTx to a pool so services can depend on a small
// interface instead of the pool itself.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return RunInTx(ctx, r.pool, fn)
}

// RunInTx executes fn within a single read-committed transaction. If fn
// returns an error the transaction is rolled back and the error is returned
// unchanged. If fn succeeds the transaction is committed; begin and commit
// failures are surfaced as *StorageError. The rollback is deferred, so the
// connection is released on every exit path, including panics and context
// cancellation.
//
// Nested calls join the transaction already present on the context.
func RunInTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	if TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return &StorageError{Op: "begin", Err: err}
	}
	defer tx.Rollback(ctx)

	if err := fn(WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &StorageError{Op: "commit", Err: err}
	}
	return nil
}
