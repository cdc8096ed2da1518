package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/skillpath/skillpath-api/internal/platform/logger"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled back
// if it returns an error.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes the given function within a database transaction.
// If the function returns an error or panics, the transaction is rolled back;
// otherwise it is committed.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			txErr := tx.Rollback()
			if txErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", txErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic",
					slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	err = fn(ctx, tx)
	if err != nil {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rollbackErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rollbackErr,
				err,
			)
		}
		log.Debug("rolled back transaction due to error",
			slog.String("error", err.Error()))
		return err
	}

	err = tx.Commit()
	if err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug("transaction committed successfully")
	return nil
}
