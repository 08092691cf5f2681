package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gosaju/internal/errors"
	"gosaju/ports"
)

// CreditRepositoryImpl implements ports.CreditLedger for PostgreSQL
type CreditRepositoryImpl struct {
	db *sqlx.DB
}

// NewCreditRepository creates a new PostgreSQL credit ledger
func NewCreditRepository(db *sqlx.DB) ports.CreditLedger {
	return &CreditRepositoryImpl{db: db}
}

// Balance returns the user's current credit balance. A user with no
// credits row has balance zero.
func (r *CreditRepositoryImpl) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	var balance int
	err := r.db.GetContext(ctx, &balance, `
		SELECT balance FROM credits WHERE user_id = $1
	`, userID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "query credit balance")
	}
	return balance, nil
}

// Consume deducts amount inside a transaction. The conditional UPDATE
// is the atomicity guarantee: no row changes when the balance is short.
func (r *CreditRepositoryImpl) Consume(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	if amount < 0 {
		return errors.InvalidInput("consume amount must not be negative")
	}
	if amount == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin consume transaction")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE credits SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
	`, userID, amount)
	if err != nil {
		return errors.Wrap(err, "deduct credit")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "deduct credit")
	}
	if affected == 0 {
		return errors.InsufficientCredit("not enough credit")
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO credit_ledger (user_id, amount, reason)
		VALUES ($1, $2, $3)
	`, userID, -amount, reason); err != nil {
		return errors.Wrap(err, "record ledger entry")
	}

	return tx.Commit()
}

// Grant adds credits, creating the account row on first grant.
func (r *CreditRepositoryImpl) Grant(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	if amount < 0 {
		return errors.InvalidInput("grant amount must not be negative")
	}
	if amount == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin grant transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO credits (user_id, balance, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET balance = credits.balance + EXCLUDED.balance, updated_at = NOW()
	`, userID, amount); err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return errors.NotFound("user")
		}
		return errors.Wrap(err, "grant credit")
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO credit_ledger (user_id, amount, reason)
		VALUES ($1, $2, $3)
	`, userID, amount, reason); err != nil {
		return errors.Wrap(err, "record ledger entry")
	}

	return tx.Commit()
}
