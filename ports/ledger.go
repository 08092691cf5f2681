package ports

import (
	"context"

	"github.com/google/uuid"
)

// CreditLedger is the paywall gate's account store. The engine itself is
// cost-agnostic; only the fortune service consults the ledger.
type CreditLedger interface {
	// Balance returns the user's current credit balance.
	Balance(ctx context.Context, userID uuid.UUID) (int, error)

	// Consume atomically deducts amount if the balance covers it. An
	// insufficient balance is reported as an error, not a partial deduct.
	Consume(ctx context.Context, userID uuid.UUID, amount int, reason string) error

	// Grant adds credits (purchase or refund).
	Grant(ctx context.Context, userID uuid.UUID, amount int, reason string) error
}
