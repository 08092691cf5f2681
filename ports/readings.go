package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Reading is one persisted fortune result.
type Reading struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Service   string    `db:"service" json:"service"`
	Prompt    string    `db:"prompt" json:"-"`
	Content   string    `db:"content" json:"content"`
	Cost      int       `db:"cost" json:"cost"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ReadingRepository stores generated readings for later retrieval.
type ReadingRepository interface {
	Save(ctx context.Context, r *Reading) error
	ByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Reading, error)
	ByID(ctx context.Context, id uuid.UUID) (*Reading, error)
}
