package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gosaju/internal/errors"
	"gosaju/ports"
)

// ReadingRepositoryImpl implements ports.ReadingRepository for
// PostgreSQL
type ReadingRepositoryImpl struct {
	db *sqlx.DB
}

// NewReadingRepository creates a new PostgreSQL reading repository
func NewReadingRepository(db *sqlx.DB) ports.ReadingRepository {
	return &ReadingRepositoryImpl{db: db}
}

// Save persists a reading, assigning an ID when the caller left it
// zero.
func (r *ReadingRepositoryImpl) Save(ctx context.Context, reading *ports.Reading) error {
	if reading.ID == uuid.Nil {
		reading.ID = uuid.New()
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO readings (id, user_id, service, cost, prompt, content, created_at)
		VALUES (:id, :user_id, :service, :cost, :prompt, :content, NOW())
	`, reading)
	if err != nil {
		return errors.Wrap(err, "insert reading")
	}
	return nil
}

// ByUser returns the user's most recent readings.
func (r *ReadingRepositoryImpl) ByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ports.Reading, error) {
	if limit <= 0 {
		limit = 20
	}

	readings := []ports.Reading{}
	err := r.db.SelectContext(ctx, &readings, `
		SELECT id, user_id, service, cost, prompt, content, created_at
		FROM readings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query readings")
	}
	return readings, nil
}

// ByID fetches one reading.
func (r *ReadingRepositoryImpl) ByID(ctx context.Context, id uuid.UUID) (*ports.Reading, error) {
	var reading ports.Reading
	err := r.db.GetContext(ctx, &reading, `
		SELECT id, user_id, service, cost, prompt, content, created_at
		FROM readings
		WHERE id = $1
	`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("reading")
	}
	if err != nil {
		return nil, errors.Wrap(err, "query reading")
	}
	return &reading, nil
}
